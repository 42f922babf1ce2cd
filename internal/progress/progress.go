package progress

import (
	"math"
	"time"

	"github.com/lmedina/playtrack/internal/models"
)

const (
	// historyLimit bounds each theme's history to the most recent entries.
	historyLimit = 10

	// noBest marks a theme record that has not absorbed a result yet. It
	// only exists between bucket creation and the first update inside
	// Apply, so it never reaches storage.
	noBest = math.MinInt32

	dateLayout = "2006-01-02"
)

// Result is one finished game round as reported by a mini-game. Extra
// carries arbitrary display fields that ride along in the history.
type Result struct {
	Game  string
	Theme string
	Score int
	Time  int
	Extra map[string]any
}

// DefaultDocument returns a fresh progress document: an empty bucket per
// shipped game, all counts zero, no favorite, no streak.
func DefaultDocument() *models.ProgressDocument {
	return &models.ProgressDocument{
		Games: models.NewGameMap(models.KnownGames()...),
	}
}

// Apply folds one result into the document in place: per-theme aggregates,
// bounded history, best score/time, global totals, favorite game and the
// calendar-day streak. now supplies both the result timestamp and the
// streak's notion of "today".
func Apply(doc *models.ProgressDocument, res Result, now time.Time) {
	if doc.Games == nil {
		doc.Games = models.NewGameMap()
	}
	bucket := doc.Games.Ensure(res.Game)
	rec, ok := bucket[res.Theme]
	if !ok {
		rec = &models.ThemeRecord{
			BestScore: noBest,
			History:   []models.HistoryEntry{},
		}
		bucket[res.Theme] = rec
	}

	stamp := now.UTC().Format(time.RFC3339)

	rec.GamesPlayed++
	rec.TotalScore += res.Score
	rec.AverageScore = roundedAverage(rec.TotalScore, rec.GamesPlayed)
	rec.LastPlayed = stamp

	rec.History = append(rec.History, models.HistoryEntry{
		Score: res.Score,
		Time:  res.Time,
		Date:  stamp,
		Extra: res.Extra,
	})
	if n := len(rec.History); n > historyLimit {
		rec.History = rec.History[n-historyLimit:]
	}

	// bestTime follows bestScore; it is never updated on its own.
	if res.Score > rec.BestScore || rec.BestScore == noBest {
		rec.BestScore = res.Score
		rec.BestTime = res.Time
	}

	stats := &doc.Statistics
	stats.TotalGamesPlayed++
	stats.TotalTimePlayed += res.Time
	stats.TotalScore += res.Score
	stats.LastPlayed = stamp
	stats.FavoriteGame = favoriteGame(doc.Games)

	today := now.Format(dateLayout)
	if stats.LastPlayDate != today {
		yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
		if stats.LastPlayDate == yesterday {
			stats.Streak++
		} else {
			stats.Streak = 1
		}
		stats.LastPlayDate = today
	}
}

// favoriteGame picks the game with the most recorded plays across all of
// its themes. Iteration follows bucket insertion order, so the first game
// to reach the maximum count wins ties. Empty while nothing has been
// played.
func favoriteGame(games *models.GameMap) string {
	var favorite string
	max := 0
	for _, game := range games.Games() {
		bucket, _ := games.Bucket(game)
		count := 0
		for _, rec := range bucket {
			count += rec.GamesPlayed
		}
		if count > max {
			favorite = game
			max = count
		}
	}
	return favorite
}

// roundedAverage divides total by count rounding half away from zero
// toward positive infinity, matching Math.round in the dashboard SPA.
func roundedAverage(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Floor(float64(total)/float64(count) + 0.5))
}
