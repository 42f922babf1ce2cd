package progress

import (
	"context"

	"github.com/lmedina/playtrack/internal/models"
)

// The summary projector: read-only views derived from the document. None
// of these mutate or persist anything.

// GameStats returns the stored record for a (game, theme) pair, or nil
// when either bucket is absent.
func (s *Store) GameStats(ctx context.Context, game, theme string) *models.ThemeRecord {
	doc := s.GetProgress(ctx)
	bucket, ok := doc.Games.Bucket(game)
	if !ok {
		return nil
	}
	return bucket[theme]
}

// GlobalStats returns the document-wide aggregate augmented with the
// derived global average score, which is computed fresh on every call.
func (s *Store) GlobalStats(ctx context.Context) models.GlobalStatsView {
	doc := s.GetProgress(ctx)
	return models.GlobalStatsView{
		GlobalStats:  doc.Statistics,
		AverageScore: roundedAverage(doc.Statistics.TotalScore, doc.Statistics.TotalGamesPlayed),
	}
}

// Summary builds the dashboard rollup: overall totals plus one aggregate
// per game with at least one recorded play. Per-game totalTime sums the
// per-theme bestTime values, a quirk the dashboard has always displayed.
func (s *Store) Summary(ctx context.Context) models.Summary {
	doc := s.GetProgress(ctx)
	stats := doc.Statistics

	games := make(map[string]models.GameSummary)
	for _, game := range doc.Games.Games() {
		bucket, _ := doc.Games.Bucket(game)

		var totalGames, totalScore, bestScore, totalTime int
		for _, rec := range bucket {
			if rec == nil || rec.GamesPlayed == 0 {
				continue
			}
			totalGames += rec.GamesPlayed
			totalScore += rec.TotalScore
			if rec.BestScore > bestScore {
				bestScore = rec.BestScore
			}
			totalTime += rec.BestTime
		}
		if totalGames == 0 {
			continue
		}
		games[game] = models.GameSummary{
			TotalGames:   totalGames,
			TotalScore:   totalScore,
			BestScore:    bestScore,
			AverageScore: roundedAverage(totalScore, totalGames),
			TotalTime:    totalTime,
		}
	}

	return models.Summary{
		TotalGames:    stats.TotalGamesPlayed,
		TotalTime:     stats.TotalTimePlayed,
		TotalScore:    stats.TotalScore,
		AverageScore:  roundedAverage(stats.TotalScore, stats.TotalGamesPlayed),
		FavoriteGame:  stats.FavoriteGame,
		CurrentStreak: stats.Streak,
		LastPlayed:    stats.LastPlayed,
		Games:         games,
	}
}
