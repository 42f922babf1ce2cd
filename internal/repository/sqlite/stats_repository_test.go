package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/testutil"
)

func insertResult(t *testing.T, repo interface {
	Insert(ctx context.Context, rec models.GameResult) error
}, id, gameType, theme string, score int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Insert(context.Background(), models.GameResult{
		ID:        id,
		GameType:  gameType,
		Theme:     theme,
		Score:     score,
		Duration:  30,
		CreatedAt: createdAt,
	}))
}

func TestStatsInsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewStatsRepository(db)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	insertResult(t, repo, "a", "memoryGame", "animals", 50, base)
	insertResult(t, repo, "b", "typingGame", "words", 70, base.Add(time.Minute))
	insertResult(t, repo, "c", "memoryGame", "colors", 90, base.Add(2*time.Minute))

	results, err := repo.List(context.Background(), models.StatsFilter{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Most recent first.
	assert.Equal(t, "c", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "a", results[2].ID)
}

func TestStatsListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	insertResult(t, repo, "a", "memoryGame", "animals", 50, base)
	insertResult(t, repo, "b", "memoryGame", "colors", 70, base.Add(time.Hour))
	insertResult(t, repo, "c", "typingGame", "words", 90, base.Add(2*time.Hour))

	byGame, err := repo.List(ctx, models.StatsFilter{GameType: "memoryGame"})
	require.NoError(t, err)
	require.Len(t, byGame, 2)

	byTheme, err := repo.List(ctx, models.StatsFilter{GameType: "memoryGame", Theme: "colors"})
	require.NoError(t, err)
	require.Len(t, byTheme, 1)
	assert.Equal(t, "b", byTheme[0].ID)

	from := base.Add(30 * time.Minute)
	to := base.Add(90 * time.Minute)
	byWindow, err := repo.List(ctx, models.StatsFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, byWindow, 1)
	assert.Equal(t, "b", byWindow[0].ID)
}

func TestStatsListLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewStatsRepository(db)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertResult(t, repo, fmt.Sprintf("rec-%d", i), "mathGame", "addition", i*10, base.Add(time.Duration(i)*time.Minute))
	}

	results, err := repo.List(context.Background(), models.StatsFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "rec-4", results[0].ID)
}

func TestStatsTopScores(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewStatsRepository(db)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	insertResult(t, repo, "low", "memoryGame", "animals", 10, base)
	insertResult(t, repo, "high", "memoryGame", "animals", 90, base.Add(time.Minute))
	insertResult(t, repo, "mid", "memoryGame", "colors", 50, base.Add(2*time.Minute))
	insertResult(t, repo, "other", "typingGame", "words", 100, base.Add(3*time.Minute))

	top, err := repo.TopScores(context.Background(), "memoryGame", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].ID)
	assert.Equal(t, "mid", top[1].ID)
}

func TestStatsTopScoresTieBrokenByRecency(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewStatsRepository(db)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	insertResult(t, repo, "older", "memoryGame", "animals", 50, base)
	insertResult(t, repo, "newer", "memoryGame", "animals", 50, base.Add(time.Minute))

	top, err := repo.TopScores(context.Background(), "memoryGame", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "newer", top[0].ID)
}

func TestStatsFullRecordRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	rec := models.GameResult{
		ID:             "full",
		GameType:       "typingGame",
		Theme:          "sentences",
		Score:          85,
		Duration:       95,
		Mistakes:       3,
		CorrectAnswers: 17,
		TotalQuestions: 20,
		Difficulty:     "hard",
		PlayerName:     "alex",
		WPM:            42,
		Accuracy:       91.3,
		CreatedAt:      time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(ctx, rec))

	results, err := repo.List(ctx, models.StatsFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Difficulty, got.Difficulty)
	assert.Equal(t, rec.PlayerName, got.PlayerName)
	assert.Equal(t, rec.WPM, got.WPM)
	assert.InDelta(t, rec.Accuracy, got.Accuracy, 0.001)
	assert.True(t, got.CreatedAt.Equal(rec.CreatedAt))
}
