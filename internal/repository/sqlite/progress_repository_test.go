package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/testutil"
)

func TestProgressLoadMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewProgressRepository(db)

	doc, loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Nil(t, doc)
}

func TestProgressSaveLoadRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	doc := &models.ProgressDocument{Games: models.NewGameMap(models.KnownGames()...)}
	doc.Games.Ensure(models.GameMemory)["animals"] = &models.ThemeRecord{
		BestScore: 100, BestTime: 120, GamesPlayed: 1, TotalScore: 100,
		AverageScore: 100, LastPlayed: "2024-03-10T14:30:00Z",
		History: []models.HistoryEntry{{Score: 100, Time: 120, Date: "2024-03-10T14:30:00Z"}},
	}
	doc.Statistics.TotalGamesPlayed = 1
	doc.Statistics.FavoriteGame = models.GameMemory

	require.NoError(t, repo.Save(ctx, doc))

	got, loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, loaded)

	assert.Equal(t, doc.Statistics, got.Statistics)
	assert.Equal(t, doc.Games.Games(), got.Games.Games())
	bucket, ok := got.Games.Bucket(models.GameMemory)
	require.True(t, ok)
	require.NotNil(t, bucket["animals"])
	assert.Equal(t, 100, bucket["animals"].BestScore)
	require.Len(t, bucket["animals"].History, 1)
}

func TestProgressSaveOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	first := &models.ProgressDocument{Games: models.NewGameMap()}
	first.Statistics.TotalGamesPlayed = 1
	require.NoError(t, repo.Save(ctx, first))

	second := &models.ProgressDocument{Games: models.NewGameMap()}
	second.Statistics.TotalGamesPlayed = 2
	require.NoError(t, repo.Save(ctx, second))

	got, loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, loaded)
	assert.Equal(t, 2, got.Statistics.TotalGamesPlayed)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM progress`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestProgressLoadCorruptPayload(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO progress (key, document) VALUES (?, ?)`, "englishAppProgress", "{not json")
	require.NoError(t, err)

	doc, loaded, err := repo.Load(ctx)

	// Corrupt records behave like missing ones.
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Nil(t, doc)
}

func TestProgressLoadNullGames(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewProgressRepository(db)

	_, err := db.Exec(`INSERT INTO progress (key, document) VALUES (?, ?)`, "englishAppProgress", `{"games":null,"statistics":{"totalGamesPlayed":3}}`)
	require.NoError(t, err)

	doc, loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.True(t, loaded)
	require.NotNil(t, doc.Games)
	assert.Zero(t, doc.Games.Len())
	assert.Equal(t, 3, doc.Statistics.TotalGamesPlayed)
}

func TestProgressDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.ProgressDocument{Games: models.NewGameMap()}))
	require.NoError(t, repo.Delete(ctx))

	_, loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx))
}
