package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/testutil/mocks"
)

func newTestStore(repo *mocks.MockProgressRepository) *Store {
	s := NewStore(repo)
	s.now = func() time.Time {
		return time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	}
	return s
}

func TestGetProgressReturnsStoredDocument(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	stored := DefaultDocument()
	stored.Statistics.TotalGamesPlayed = 7
	repo.On("Load", mock.Anything).Return(stored, true, nil)

	doc := newTestStore(repo).GetProgress(context.Background())

	assert.Equal(t, 7, doc.Statistics.TotalGamesPlayed)
	repo.AssertExpectations(t)
}

func TestGetProgressFallsBackWhenMissing(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	repo.On("Load", mock.Anything).Return(nil, false, nil)

	doc := newTestStore(repo).GetProgress(context.Background())

	assert.Zero(t, doc.Statistics.TotalGamesPlayed)
	assert.Equal(t, models.KnownGames(), doc.Games.Games())
	// The synthesized default is never written back.
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGetProgressFallsBackOnLoadError(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	repo.On("Load", mock.Anything).Return(nil, false, errors.New("disk on fire"))

	doc := newTestStore(repo).GetProgress(context.Background())

	require.NotNil(t, doc)
	assert.Zero(t, doc.Statistics.TotalGamesPlayed)
}

func TestRecordResultPersistsUpdatedDocument(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	repo.On("Load", mock.Anything).Return(nil, false, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	doc, err := newTestStore(repo).RecordResult(context.Background(), Result{
		Game: models.GameMemory, Theme: "animals", Score: 50, Time: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Statistics.TotalGamesPlayed)

	saved := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*models.ProgressDocument)
	assert.Same(t, doc, saved)
	repo.AssertExpectations(t)
}

func TestRecordResultPropagatesWriteError(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	repo.On("Load", mock.Anything).Return(nil, false, nil)
	writeErr := errors.New("database is locked")
	repo.On("Save", mock.Anything, mock.Anything).Return(writeErr)

	doc, err := newTestStore(repo).RecordResult(context.Background(), Result{
		Game: models.GameMemory, Theme: "animals", Score: 50, Time: 30,
	})

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, writeErr)
}

func TestClearProgressResetsToDefault(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	repo.On("Delete", mock.Anything).Return(nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	err := newTestStore(repo).ClearProgress(context.Background())

	require.NoError(t, err)
	saved := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*models.ProgressDocument)
	assert.Zero(t, saved.Statistics.TotalGamesPlayed)
	assert.Equal(t, models.KnownGames(), saved.Games.Games())
	repo.AssertExpectations(t)
}

func TestClearProgressPropagatesDeleteError(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	deleteErr := errors.New("database is locked")
	repo.On("Delete", mock.Anything).Return(deleteErr)

	err := newTestStore(repo).ClearProgress(context.Background())

	assert.ErrorIs(t, err, deleteErr)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
