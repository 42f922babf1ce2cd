package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lmedina/playtrack/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Insert(ctx context.Context, rec models.GameResult) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStatsRepository) List(ctx context.Context, filter models.StatsFilter) ([]models.GameResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameResult), args.Error(1)
}

func (m *MockStatsRepository) TopScores(ctx context.Context, gameType string, limit int) ([]models.GameResult, error) {
	args := m.Called(ctx, gameType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameResult), args.Error(1)
}
