package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lmedina/playtrack/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Load(ctx context.Context) (*models.ProgressDocument, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.ProgressDocument), args.Bool(1), args.Error(2)
}

func (m *MockProgressRepository) Save(ctx context.Context, doc *models.ProgressDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockProgressRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
