package services

import (
	"context"

	"github.com/lmedina/playtrack/internal/errors"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/progress"
)

// ProgressService exposes the local progress store and its projections to
// the API layer.
type ProgressService interface {
	RecordResult(ctx context.Context, res progress.Result) (*models.ProgressDocument, error)
	Progress(ctx context.Context) *models.ProgressDocument
	ClearProgress(ctx context.Context) error
	GameStats(ctx context.Context, game, theme string) (*models.ThemeRecord, error)
	GlobalStats(ctx context.Context) models.GlobalStatsView
	Summary(ctx context.Context) models.Summary
}

type progressService struct {
	store *progress.Store
}

// NewProgressService creates a ProgressService over the given store.
func NewProgressService(store *progress.Store) ProgressService {
	return &progressService{store: store}
}

func (s *progressService) RecordResult(ctx context.Context, res progress.Result) (*models.ProgressDocument, error) {
	log := logger.FromContext(ctx)

	// Game and theme key the aggregate buckets; everything else is taken
	// as-is, negative scores and times included.
	if res.Game == "" {
		return nil, errors.NewValidationError("game", "must not be empty")
	}
	if res.Theme == "" {
		return nil, errors.NewValidationError("theme", "must not be empty")
	}

	doc, err := s.store.RecordResult(ctx, res)
	if err != nil {
		log.Error("failed to record result: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return doc, nil
}

func (s *progressService) Progress(ctx context.Context) *models.ProgressDocument {
	return s.store.GetProgress(ctx)
}

func (s *progressService) ClearProgress(ctx context.Context) error {
	if err := s.store.ClearProgress(ctx); err != nil {
		logger.FromContext(ctx).Error("failed to clear progress: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *progressService) GameStats(ctx context.Context, game, theme string) (*models.ThemeRecord, error) {
	rec := s.store.GameStats(ctx, game, theme)
	if rec == nil {
		return nil, errors.NewNotFoundError("game stats", game+"/"+theme)
	}
	return rec, nil
}

func (s *progressService) GlobalStats(ctx context.Context) models.GlobalStatsView {
	return s.store.GlobalStats(ctx)
}

func (s *progressService) Summary(ctx context.Context) models.Summary {
	return s.store.Summary(ctx)
}
