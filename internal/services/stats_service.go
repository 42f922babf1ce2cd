package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lmedina/playtrack/internal/errors"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/repository"
)

// aggregateFetchLimit caps how many raw records feed one aggregation
// pass; the teacher panel has always worked over the most recent 500.
const aggregateFetchLimit = 500

// StatsService handles the stats sink: storing raw per-round records and
// the teacher-facing views recomputed from them.
type StatsService interface {
	SaveGameStats(ctx context.Context, rec models.GameResult) (models.GameResult, error)
	AllStats(ctx context.Context, limit int) ([]models.GameResult, error)
	GameTypeStats(ctx context.Context, gameType string, limit int) ([]models.GameResult, error)
	TopScores(ctx context.Context, gameType string, limit int) ([]models.GameResult, error)
	Aggregate(ctx context.Context, filter models.StatsFilter) ([]models.GameAggregate, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewStatsService creates a StatsService over the given repository.
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo, now: time.Now}
}

// SaveGameStats assigns the record an ID and timestamp and stores it. The
// record itself is not validated; malformed values are the sink's callers'
// concern.
func (s *statsService) SaveGameStats(ctx context.Context, rec models.GameResult) (models.GameResult, error) {
	log := logger.FromContext(ctx)

	if rec.GameType == "" {
		return models.GameResult{}, errors.NewValidationError("game_type", "must not be empty")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}

	if err := s.statsRepo.Insert(ctx, rec); err != nil {
		log.Error("failed to save game stats: %v", err)
		return models.GameResult{}, errors.NewInternalError(err)
	}
	return rec, nil
}

func (s *statsService) AllStats(ctx context.Context, limit int) ([]models.GameResult, error) {
	recs, err := s.statsRepo.List(ctx, models.StatsFilter{Limit: limit})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return recs, nil
}

func (s *statsService) GameTypeStats(ctx context.Context, gameType string, limit int) ([]models.GameResult, error) {
	if gameType == "" {
		return nil, errors.NewValidationError("game_type", "must not be empty")
	}
	recs, err := s.statsRepo.List(ctx, models.StatsFilter{GameType: gameType, Limit: limit})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list stats for %s: %v", gameType, err)
		return nil, errors.NewInternalError(err)
	}
	return recs, nil
}

func (s *statsService) TopScores(ctx context.Context, gameType string, limit int) ([]models.GameResult, error) {
	if gameType == "" {
		return nil, errors.NewValidationError("game_type", "must not be empty")
	}
	recs, err := s.statsRepo.TopScores(ctx, gameType, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list top scores for %s: %v", gameType, err)
		return nil, errors.NewInternalError(err)
	}
	return recs, nil
}

// Aggregate recomputes the teacher-panel rollup from the raw record list:
// per game type, the participation count and the average score and
// mistakes over matching records. The sink itself keeps no aggregates, so
// this is a full pass over the fetched rows; games appear in first-seen
// order of the most-recent-first list.
func (s *statsService) Aggregate(ctx context.Context, filter models.StatsFilter) ([]models.GameAggregate, error) {
	log := logger.FromContext(ctx)

	if filter.Limit <= 0 {
		filter.Limit = aggregateFetchLimit
	}
	recs, err := s.statsRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list stats for aggregation: %v", err)
		return nil, errors.NewInternalError(err)
	}

	type bucket struct {
		count    int
		score    int
		mistakes int
	}
	var order []string
	buckets := make(map[string]*bucket)
	for _, rec := range recs {
		b, ok := buckets[rec.GameType]
		if !ok {
			b = &bucket{}
			buckets[rec.GameType] = b
			order = append(order, rec.GameType)
		}
		b.count++
		b.score += rec.Score
		b.mistakes += rec.Mistakes
	}

	aggs := make([]models.GameAggregate, 0, len(order))
	for _, game := range order {
		b := buckets[game]
		aggs = append(aggs, models.GameAggregate{
			Game:          game,
			Participation: b.count,
			AvgScore:      round2(float64(b.score) / float64(b.count)),
			AvgMistakes:   round2(float64(b.mistakes) / float64(b.count)),
		})
	}
	log.Debug("aggregated %d records into %d game buckets", len(recs), len(aggs))
	return aggs, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
