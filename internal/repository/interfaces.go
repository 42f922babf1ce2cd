package repository

import (
	"context"

	"github.com/lmedina/playtrack/internal/models"
)

// ProgressRepository persists the single progress document under a fixed
// key.
type ProgressRepository interface {
	// Load returns the stored document. loaded is false when no record
	// exists or the stored payload does not decode; callers substitute
	// the default document in both cases. err reports storage access
	// failures only.
	Load(ctx context.Context) (doc *models.ProgressDocument, loaded bool, err error)
	Save(ctx context.Context, doc *models.ProgressDocument) error
	Delete(ctx context.Context) error
}

// StatsRepository is the stats sink: raw per-round records kept for the
// teacher-facing aggregation. It stores and lists; it aggregates nothing.
type StatsRepository interface {
	Insert(ctx context.Context, rec models.GameResult) error
	// List returns matching records most-recent-first.
	List(ctx context.Context, filter models.StatsFilter) ([]models.GameResult, error)
	// TopScores returns the highest-scoring records for a game type.
	TopScores(ctx context.Context, gameType string, limit int) ([]models.GameResult, error)
}
