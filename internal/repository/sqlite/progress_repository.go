package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/repository"
)

// progressKey is the fixed key of the one progress record. The value is
// kept identical to the key the SPA used in browser storage so exported
// documents stay recognizable.
const progressKey = "englishAppProgress"

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a ProgressRepository backed by the
// progress key-value table.
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Load(ctx context.Context) (*models.ProgressDocument, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	var payload string
	err := r.db.QueryRowContext(ctx, `
SELECT document
FROM progress
WHERE key = ?
`, progressKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress record stored")
		return nil, false, nil
	}
	if err != nil {
		log.Error("failed to load progress record: %v", err)
		return nil, false, err
	}

	var doc models.ProgressDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		// A corrupt record is not an error to callers: they fall back to
		// the default document, same as a missing one.
		log.Warn("stored progress record does not decode, treating as absent: %v", err)
		return nil, false, nil
	}
	if doc.Games == nil {
		doc.Games = models.NewGameMap()
	}
	return &doc, true, nil
}

func (r *progressRepository) Save(ctx context.Context, doc *models.ProgressDocument) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	payload, err := json.Marshal(doc)
	if err != nil {
		log.Error("failed to encode progress document: %v", err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO progress (key, document, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET document = excluded.document, updated_at = CURRENT_TIMESTAMP
`, progressKey, string(payload))
	if err != nil {
		log.Error("failed to save progress record: %v", err)
		return err
	}
	log.Debug("progress record saved (%d bytes)", len(payload))
	return nil
}

func (r *progressRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE key = ?`, progressKey); err != nil {
		log.Error("failed to delete progress record: %v", err)
		return err
	}
	log.Debug("progress record deleted")
	return nil
}
