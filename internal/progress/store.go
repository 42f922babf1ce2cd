package progress

import (
	"context"
	"time"

	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/repository"
)

// Store is the local progress store: it owns the single persisted document
// and routes every mutation through Apply. Reads are defensive (a missing,
// corrupt or unreadable record degrades to the default document); write
// failures propagate to the caller.
type Store struct {
	repo repository.ProgressRepository
	now  func() time.Time
}

// NewStore creates a Store over the given repository.
func NewStore(repo repository.ProgressRepository) *Store {
	return &Store{repo: repo, now: time.Now}
}

// GetProgress returns the persisted document, or a fresh default document
// when none is stored or the stored record cannot be read. It never fails
// and never writes back the synthesized default.
func (s *Store) GetProgress(ctx context.Context) *models.ProgressDocument {
	log := logger.FromContext(ctx).WithPrefix("progress")

	doc, loaded, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn("progress load failed, serving default document: %v", err)
		return DefaultDocument()
	}
	if !loaded {
		log.Debug("no stored progress, serving default document")
		return DefaultDocument()
	}
	return doc
}

// RecordResult folds one result into the document and persists it,
// returning the updated document. A storage write failure is returned
// as-is; the in-memory update is discarded with it.
func (s *Store) RecordResult(ctx context.Context, res Result) (*models.ProgressDocument, error) {
	log := logger.FromContext(ctx).WithPrefix("progress")
	log.Debug("recording result: game=%s, theme=%s, score=%d, time=%d", res.Game, res.Theme, res.Score, res.Time)

	doc := s.GetProgress(ctx)
	Apply(doc, res, s.now())

	if err := s.repo.Save(ctx, doc); err != nil {
		log.Error("failed to persist progress: %v", err)
		return nil, err
	}
	return doc, nil
}

// ClearProgress deletes the stored record and immediately writes back the
// default document, so subsequent reads see an explicitly initialized
// empty state rather than a synthesized one.
func (s *Store) ClearProgress(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("progress")
	log.Info("clearing progress")

	if err := s.repo.Delete(ctx); err != nil {
		log.Error("failed to delete progress: %v", err)
		return err
	}
	if err := s.repo.Save(ctx, DefaultDocument()); err != nil {
		log.Error("failed to reinitialize progress: %v", err)
		return err
	}
	return nil
}
