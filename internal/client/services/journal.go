package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/client/mirror"
	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/journal"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/google/uuid"
)

// Journal entry sources.
const (
	SourcePlan   = "safety_plan"
	SourceTriage = "triage"
)

type JournalService interface {
	// Log appends a markdown note locally and queues a mirror attempt.
	Log(ctx context.Context, title, source, markdown string) (*models.JournalEntry, error)

	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)

	// Flush retries mirroring of every note not yet copied to the server
	// and reports how many were synced.
	Flush(ctx context.Context) (int, error)
}

type journalService struct {
	repo   journal.Repository
	prefix string
	syncer mirror.Syncer
	logger logging.Logger
	now    Clock
}

func NewJournalService(repo journal.Repository, idPrefix string, syncer mirror.Syncer, logger logging.Logger, now Clock) JournalService {
	return &journalService{
		repo:   repo,
		prefix: idPrefix,
		syncer: syncer,
		logger: logger.With("module", "journal"),
		now:    now.orNow(),
	}
}

func (s *journalService) Log(ctx context.Context, title, source, markdown string) (*models.JournalEntry, error) {
	e := models.JournalEntry{
		ID:        s.prefix + uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Title:     title,
		Body:      markdown,
		Source:    source,
	}

	if err := s.repo.Append(ctx, &e); err != nil {
		return nil, fmt.Errorf("failed to log journal entry: %w", err)
	}

	s.syncer.Go(mirror.JournalEntity(e), s.markMirrored(e.ID))

	return &e, nil
}

func (s *journalService) markMirrored(id string) func(mirror.Outcome) {
	return func(out mirror.Outcome) {
		if out.Status != mirror.StatusSynced {
			return
		}
		ctx := context.Background()
		if err := s.repo.MarkMirrored(ctx, id); err != nil {
			s.logger.Error(ctx, "failed to mark journal entry mirrored", "id", id, "error", err)
		}
	}
}

func (s *journalService) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

func (s *journalService) Flush(ctx context.Context) (int, error) {
	pending, err := s.repo.Pending(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, e := range pending {
		out := s.syncer.TrySync(ctx, mirror.JournalEntity(e))
		if out.Status != mirror.StatusSynced {
			continue
		}
		if err := s.repo.MarkMirrored(ctx, e.ID); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}
