package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/client/mirror"
	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/client/triage"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
)

type TriageService interface {
	// Complete classifies answers, stores the result as the latest triage
	// and queues a mirror attempt.
	Complete(ctx context.Context, answers models.TriageAnswers) (*models.TriageResult, error)

	// Last returns the latest stored result, nil when absent or corrupt.
	Last(ctx context.Context) (*models.TriageResult, error)
}

type triageService struct {
	repo   kv.Repository
	key    string
	syncer mirror.Syncer
	logger logging.Logger
	now    Clock
}

func NewTriageService(repo kv.Repository, key string, syncer mirror.Syncer, logger logging.Logger, now Clock) TriageService {
	return &triageService{
		repo:   repo,
		key:    key,
		syncer: syncer,
		logger: logger.With("module", "triage"),
		now:    now.orNow(),
	}
}

func (s *triageService) Complete(ctx context.Context, answers models.TriageAnswers) (*models.TriageResult, error) {
	result := triage.Evaluate(answers, s.now())

	if err := kv.SetJSON(ctx, s.repo, s.key, result); err != nil {
		return nil, fmt.Errorf("failed to store triage result: %w", err)
	}
	s.logger.Info(ctx, "triage completed", "level", result.Level)

	s.syncer.Go(mirror.TriageEntity(result), nil)

	return &result, nil
}

func (s *triageService) Last(ctx context.Context) (*models.TriageResult, error) {
	r, err := kv.GetJSON[models.TriageResult](ctx, s.repo, s.key)
	if errors.Is(err, kv.ErrCorrupt) {
		s.logger.Warn(ctx, "stored triage result is corrupt, treating as absent", "error", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read triage result: %w", err)
	}
	if r != nil && !r.Level.Valid() {
		s.logger.Warn(ctx, "stored triage result has unknown level", "level", r.Level)
		return nil, nil
	}
	return r, nil
}
