package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
)

// ContactsService keeps the default trusted contacts shown next to the
// crisis resources. They are device-local and never mirrored.
type ContactsService interface {
	List(ctx context.Context) ([]models.SafetyContact, error)
	Add(ctx context.Context, c models.SafetyContact) ([]models.SafetyContact, error)
	Remove(ctx context.Context, index int) ([]models.SafetyContact, error)
}

type contactsService struct {
	repo   kv.Repository
	key    string
	logger logging.Logger
}

func NewContactsService(repo kv.Repository, key string, logger logging.Logger) ContactsService {
	return &contactsService{repo: repo, key: key, logger: logger.With("module", "contacts")}
}

func (s *contactsService) List(ctx context.Context) ([]models.SafetyContact, error) {
	list, err := kv.GetJSON[[]models.SafetyContact](ctx, s.repo, s.key)
	if errors.Is(err, kv.ErrCorrupt) {
		s.logger.Warn(ctx, "stored contacts are corrupt, treating as empty", "error", err)
		return []models.SafetyContact{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}
	if list == nil || *list == nil {
		return []models.SafetyContact{}, nil
	}
	return *list, nil
}

func (s *contactsService) Add(ctx context.Context, c models.SafetyContact) ([]models.SafetyContact, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.IsEmpty() {
		return nil, fmt.Errorf("%w: contact name is required", common.ErrValidation)
	}
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	list = append(list, c)
	return list, s.store(ctx, list)
}

func (s *contactsService) Remove(ctx context.Context, index int) ([]models.SafetyContact, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: no contact %d", common.ErrValidation, index+1)
	}
	list = slices.Delete(list, index, index+1)
	return list, s.store(ctx, list)
}

func (s *contactsService) store(ctx context.Context, list []models.SafetyContact) error {
	if err := kv.SetJSON(ctx, s.repo, s.key, list); err != nil {
		return fmt.Errorf("failed to store contacts: %w", err)
	}
	return nil
}
