package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/mirror"
	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/google/uuid"
)

// SafetyPlanService manages the single current plan of the device.
type SafetyPlanService interface {
	// Load returns the stored plan, or nil when none is stored or the
	// stored value is unreadable JSON.
	Load(ctx context.Context) (*models.SafetyPlan, error)

	// Save merges patch over the stored plan (or a fresh skeleton), stamps
	// it, persists it and queues a mirror attempt. The merged plan is
	// returned even if the local write fails.
	Save(ctx context.Context, patch models.PlanPatch) (*models.SafetyPlan, error)

	// FindByShareToken resolves a token against the locally held plan only.
	FindByShareToken(ctx context.Context, token string) (*models.SafetyPlan, error)

	AddItem(ctx context.Context, section models.Section, text string) (*models.SafetyPlan, error)
	RemoveItem(ctx context.Context, section models.Section, index int) (*models.SafetyPlan, error)
	AddContact(ctx context.Context, section models.Section, c models.SafetyContact) (*models.SafetyPlan, error)
}

type safetyPlanService struct {
	repo   kv.Repository
	key    string
	syncer mirror.Syncer
	logger logging.Logger
	now    Clock
}

func NewSafetyPlanService(repo kv.Repository, key string, syncer mirror.Syncer, logger logging.Logger, now Clock) SafetyPlanService {
	return &safetyPlanService{
		repo:   repo,
		key:    key,
		syncer: syncer,
		logger: logger.With("module", "safety_plan"),
		now:    now.orNow(),
	}
}

func (s *safetyPlanService) Load(ctx context.Context) (*models.SafetyPlan, error) {
	plan, err := kv.GetJSON[models.SafetyPlan](ctx, s.repo, s.key)
	if errors.Is(err, kv.ErrCorrupt) {
		s.logger.Warn(ctx, "stored safety plan is corrupt, treating as absent", "error", err)
		return nil, nil
	}
	if err != nil {
		s.logger.Error(ctx, "failed to read safety plan", "error", err)
		return nil, fmt.Errorf("failed to read safety plan: %w", err)
	}
	if plan != nil {
		plan.Normalize()
	}
	return plan, nil
}

func (s *safetyPlanService) Save(ctx context.Context, patch models.PlanPatch) (*models.SafetyPlan, error) {
	if patch.CheckinEveryMin != nil && *patch.CheckinEveryMin <= 0 {
		return nil, fmt.Errorf("%w: check-in interval must be positive, got %d", common.ErrValidation, *patch.CheckinEveryMin)
	}

	prev, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Postgres keeps microseconds; finer stamps would collide on the mirror.
	now := s.now().UTC().Truncate(time.Microsecond)

	var plan *models.SafetyPlan
	if prev == nil {
		lang := ""
		if patch.Lang != nil {
			lang = *patch.Lang
		}
		plan = models.NewSkeleton(lang)
	} else {
		plan = prev.Clone()
	}

	plan.Apply(patch)
	plan.Normalize()

	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now
	if prev != nil && !now.After(prev.UpdatedAt) {
		plan.UpdatedAt = prev.UpdatedAt.Truncate(time.Microsecond).Add(time.Microsecond)
	}
	if plan.ShareToken == "" {
		token, err := common.NewShareToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate share token: %w", err)
		}
		plan.ShareToken = token
	}

	if err := kv.SetJSON(ctx, s.repo, s.key, plan); err != nil {
		s.logger.Error(ctx, "failed to persist safety plan", "plan_id", plan.ID, "error", err)
	}

	s.syncer.Go(mirror.PlanEntity(plan), nil)

	return plan, nil
}

func (s *safetyPlanService) FindByShareToken(ctx context.Context, token string) (*models.SafetyPlan, error) {
	if token == "" {
		return nil, nil
	}
	plan, err := s.Load(ctx)
	if err != nil || plan == nil {
		return nil, err
	}
	if plan.ShareToken != token {
		return nil, nil
	}
	return plan, nil
}

func (s *safetyPlanService) current(ctx context.Context) (*models.SafetyPlan, error) {
	plan, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = models.NewSkeleton("")
	}
	return plan, nil
}

func (s *safetyPlanService) AddItem(ctx context.Context, section models.Section, text string) (*models.SafetyPlan, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty item", common.ErrValidation)
	}
	if section.IsContactList() {
		return s.AddContact(ctx, section, models.SafetyContact{Name: text})
	}

	plan, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	items := append(slices.Clone(plan.TextItems(section)), text)
	return s.Save(ctx, models.TextPatch(section, items))
}

func (s *safetyPlanService) RemoveItem(ctx context.Context, section models.Section, index int) (*models.SafetyPlan, error) {
	plan, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= plan.Len(section) {
		return nil, fmt.Errorf("%w: no item %d in %s", common.ErrValidation, index+1, section)
	}

	if section.IsContactList() {
		items := slices.Delete(slices.Clone(plan.ContactItems(section)), index, index+1)
		return s.Save(ctx, models.ContactPatch(section, items))
	}
	items := slices.Delete(slices.Clone(plan.TextItems(section)), index, index+1)
	return s.Save(ctx, models.TextPatch(section, items))
}

func (s *safetyPlanService) AddContact(ctx context.Context, section models.Section, c models.SafetyContact) (*models.SafetyPlan, error) {
	if !section.IsContactList() {
		return nil, fmt.Errorf("%w: %s does not hold contacts", common.ErrValidation, section)
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.IsEmpty() {
		return nil, fmt.Errorf("%w: contact name is required", common.ErrValidation)
	}

	plan, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	items := append(slices.Clone(plan.ContactItems(section)), c)
	return s.Save(ctx, models.ContactPatch(section, items))
}

// ShareLink builds the public link of a saved plan.
func ShareLink(plan *models.SafetyPlan, origin string) string {
	return strings.TrimRight(origin, "/") + "/safety-plan/share/" + plan.ShareToken
}
