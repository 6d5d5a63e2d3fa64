package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cm "github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/dbx"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/repomanager"
)

// DefaultJournalLimit caps journal listings when no limit is given.
const DefaultJournalLimit = 50

// MirrorService stores what clients mirror and serves it back: the plan by
// share token, the triage log, contacts and journal.
type MirrorService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewMirrorService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *MirrorService {
	return &MirrorService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "mirror_service"),
		now:         time.Now,
	}
}

func (s *MirrorService) RecordTriage(ctx context.Context, userID string, r cm.TriageResult) error {
	if !r.Level.Valid() || r.Timestamp.IsZero() {
		return fmt.Errorf("%w: triage result needs a level and a timestamp", common.ErrValidation)
	}
	rec := &models.TriageRecord{
		UserID:         userID,
		RecordedAt:     r.Timestamp,
		Level:          string(r.Level),
		DangerNow:      r.Answers.DangerNow,
		HavePlan:       r.Answers.HavePlan,
		AccessMeans:    r.Answers.AccessMeans,
		UnderInfluence: r.Answers.UnderInfluence,
		Alone:          r.Answers.Alone,
	}
	return s.repomanager.Triage(s.db).Insert(ctx, rec)
}

// UpsertPlan keeps the newest snapshot of the plan. Older snapshots arriving
// late are ignored.
func (s *MirrorService) UpsertPlan(ctx context.Context, userID string, p cm.SafetyPlan) error {
	if p.ID == "" || p.UpdatedAt.IsZero() || !ValidShareToken(p.ShareToken) {
		return fmt.Errorf("%w: plan needs an id, updatedAt and a share token", common.ErrValidation)
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error encoding plan: %w", err)
	}

	applied, err := s.repomanager.Plans(s.db).Upsert(ctx, &models.PlanRecord{
		ID:         p.ID,
		UserID:     userID,
		ShareToken: p.ShareToken,
		Document:   doc,
		UpdatedAt:  p.UpdatedAt,
	})
	if err != nil {
		return err
	}
	if !applied {
		s.logger.Debug(ctx, "stale plan snapshot ignored", "plan_id", p.ID, "user_id", userID)
	}
	return nil
}

// UpsertContacts stores all contacts in one transaction. Contacts without a
// name are skipped.
func (s *MirrorService) UpsertContacts(ctx context.Context, userID string, contacts []cm.SafetyContact) error {
	now := s.now()
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)
		for _, c := range contacts {
			if c.IsEmpty() {
				continue
			}
			if err := repo.Upsert(ctx, &models.ContactRecord{
				UserID:    userID,
				Name:      c.Name,
				Phone:     c.Phone,
				SMS:       c.SMS,
				Email:     c.Email,
				UpdatedAt: now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *MirrorService) AppendJournal(ctx context.Context, userID string, e cm.JournalEntry) error {
	if e.ID == "" {
		return fmt.Errorf("%w: journal entry needs an id", common.ErrValidation)
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	return s.repomanager.Journal(s.db).Append(ctx, &models.JournalRecord{
		ID:        e.ID,
		UserID:    userID,
		CreatedAt: created,
		Title:     e.Title,
		Body:      e.Body,
		Source:    e.Source,
	})
}

// PlanByShareToken resolves a share link. Malformed tokens are reported as
// common.ErrorNotFound without touching the database.
func (s *MirrorService) PlanByShareToken(ctx context.Context, token string) (*cm.SafetyPlan, error) {
	if !ValidShareToken(token) {
		return nil, common.ErrorNotFound
	}
	rec, err := s.repomanager.Plans(s.db).GetByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	var p cm.SafetyPlan
	if err := json.Unmarshal(rec.Document, &p); err != nil {
		s.logger.Error(ctx, "corrupt plan document", "plan_id", rec.ID, "error", err)
		return nil, common.ErrorInternal
	}
	p.Normalize()
	return &p, nil
}

func (s *MirrorService) TriageLog(ctx context.Context, userID string) ([]models.TriageRecord, error) {
	return s.repomanager.Triage(s.db).ListByUser(ctx, userID)
}

func (s *MirrorService) Contacts(ctx context.Context, userID string) ([]cm.SafetyContact, error) {
	recs, err := s.repomanager.Contacts(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]cm.SafetyContact, 0, len(recs))
	for _, r := range recs {
		out = append(out, cm.SafetyContact{Name: r.Name, Phone: r.Phone, SMS: r.SMS, Email: r.Email})
	}
	return out, nil
}

// Journal returns the newest entries first. A non-positive limit means
// DefaultJournalLimit.
func (s *MirrorService) Journal(ctx context.Context, userID string, limit int) ([]cm.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	recs, err := s.repomanager.Journal(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]cm.JournalEntry, 0, len(recs))
	for _, r := range recs {
		out = append(out, cm.JournalEntry{ID: r.ID, CreatedAt: r.CreatedAt, Title: r.Title, Body: r.Body, Source: r.Source})
	}
	return out, nil
}

// ValidShareToken reports whether token has the length and alphabet of a
// generated share token.
func ValidShareToken(token string) bool {
	if len(token) != common.ShareTokenLength {
		return false
	}
	for _, r := range token {
		if !strings.ContainsRune(common.ShareTokenAlphabet, r) {
			return false
		}
	}
	return true
}

