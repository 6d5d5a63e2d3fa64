package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophsafe/internal/dbx"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/journal"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/plans"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/triage"
	"github.com/dmitrijs2005/gophsafe/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u1"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error
	delErr  error

	createErr     error
	createdUser   string
	createdExpiry time.Time
	deleted       []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, _ string, expiresAt time.Time) error {
	f.createdUser = userID
	f.createdExpiry = expiresAt
	return f.createErr
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

type fakeTriageRepo struct {
	inserted []models.TriageRecord
	err      error
	list     []models.TriageRecord
}

func (f *fakeTriageRepo) Insert(_ context.Context, rec *models.TriageRecord) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, *rec)
	return nil
}

func (f *fakeTriageRepo) ListByUser(context.Context, string) ([]models.TriageRecord, error) {
	return f.list, f.err
}

type fakeContactsRepo struct {
	upserted []models.ContactRecord
	err      error
	list     []models.ContactRecord
}

func (f *fakeContactsRepo) Upsert(_ context.Context, rec *models.ContactRecord) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, *rec)
	return nil
}

func (f *fakeContactsRepo) ListByUser(context.Context, string) ([]models.ContactRecord, error) {
	return f.list, f.err
}

type fakePlansRepo struct {
	upserted []models.PlanRecord
	applied  bool
	err      error
	byToken  *models.PlanRecord
}

func (f *fakePlansRepo) Upsert(_ context.Context, rec *models.PlanRecord) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.upserted = append(f.upserted, *rec)
	return f.applied, nil
}

func (f *fakePlansRepo) GetByShareToken(context.Context, string) (*models.PlanRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byToken, nil
}

type fakeJournalRepo struct {
	appended  []models.JournalRecord
	err       error
	list      []models.JournalRecord
	lastLimit int
}

func (f *fakeJournalRepo) Append(_ context.Context, rec *models.JournalRecord) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, *rec)
	return nil
}

func (f *fakeJournalRepo) ListByUser(_ context.Context, _ string, limit int) ([]models.JournalRecord, error) {
	f.lastLimit = limit
	return f.list, f.err
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	t *fakeTriageRepo
	c *fakeContactsRepo
	p *fakePlansRepo
	j *fakeJournalRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		r: &fakeRefreshRepo{},
		t: &fakeTriageRepo{},
		c: &fakeContactsRepo{},
		p: &fakePlansRepo{applied: true},
		j: &fakeJournalRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Triage(dbx.DBTX) triage.Repository               { return m.t }
func (m *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository           { return m.c }
func (m *fakeRepoManager) Plans(dbx.DBTX) plans.Repository                 { return m.p }
func (m *fakeRepoManager) Journal(dbx.DBTX) journal.Repository             { return m.j }
