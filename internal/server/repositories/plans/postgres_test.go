package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	upsertQuery = `(?s)^INSERT\s+INTO\s+plans\b.*ON\s+CONFLICT\s+\(id\)\s+DO\s+UPDATE\b.*plans\.updated_at\s*<\s*EXCLUDED\.updated_at\s*$`
	getQuery    = `(?s)^SELECT\s+id,.*FROM\s+plans\s+WHERE\s+share_token\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func testRecord() *models.PlanRecord {
	return &models.PlanRecord{
		ID:         "p1",
		UserID:     "u1",
		ShareToken: "AAAAAAAAAAAAAAAAAAAAAAAA",
		Document:   json.RawMessage(`{"id":"p1"}`),
		UpdatedAt:  time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}
}

func TestUpsert(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"written", 1, true},
		{"stale", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			rec := testRecord()
			mock.ExpectExec(upsertQuery).
				WithArgs(rec.ID, rec.UserID, rec.ShareToken, []byte(rec.Document), rec.UpdatedAt).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := repo.Upsert(context.Background(), rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(upsertQuery).WillReturnError(errors.New("boom"))

	_, err := repo.Upsert(context.Background(), testRecord())
	require.ErrorContains(t, err, "db error: boom")
}

func TestGetByShareToken(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	rec := testRecord()
	rows := sqlmock.NewRows([]string{"id", "user_id", "share_token", "document", "updated_at"}).
		AddRow(rec.ID, rec.UserID, rec.ShareToken, []byte(rec.Document), rec.UpdatedAt)
	mock.ExpectQuery(getQuery).WithArgs(rec.ShareToken).WillReturnRows(rows)

	got, err := repo.GetByShareToken(context.Background(), rec.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.JSONEq(t, `{"id":"p1"}`, string(got.Document))
}

func TestGetByShareToken_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(getQuery).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByShareToken(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByShareToken_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(getQuery).WithArgs("tok").WillReturnError(errors.New("boom"))

	_, err := repo.GetByShareToken(context.Background(), "tok")
	require.ErrorContains(t, err, "db error: boom")
}
