package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const (
	appendQuery = `(?s)^INSERT\s+INTO\s+journal\b.*ON\s+CONFLICT\s+\(id\)\s+DO\s+NOTHING\s*$`
	listQuery   = `(?s)^SELECT\s+id,.*FROM\s+journal\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestAppend(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	mock.ExpectExec(appendQuery).
		WithArgs("j1", "u1", at, "Plan", "# Plan", "plan").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), &models.JournalRecord{
		ID: "j1", UserID: "u1", CreatedAt: at, Title: "Plan", Body: "# Plan", Source: "plan",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(appendQuery).WillReturnError(errors.New("boom"))

	err := repo.Append(context.Background(), &models.JournalRecord{ID: "j1", UserID: "u1"})
	require.ErrorContains(t, err, "db error: boom")
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "created_at", "title", "body", "source"}).
		AddRow("j2", "u1", at.Add(time.Minute), "Triage", "red", "triage").
		AddRow("j1", "u1", at, "Plan", "# Plan", "plan")
	mock.ExpectQuery(listQuery).WithArgs("u1", 5).WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1", 5)
	require.NoError(t, err)

	want := []models.JournalRecord{
		{ID: "j2", UserID: "u1", CreatedAt: at.Add(time.Minute), Title: "Triage", Body: "red", Source: "triage"},
		{ID: "j1", UserID: "u1", CreatedAt: at, Title: "Plan", Body: "# Plan", Source: "plan"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("journal mismatch (-want +got):\n%s", diff)
	}
}

func TestListByUser_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(listQuery).WithArgs("u1", 5).WillReturnError(errors.New("boom"))

	_, err := repo.ListByUser(context.Background(), "u1", 5)
	require.ErrorContains(t, err, "db error: boom")
}
