package contacts

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
	upsertQuery = `(?s)^INSERT\s+INTO\s+contacts\b.*ON\s+CONFLICT\s+\(user_id,\s*name\)\s+DO\s+UPDATE\b.*$`
	listQuery   = `(?s)^SELECT\s+user_id,.*FROM\s+contacts\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+name\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	mock.ExpectExec(upsertQuery).
		WithArgs("u1", "Sam", "+44 1", "", "sam@example.com", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.ContactRecord{
		UserID: "u1", Name: "Sam", Phone: "+44 1", Email: "sam@example.com", UpdatedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(upsertQuery).WillReturnError(errors.New("boom"))

	err := repo.Upsert(context.Background(), &models.ContactRecord{UserID: "u1", Name: "Sam"})
	require.ErrorContains(t, err, "db error: boom")
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"user_id", "name", "phone", "sms", "email", "updated_at"}).
		AddRow("u1", "Ann", "1", "", "", at).
		AddRow("u1", "Sam", "", "2", "", at)
	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)

	want := []models.ContactRecord{
		{UserID: "u1", Name: "Ann", Phone: "1", UpdatedAt: at},
		{UserID: "u1", Name: "Sam", SMS: "2", UpdatedAt: at},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("contacts mismatch (-want +got):\n%s", diff)
	}
}

func TestListByUser_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(listQuery).WithArgs("u1").WillReturnError(errors.New("boom"))

	_, err := repo.ListByUser(context.Background(), "u1")
	require.ErrorContains(t, err, "db error: boom")
}
