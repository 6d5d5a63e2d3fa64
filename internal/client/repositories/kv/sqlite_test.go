package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

// runContract exercises the Repository contract shared by every implementation.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "triage.last", []byte(`{"level":"red"}`)))

		v, err := r.Get(ctx, "triage.last")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"level":"red"}`), v)
	})

	t.Run("missing key is nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k", []byte("v1")))
		require.NoError(t, r.Set(ctx, "k", []byte("v2")))

		v, err := r.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), v)
	})

	t.Run("delete and list", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte("1")))
		require.NoError(t, r.Set(ctx, "b", []byte("2")))
		require.NoError(t, r.Delete(ctx, "a"))
		require.NoError(t, r.Delete(ctx, "never-existed"))

		all, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"b": []byte("2")}, all)
	})

	t.Run("clear", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte("1")))
		require.NoError(t, r.Clear(ctx))

		all, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestSQLiteRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		return NewSQLiteRepository(setupDB(t))
	})
}

func TestMemoryRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		return NewMemoryRepository()
	})
}

func TestSQLiteRepository_ErrorsWrapKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), "safety_plan.current")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kv[safety_plan.current]")

	err = r.Set(context.Background(), "safety_plan.current", []byte("{}"))
	require.Error(t, err)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	in := []byte("abc")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'z'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'y'
	again, _ := r.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}
