package journal

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/dbx"
)

// SQLiteRepository implements Repository over the journal table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, e *models.JournalEntry) error {
	query := `INSERT INTO journal (id, created_at, title, body, source) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.CreatedAt.UTC(), e.Title, e.Body, e.Source)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	query := `SELECT id, created_at, title, body, source FROM journal ORDER BY created_at DESC, id DESC LIMIT ?`
	return r.list(ctx, query, limit)
}

func (r *SQLiteRepository) Pending(ctx context.Context) ([]models.JournalEntry, error) {
	query := `SELECT id, created_at, title, body, source FROM journal WHERE mirrored = 0 ORDER BY created_at, id`
	return r.list(ctx, query)
}

func (r *SQLiteRepository) MarkMirrored(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE journal SET mirrored = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("wrong rows affected count: %d", n)
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal: %w", err)
	}
	defer rows.Close()

	result := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Title, &e.Body, &e.Source); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
