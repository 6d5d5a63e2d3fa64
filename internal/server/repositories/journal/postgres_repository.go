package journal

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/dbx"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, rec *models.JournalRecord) error {
	query := `
		INSERT INTO journal (id, user_id, created_at, title, body, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.UserID, rec.CreatedAt.UTC(), rec.Title, rec.Body, rec.Source)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.JournalRecord, error) {
	query := `
		SELECT id, user_id, created_at, title, body, source
		FROM journal
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.JournalRecord
	for rows.Next() {
		var rec models.JournalRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &rec.Title, &rec.Body, &rec.Source); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
