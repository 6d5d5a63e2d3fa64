package contacts

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

func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.ContactRecord) error {
	query := `
		INSERT INTO contacts (user_id, name, phone, sms, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, name) DO UPDATE
		SET phone = EXCLUDED.phone, sms = EXCLUDED.sms, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, rec.UserID, rec.Name, rec.Phone, rec.SMS, rec.Email, rec.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.ContactRecord, error) {
	query := `
		SELECT user_id, name, phone, sms, email, updated_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.ContactRecord
	for rows.Next() {
		var rec models.ContactRecord
		if err := rows.Scan(&rec.UserID, &rec.Name, &rec.Phone, &rec.SMS, &rec.Email, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
