package plans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/dbx"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.PlanRecord) (bool, error) {
	query := `
		INSERT INTO plans (id, user_id, share_token, document, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
		WHERE plans.user_id = EXCLUDED.user_id AND plans.updated_at < EXCLUDED.updated_at
	`
	res, err := r.db.ExecContext(ctx, query, rec.ID, rec.UserID, rec.ShareToken, []byte(rec.Document), rec.UpdatedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) GetByShareToken(ctx context.Context, token string) (*models.PlanRecord, error) {
	query := `
		SELECT id, user_id, share_token, document, updated_at
		FROM plans
		WHERE share_token = $1
	`
	rec := &models.PlanRecord{}
	var doc []byte
	err := r.db.QueryRowContext(ctx, query, token).Scan(&rec.ID, &rec.UserID, &rec.ShareToken, &doc, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	rec.Document = doc
	return rec, nil
}
