package triage

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

func (r *PostgresRepository) Insert(ctx context.Context, rec *models.TriageRecord) error {
	query := `
		INSERT INTO triage_log (user_id, recorded_at, level, danger_now, have_plan, access_means, under_influence, alone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, recorded_at) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.RecordedAt.UTC(), rec.Level,
		rec.DangerNow, rec.HavePlan, rec.AccessMeans, rec.UnderInfluence, rec.Alone)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.TriageRecord, error) {
	query := `
		SELECT id, user_id, recorded_at, level, danger_now, have_plan, access_means, under_influence, alone
		FROM triage_log
		WHERE user_id = $1
		ORDER BY recorded_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.TriageRecord
	for rows.Next() {
		var rec models.TriageRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.RecordedAt, &rec.Level,
			&rec.DangerNow, &rec.HavePlan, &rec.AccessMeans, &rec.UnderInfluence, &rec.Alone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
