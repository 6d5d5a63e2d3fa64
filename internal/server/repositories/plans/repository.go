// Package plans stores the latest snapshot of each mirrored safety plan.
package plans

import (
	"context"

	"github.com/dmitrijs2005/gophsafe/internal/server/models"
)

type Repository interface {
	// Upsert stores rec unless a snapshot with the same or a later
	// UpdatedAt is already present. It reports whether rec was written.
	// The share token of an existing plan is never changed.
	Upsert(ctx context.Context, rec *models.PlanRecord) (bool, error)
	// GetByShareToken returns common.ErrorNotFound for unknown tokens.
	GetByShareToken(ctx context.Context, token string) (*models.PlanRecord, error)
}
