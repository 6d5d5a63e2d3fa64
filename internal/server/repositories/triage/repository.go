// Package triage stores mirrored triage results.
package triage

import (
	"context"

	"github.com/dmitrijs2005/gophsafe/internal/server/models"
)

type Repository interface {
	// Insert records rec. A result already stored for the same user and
	// timestamp is ignored, so client retries are harmless.
	Insert(ctx context.Context, rec *models.TriageRecord) error
	// ListByUser returns the user's results, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.TriageRecord, error)
}
