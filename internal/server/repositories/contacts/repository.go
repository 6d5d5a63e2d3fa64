// Package contacts stores mirrored trusted contacts, keyed by user and name.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/gophsafe/internal/server/models"
)

type Repository interface {
	// Upsert inserts rec or overwrites the contact with the same name.
	Upsert(ctx context.Context, rec *models.ContactRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.ContactRecord, error)
}
