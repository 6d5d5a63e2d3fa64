// Package journal stores mirrored journal entries.
package journal

import (
	"context"

	"github.com/dmitrijs2005/gophsafe/internal/server/models"
)

type Repository interface {
	// Append stores rec; an entry with the same ID is kept as is.
	Append(ctx context.Context, rec *models.JournalRecord) error
	// ListByUser returns at most limit entries, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.JournalRecord, error)
}
