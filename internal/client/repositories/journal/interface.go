// Package journal keeps the local, append-only journal of exported plan and
// triage notes. It is the fallback target when no session exists and the
// source for mirroring journal notes once one does.
package journal

import (
	"context"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
)

// Repository describes the local journal store.
type Repository interface {
	// Append inserts a new entry. Entries are never updated in place.
	Append(ctx context.Context, e *models.JournalEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)

	// Pending returns entries not yet mirrored, oldest first.
	Pending(ctx context.Context) ([]models.JournalEntry, error)

	// MarkMirrored flags an entry as copied to the remote store.
	MarkMirrored(ctx context.Context, id string) error
}
