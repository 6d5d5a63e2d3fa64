// Package mirror copies locally saved records to the remote server on a
// best-effort basis.
//
// Local state is authoritative. A mirror call never fails the operation that
// triggered it: without a session the copy is skipped, and transport errors
// are logged and dropped. Every attempt produces an Outcome that can be
// observed on an optional channel.
package mirror

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
)

// DefaultTimeout bounds one detached mirror attempt.
const DefaultTimeout = 5 * time.Second

// Kind names the type of record being mirrored.
type Kind string

const (
	KindTriage  Kind = "triage"
	KindPlan    Kind = "safety_plan"
	KindJournal Kind = "journal"
)

// Status is the result of one mirror attempt.
type Status string

const (
	StatusSkippedNoSession Status = "skipped_no_session"
	StatusSynced           Status = "synced"
	StatusFailed           Status = "failed"
)

// Entity is exactly one of a triage result, a plan or a journal entry.
type Entity struct {
	Triage  *models.TriageResult
	Plan    *models.SafetyPlan
	Journal *models.JournalEntry
}

func TriageEntity(r models.TriageResult) Entity { return Entity{Triage: &r} }

// PlanEntity snapshots p so later edits do not race with the upload.
func PlanEntity(p *models.SafetyPlan) Entity { return Entity{Plan: p.Clone()} }

func JournalEntity(e models.JournalEntry) Entity { return Entity{Journal: &e} }

func (e Entity) Kind() Kind {
	switch {
	case e.Triage != nil:
		return KindTriage
	case e.Plan != nil:
		return KindPlan
	case e.Journal != nil:
		return KindJournal
	}
	return ""
}

// Outcome describes what happened to one entity.
type Outcome struct {
	Kind   Kind
	Status Status
	Err    error
	At     time.Time
}

// Syncer mirrors entities to the remote store.
type Syncer interface {
	// TrySync performs one attempt synchronously. It never panics and
	// reports failures only through the Outcome.
	TrySync(ctx context.Context, e Entity) Outcome

	// Go runs TrySync in the background under a fresh timeout and calls
	// done, if not nil, with the outcome.
	Go(e Entity, done func(Outcome))

	// Wait blocks until every attempt started by Go has finished.
	Wait()
}

// Remote is the subset of the mirror API used for copying records.
type Remote interface {
	RecordTriage(ctx context.Context, r models.TriageResult) error
	UpsertPlan(ctx context.Context, p models.SafetyPlan) error
	UpsertContacts(ctx context.Context, contacts []models.SafetyContact) error
	AppendJournal(ctx context.Context, e models.JournalEntry) error
}
