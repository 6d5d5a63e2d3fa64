package mirror

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/session"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
)

var errUnknownEntity = errors.New("empty mirror entity")

// BestEffort is the Syncer used when a remote server is configured.
// It is safe for concurrent use.
type BestEffort struct {
	sessions session.Provider
	remote   Remote
	logger   logging.Logger
	timeout  time.Duration
	outcomes chan<- Outcome
	now      func() time.Time

	wg sync.WaitGroup
}

type Option func(*BestEffort)

// WithTimeout overrides DefaultTimeout for detached attempts.
func WithTimeout(d time.Duration) Option {
	return func(b *BestEffort) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithOutcomes publishes every outcome on ch. Sends never block; outcomes
// are dropped when ch is full.
func WithOutcomes(ch chan<- Outcome) Option {
	return func(b *BestEffort) { b.outcomes = ch }
}

func WithClock(now func() time.Time) Option {
	return func(b *BestEffort) { b.now = now }
}

func NewBestEffort(sessions session.Provider, remote Remote, logger logging.Logger, opts ...Option) *BestEffort {
	b := &BestEffort{
		sessions: sessions,
		remote:   remote,
		logger:   logger.With("module", "mirror"),
		timeout:  DefaultTimeout,
		now:      time.Now,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *BestEffort) TrySync(ctx context.Context, e Entity) (out Outcome) {
	out = Outcome{Kind: e.Kind()}

	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Err = fmt.Errorf("mirror panic: %v", r)
		}
		out.At = b.now()
		b.report(ctx, out)
	}()

	sess, err := b.sessions.Current(ctx)
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}
	if sess == nil {
		out.Status = StatusSkippedNoSession
		return out
	}

	if err := b.push(ctx, e); err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}

	out.Status = StatusSynced
	return out
}

func (b *BestEffort) push(ctx context.Context, e Entity) error {
	switch {
	case e.Triage != nil:
		return b.remote.RecordTriage(ctx, *e.Triage)
	case e.Plan != nil:
		if err := b.remote.UpsertPlan(ctx, *e.Plan); err != nil {
			return err
		}
		if contacts := e.Plan.Contacts(); len(contacts) > 0 {
			return b.remote.UpsertContacts(ctx, contacts)
		}
		return nil
	case e.Journal != nil:
		return b.remote.AppendJournal(ctx, *e.Journal)
	}
	return errUnknownEntity
}

func (b *BestEffort) report(ctx context.Context, out Outcome) {
	switch out.Status {
	case StatusFailed:
		b.logger.Warn(ctx, "mirror failed", "kind", out.Kind, "error", out.Err)
	case StatusSkippedNoSession:
		b.logger.Debug(ctx, "mirror skipped, no session", "kind", out.Kind)
	default:
		b.logger.Debug(ctx, "mirrored", "kind", out.Kind)
	}

	if b.outcomes == nil {
		return
	}
	select {
	case b.outcomes <- out:
	default:
	}
}

func (b *BestEffort) Go(e Entity, done func(Outcome)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()

		out := b.TrySync(ctx, e)
		if done != nil {
			done(out)
		}
	}()
}

func (b *BestEffort) Wait() {
	b.wg.Wait()
}
