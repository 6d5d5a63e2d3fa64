package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/client"
	"github.com/dmitrijs2005/gophsafe/internal/client/mirror"
	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
)

// recordingSyncer captures entities instead of sending them anywhere.
type recordingSyncer struct {
	mu       sync.Mutex
	entities []mirror.Entity
	status   mirror.Status
}

func (r *recordingSyncer) TrySync(_ context.Context, e mirror.Entity) mirror.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = append(r.entities, e)
	st := r.status
	if st == "" {
		st = mirror.StatusSynced
	}
	return mirror.Outcome{Kind: e.Kind(), Status: st}
}

func (r *recordingSyncer) Go(e mirror.Entity, done func(mirror.Outcome)) {
	out := r.TrySync(context.Background(), e)
	if done != nil {
		done(out)
	}
}

func (r *recordingSyncer) Wait() {}

func (r *recordingSyncer) all() []mirror.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mirror.Entity(nil), r.entities...)
}

// brokenWrites fails every Set while reads keep working.
type brokenWrites struct {
	kv.Repository
}

func (brokenWrites) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

// brokenReads fails every Get.
type brokenReads struct {
	kv.Repository
}

func (brokenReads) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("io error")
}

// fixedClock returns t and then advances by step on every call.
func fixedClock(t time.Time, step time.Duration) Clock {
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := t
		t = t.Add(step)
		return now
	}
}

// throwingRemote satisfies mirror.Remote and blows up on every call.
type throwingRemote struct{}

func (throwingRemote) RecordTriage(context.Context, models.TriageResult) error { panic("remote down") }
func (throwingRemote) UpsertPlan(context.Context, models.SafetyPlan) error     { panic("remote down") }
func (throwingRemote) UpsertContacts(context.Context, []models.SafetyContact) error {
	panic("remote down")
}
func (throwingRemote) AppendJournal(context.Context, models.JournalEntry) error { panic("remote down") }

type fakeClient struct {
	client.Client

	registerErr error
	loginCreds  *client.Credentials
	loginErr    error
	pingErr     error
	closed      bool

	lastUser    string
	tokenAccess string
	tokenRefr   string
}

func (f *fakeClient) Register(_ context.Context, username, _ string) (string, error) {
	f.lastUser = username
	return "u1", f.registerErr
}

func (f *fakeClient) Login(_ context.Context, username, _ string) (*client.Credentials, error) {
	f.lastUser = username
	return f.loginCreds, f.loginErr
}

func (f *fakeClient) SetTokens(a, r string) {
	f.tokenAccess, f.tokenRefr = a, r
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}
