// Package session persists the authenticated mirror session on the device.
//
// The session lives in the local key/value store so it survives restarts.
// Its absence means the user is not signed in and remote mirroring is
// skipped.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
)

// DefaultKey is the storage key of the session record.
const DefaultKey = "session.current"

// Session identifies the signed-in user and carries the tokens used for
// mirror calls.
type Session struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Provider resolves the current session. Current returns (nil, nil) when no
// one is signed in.
type Provider interface {
	Current(ctx context.Context) (*Session, error)
}

// Store is a Provider backed by the key/value store.
type Store struct {
	repo kv.Repository
	key  string
}

func NewStore(repo kv.Repository, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{repo: repo, key: key}
}

// Current returns the stored session. A corrupt or incomplete record is
// treated as signed out.
func (s *Store) Current(ctx context.Context) (*Session, error) {
	sess, err := kv.GetJSON[Session](ctx, s.repo, s.key)
	if errors.Is(err, kv.ErrCorrupt) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if sess == nil || sess.UserID == "" || sess.AccessToken == "" {
		return nil, nil
	}
	return sess, nil
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	if err := kv.SetJSON(ctx, s.repo, s.key, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// UpdateTokens replaces the tokens of the stored session after a refresh.
// It is a no-op when nobody is signed in.
func (s *Store) UpdateTokens(ctx context.Context, accessToken, refreshToken string) error {
	sess, err := s.Current(ctx)
	if err != nil || sess == nil {
		return err
	}
	sess.AccessToken = accessToken
	sess.RefreshToken = refreshToken
	return s.Save(ctx, sess)
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
