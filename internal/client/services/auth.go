package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/client"
	"github.com/dmitrijs2005/gophsafe/internal/client/session"
	"github.com/dmitrijs2005/gophsafe/internal/common"
)

// AuthService signs the device in and out of the mirror server.
//
// Contract:
//   - Register: create an account on the server.
//   - Login: authenticate and store the session locally.
//   - Logout: forget the stored session; local data is kept.
//   - Restore: hand a stored session's tokens to the transport on start-up.
//   - Ping: check server liveness.
//   - Close: release the transport.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*session.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions *session.Store
}

func NewAuthService(c client.Client, sessions *session.Store) AuthService {
	return &authService{client: c, sessions: sessions}
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}
	if _, err := a.client.Register(ctx, strings.TrimSpace(username), password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)

	creds, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	sess := &session.Session{
		UserID:       creds.UserID,
		Username:     username,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetTokens("", "")
	return a.sessions.Clear(ctx)
}

func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	sess, err := a.sessions.Current(ctx)
	if err != nil || sess == nil {
		return nil, err
	}
	a.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	return sess, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
