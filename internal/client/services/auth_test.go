package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophsafe/internal/client/client"
	"github.com/dmitrijs2005/gophsafe/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophsafe/internal/client/session"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(c *fakeClient) (AuthService, *session.Store) {
	store := session.NewStore(kv.NewMemoryRepository(), "")
	return NewAuthService(c, store), store
}

func TestAuth_LoginStoresSession(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{loginCreds: &client.Credentials{UserID: "u1", AccessToken: "A", RefreshToken: "R"}}
	a, store := newAuth(c)

	sess, err := a.Login(ctx, " alex ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alex", sess.Username)
	assert.Equal(t, "alex", c.lastUser)

	stored, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestAuth_LoginFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{loginErr: client.ErrUnauthorized}
	a, store := newAuth(c)

	_, err := a.Login(ctx, "alex", "pw")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	stored, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAuth_LogoutClearsSessionAndTokens(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{loginCreds: &client.Credentials{UserID: "u1", AccessToken: "A", RefreshToken: "R"}}
	a, store := newAuth(c)

	_, err := a.Login(ctx, "alex", "pw")
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx))

	stored, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Empty(t, c.tokenAccess)
}

func TestAuth_RestoreHandsTokensToClient(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{}
	a, store := newAuth(c)

	sess, err := a.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, store.Save(ctx, &session.Session{UserID: "u1", AccessToken: "A", RefreshToken: "R"}))
	sess, err = a.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "A", c.tokenAccess)
	assert.Equal(t, "R", c.tokenRefr)
}

func TestAuth_RegisterValidatesAndWraps(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{}
	a, _ := newAuth(c)

	require.ErrorIs(t, a.Register(ctx, "", "pw"), common.ErrValidation)
	require.ErrorIs(t, a.Register(ctx, "alex", ""), common.ErrValidation)
	require.NoError(t, a.Register(ctx, "alex", "pw"))

	c.registerErr = common.ErrAlreadyExists
	require.ErrorIs(t, a.Register(ctx, "alex", "pw"), common.ErrAlreadyExists)
}

func TestAuth_PingAndClose(t *testing.T) {
	c := &fakeClient{pingErr: errors.New("down")}
	a, _ := newAuth(c)

	require.Error(t, a.Ping(context.Background()))
	require.NoError(t, a.Close(context.Background()))
	assert.True(t, c.closed)
}
