package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/common"
	pb "github.com/dmitrijs2005/gophsafe/internal/mirrorpb"
	"github.com/dmitrijs2005/gophsafe/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withToken(ctx context.Context, token string) context.Context {
	return metadata.NewIncomingContext(ctx, metadata.New(map[string]string{common.AccessTokenHeaderName: token}))
}

func mustToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, []byte(testSecret), ttl)
	require.NoError(t, err)
	return tok
}

func TestInterceptor_PublicMethodsSkipAuth(t *testing.T) {
	s := newTestServer()

	for _, m := range []string{pb.MethodLogin, pb.MethodRegister, pb.MethodRefreshToken, "/grpc.health.v1.Health/Check"} {
		called := false
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return "ok", nil
		}
		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_Rejects(t *testing.T) {
	expired := mustToken(t, "u1", -time.Minute)

	tests := []struct {
		name string
		ctx  context.Context
		msg  string
	}{
		{"missing token", context.Background(), "missing token"},
		{"garbage token", withToken(context.Background(), "not-a-jwt"), common.ErrInvalidToken.Error()},
		{"expired token", withToken(context.Background(), expired), common.ErrTokenExpired.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			h := func(ctx context.Context, req interface{}) (interface{}, error) {
				t.Fatal("handler must not be called")
				return nil, nil
			}

			_, err := s.accessTokenInterceptor(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.MethodUpsertPlan}, h)
			require.Error(t, err)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.Equal(t, tt.msg, status.Convert(err).Message())
		})
	}
}

func TestInterceptor_ValidTokenSetsUser(t *testing.T) {
	s := newTestServer()
	ctx := withToken(context.Background(), mustToken(t, "u42", time.Minute))

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = userIDFromContext(ctx)
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.MethodUpsertPlan}, h)
	require.NoError(t, err)
	assert.Equal(t, "u42", got)
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer()
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", status.Error(codes.NotFound, "x")
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.MethodLogin}, h)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
