package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	pb "github.com/dmitrijs2005/gophsafe/internal/mirrorpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RefreshHook is called with the new token pair after a transparent refresh.
type RefreshHook func(ctx context.Context, accessToken, refreshToken string) error

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.MirrorServiceClient
	health      healthpb.HealthClient
	onRefresh   RefreshHook

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	accessToken, refreshToken := s.tokens()
	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil || method == pb.MethodRefreshToken {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if rerr != nil {
		return rerr
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	if s.onRefresh != nil {
		if herr := s.onRefresh(ctx, resp.AccessToken, resp.RefreshToken); herr != nil {
			return fmt.Errorf("failed to persist refreshed tokens: %w", herr)
		}
	}

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewMirrorClient dials the mirror server. onRefresh may be nil.
func NewMirrorClient(endpointURL string, onRefresh RefreshHook) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, onRefresh: onRefresh}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMirrorServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserID, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (*Credentials, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)

	return &Credentials{UserID: resp.UserID, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) RecordTriage(ctx context.Context, r models.TriageResult) error {
	_, err := s.client.RecordTriage(ctx, &pb.RecordTriageRequest{Result: r})
	return s.mapError(err)
}

func (s *GRPCClient) UpsertPlan(ctx context.Context, p models.SafetyPlan) error {
	_, err := s.client.UpsertPlan(ctx, &pb.UpsertPlanRequest{Plan: p})
	return s.mapError(err)
}

func (s *GRPCClient) UpsertContacts(ctx context.Context, contacts []models.SafetyContact) error {
	_, err := s.client.UpsertContacts(ctx, &pb.UpsertContactsRequest{Contacts: contacts})
	return s.mapError(err)
}

func (s *GRPCClient) AppendJournal(ctx context.Context, e models.JournalEntry) error {
	_, err := s.client.AppendJournal(ctx, &pb.AppendJournalRequest{Entry: e})
	return s.mapError(err)
}

func (s *GRPCClient) PresignExport(ctx context.Context, fileName string) (*PresignedExport, error) {
	resp, err := s.client.PresignExport(ctx, &pb.PresignExportRequest{FileName: fileName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &PresignedExport{Key: resp.Key, PutURL: resp.PutURL, GetURL: resp.GetURL}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrAlreadyExists, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
