// Package grpc serves the mirror API: account endpoints, ingestion of
// mirrored records and export presigning, plus the standard health service.
package grpc

import (
	"context"
	"net"

	cm "github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/logging"
	pb "github.com/dmitrijs2005/gophsafe/internal/mirrorpb"
	"github.com/dmitrijs2005/gophsafe/internal/server/models"
	"github.com/dmitrijs2005/gophsafe/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the account API used by the handlers.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// MirrorService stores mirrored records.
type MirrorService interface {
	RecordTriage(ctx context.Context, userID string, r cm.TriageResult) error
	UpsertPlan(ctx context.Context, userID string, p cm.SafetyPlan) error
	UpsertContacts(ctx context.Context, userID string, contacts []cm.SafetyContact) error
	AppendJournal(ctx context.Context, userID string, e cm.JournalEntry) error
}

// ExportService presigns export uploads.
type ExportService interface {
	PresignExport(ctx context.Context, userID, fileName string) (*services.PresignedExport, error)
}

type GRPCServer struct {
	pb.UnimplementedMirrorServiceServer
	address   string
	users     UserService
	mirror    MirrorService
	exports   ExportService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ms MirrorService, es ExportService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		mirror:    ms,
		exports:   es,
		jwtSecret: []byte(secretKey),
	}
}

// newGRPC builds the grpc.Server with the auth interceptor, the mirror
// service and a health server reporting SERVING.
func (s *GRPCServer) newGRPC() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterMirrorServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve runs the server on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newGRPC()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
