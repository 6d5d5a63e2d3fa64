package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophsafe/internal/common"
	pb "github.com/dmitrijs2005/gophsafe/internal/mirrorpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &pb.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}

	return &pb.LoginResponse{UserID: res.UserID, AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}

	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) RecordTriage(ctx context.Context, req *pb.RecordTriageRequest) (*emptypb.Empty, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.mirror.RecordTriage(ctx, userID, req.Result); err != nil {
		return nil, s.toStatus(ctx, "record triage", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) UpsertPlan(ctx context.Context, req *pb.UpsertPlanRequest) (*emptypb.Empty, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.mirror.UpsertPlan(ctx, userID, req.Plan); err != nil {
		return nil, s.toStatus(ctx, "upsert plan", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) UpsertContacts(ctx context.Context, req *pb.UpsertContactsRequest) (*emptypb.Empty, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.mirror.UpsertContacts(ctx, userID, req.Contacts); err != nil {
		return nil, s.toStatus(ctx, "upsert contacts", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) AppendJournal(ctx context.Context, req *pb.AppendJournalRequest) (*emptypb.Empty, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.mirror.AppendJournal(ctx, userID, req.Entry); err != nil {
		return nil, s.toStatus(ctx, "append journal", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) PresignExport(ctx context.Context, req *pb.PresignExportRequest) (*pb.PresignExportResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.exports.PresignExport(ctx, userID, req.FileName)
	if err != nil {
		return nil, s.toStatus(ctx, "presign export", err)
	}
	return &pb.PresignExportResponse{Key: out.Key, PutURL: out.PutURL, GetURL: out.GetURL}, nil
}

func requireUser(ctx context.Context) (string, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return userID, nil
}

// toStatus maps service errors to gRPC codes. Unexpected errors are logged
// and hidden behind a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "username already taken")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
