package mirrorpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "gophsafe.mirror.v1.MirrorService"

// Fully-qualified method names.
const (
	MethodRegister       = "/" + ServiceName + "/Register"
	MethodLogin          = "/" + ServiceName + "/Login"
	MethodRefreshToken   = "/" + ServiceName + "/RefreshToken"
	MethodRecordTriage   = "/" + ServiceName + "/RecordTriage"
	MethodUpsertPlan     = "/" + ServiceName + "/UpsertPlan"
	MethodUpsertContacts = "/" + ServiceName + "/UpsertContacts"
	MethodAppendJournal  = "/" + ServiceName + "/AppendJournal"
	MethodPresignExport  = "/" + ServiceName + "/PresignExport"
)

// PublicMethods do not require an access token.
var PublicMethods = map[string]bool{
	MethodRegister:     true,
	MethodLogin:        true,
	MethodRefreshToken: true,
}

// MirrorServiceServer is implemented by the mirror server.
type MirrorServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	RecordTriage(context.Context, *RecordTriageRequest) (*emptypb.Empty, error)
	UpsertPlan(context.Context, *UpsertPlanRequest) (*emptypb.Empty, error)
	UpsertContacts(context.Context, *UpsertContactsRequest) (*emptypb.Empty, error)
	AppendJournal(context.Context, *AppendJournalRequest) (*emptypb.Empty, error)
	PresignExport(context.Context, *PresignExportRequest) (*PresignExportResponse, error)
}

// UnimplementedMirrorServiceServer answers every call with codes.Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedMirrorServiceServer struct{}

func (UnimplementedMirrorServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedMirrorServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedMirrorServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedMirrorServiceServer) RecordTriage(context.Context, *RecordTriageRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordTriage not implemented")
}
func (UnimplementedMirrorServiceServer) UpsertPlan(context.Context, *UpsertPlanRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertPlan not implemented")
}
func (UnimplementedMirrorServiceServer) UpsertContacts(context.Context, *UpsertContactsRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertContacts not implemented")
}
func (UnimplementedMirrorServiceServer) AppendJournal(context.Context, *AppendJournalRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AppendJournal not implemented")
}
func (UnimplementedMirrorServiceServer) PresignExport(context.Context, *PresignExportRequest) (*PresignExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PresignExport not implemented")
}

// RegisterMirrorServiceServer attaches srv to a gRPC server.
func RegisterMirrorServiceServer(s grpc.ServiceRegistrar, srv MirrorServiceServer) {
	s.RegisterService(&MirrorService_ServiceDesc, srv)
}

func unary[Req any, Resp any](method string, call func(MirrorServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MirrorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MirrorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MirrorService_ServiceDesc describes the mirror service for grpc.Server.
var MirrorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MirrorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(MethodRegister, MirrorServiceServer.Register)},
		{MethodName: "Login", Handler: unary(MethodLogin, MirrorServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unary(MethodRefreshToken, MirrorServiceServer.RefreshToken)},
		{MethodName: "RecordTriage", Handler: unary(MethodRecordTriage, MirrorServiceServer.RecordTriage)},
		{MethodName: "UpsertPlan", Handler: unary(MethodUpsertPlan, MirrorServiceServer.UpsertPlan)},
		{MethodName: "UpsertContacts", Handler: unary(MethodUpsertContacts, MirrorServiceServer.UpsertContacts)},
		{MethodName: "AppendJournal", Handler: unary(MethodAppendJournal, MirrorServiceServer.AppendJournal)},
		{MethodName: "PresignExport", Handler: unary(MethodPresignExport, MirrorServiceServer.PresignExport)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mirror.proto",
}
