package mirrorpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// MirrorServiceClient is the client API of the mirror service.
type MirrorServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	RecordTriage(ctx context.Context, in *RecordTriageRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UpsertPlan(ctx context.Context, in *UpsertPlanRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UpsertContacts(ctx context.Context, in *UpsertContactsRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AppendJournal(ctx context.Context, in *AppendJournalRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	PresignExport(ctx context.Context, in *PresignExportRequest, opts ...grpc.CallOption) (*PresignExportResponse, error)
}

type mirrorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMirrorServiceClient(cc grpc.ClientConnInterface) MirrorServiceClient {
	return &mirrorServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mirrorServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *mirrorServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *mirrorServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *mirrorServiceClient) RecordTriage(ctx context.Context, in *RecordTriageRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodRecordTriage, in, opts)
}

func (c *mirrorServiceClient) UpsertPlan(ctx context.Context, in *UpsertPlanRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodUpsertPlan, in, opts)
}

func (c *mirrorServiceClient) UpsertContacts(ctx context.Context, in *UpsertContactsRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodUpsertContacts, in, opts)
}

func (c *mirrorServiceClient) AppendJournal(ctx context.Context, in *AppendJournalRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodAppendJournal, in, opts)
}

func (c *mirrorServiceClient) PresignExport(ctx context.Context, in *PresignExportRequest, opts ...grpc.CallOption) (*PresignExportResponse, error) {
	return invoke[PresignExportResponse](ctx, c.cc, MethodPresignExport, in, opts)
}
