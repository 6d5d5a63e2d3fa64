package client

import (
	"context"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
)

// Credentials is what a successful login yields.
type Credentials struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// PresignedExport is a pair of temporary URLs for one exported document.
type PresignedExport struct {
	Key    string
	PutURL string
	GetURL string
}

// Client is the remote mirror API as seen by the device.
type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (*Credentials, error)
	SetTokens(accessToken, refreshToken string)
	Ping(ctx context.Context) error

	RecordTriage(ctx context.Context, r models.TriageResult) error
	UpsertPlan(ctx context.Context, p models.SafetyPlan) error
	UpsertContacts(ctx context.Context, contacts []models.SafetyContact) error
	AppendJournal(ctx context.Context, e models.JournalEntry) error
	PresignExport(ctx context.Context, fileName string) (*PresignedExport, error)
}
