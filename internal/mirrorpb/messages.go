package mirrorpb

import "github.com/dmitrijs2005/gophsafe/internal/client/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RecordTriageRequest struct {
	Result models.TriageResult `json:"result"`
}

type UpsertPlanRequest struct {
	Plan models.SafetyPlan `json:"plan"`
}

// UpsertContactsRequest carries contacts keyed by name; a repeated name
// overwrites the stored record.
type UpsertContactsRequest struct {
	Contacts []models.SafetyContact `json:"contacts"`
}

type AppendJournalRequest struct {
	Entry models.JournalEntry `json:"entry"`
}

type PresignExportRequest struct {
	FileName string `json:"fileName"`
}

// PresignExportResponse holds a PUT URL for uploading an exported document
// and a GET URL for sharing it.
type PresignExportResponse struct {
	Key    string `json:"key"`
	PutURL string `json:"putUrl"`
	GetURL string `json:"getUrl"`
}
