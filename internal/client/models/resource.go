package models

import "time"

// ResourceKind classifies how a crisis resource is reached.
type ResourceKind string

const (
	KindEmergency ResourceKind = "emergency"
	KindAdvice    ResourceKind = "advice"
	KindChat      ResourceKind = "chat"
	KindPhone     ResourceKind = "phone"
	KindSMS       ResourceKind = "sms"
)

// CrisisResource is static reference data describing where to get help.
type CrisisResource struct {
	ID    string       `json:"id"`
	Label string       `json:"label"`
	Kind  ResourceKind `json:"kind"`
	Href  string       `json:"href"`
	Hours string       `json:"hours,omitempty"`
	Note  string       `json:"note,omitempty"`
}

// JournalEntry is a markdown note recorded from a plan or triage export.
type JournalEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Source    string    `json:"source"`
}
