package models

import (
	"encoding/json"
	"time"
)

// TriageRecord is one mirrored triage result.
type TriageRecord struct {
	ID             int64
	UserID         string
	RecordedAt     time.Time
	Level          string
	DangerNow      bool
	HavePlan       bool
	AccessMeans    bool
	UnderInfluence bool
	Alone          bool
}

// ContactRecord is a trusted contact, unique per user and name.
type ContactRecord struct {
	UserID    string
	Name      string
	Phone     string
	SMS       string
	Email     string
	UpdatedAt time.Time
}

// PlanRecord is the latest mirrored snapshot of a safety plan. Document holds
// the plan as JSON.
type PlanRecord struct {
	ID         string
	UserID     string
	ShareToken string
	Document   json.RawMessage
	UpdatedAt  time.Time
}

// JournalRecord is a mirrored journal entry. IDs come from the client, so
// appends are idempotent.
type JournalRecord struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	Title     string
	Body      string
	Source    string
}
