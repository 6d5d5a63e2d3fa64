// Package models defines the client-side domain types of the crisis
// subsystem: triage answers and results, the safety plan aggregate and its
// partial updates, crisis resources and journal entries.
package models
