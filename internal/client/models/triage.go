package models

import "time"

// Level is the three-valued risk classification produced by triage.
type Level string

const (
	LevelGreen Level = "green"
	LevelAmber Level = "amber"
	LevelRed   Level = "red"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelGreen, LevelAmber, LevelRed:
		return true
	}
	return false
}

// Rank orders levels by severity: green 0, amber 1, red 2, unknown -1.
func (l Level) Rank() int {
	switch l {
	case LevelGreen:
		return 0
	case LevelAmber:
		return 1
	case LevelRed:
		return 2
	}
	return -1
}

// TriageAnswers holds the five yes/no risk questions. Unanswered questions
// are false.
type TriageAnswers struct {
	DangerNow      bool `json:"dangerNow"`
	HavePlan       bool `json:"havePlan"`
	AccessMeans    bool `json:"accessMeans"`
	UnderInfluence bool `json:"underInfluence"`
	Alone          bool `json:"alone"`
}

// TriageResult is one completed triage. It is never mutated; a later triage
// supersedes it.
type TriageResult struct {
	Timestamp time.Time     `json:"timestamp"`
	Answers   TriageAnswers `json:"answers"`
	Level     Level         `json:"level"`
}
