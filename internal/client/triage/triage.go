// Package triage classifies the five crisis questions into a risk level.
//
// Classify is pure and total. Input shape is checked at the boundary by
// ParseAnswers, never inside the classifier.
package triage

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/common"
)

// Question keys as they appear in stored and transmitted answers.
const (
	KeyDangerNow      = "dangerNow"
	KeyHavePlan       = "havePlan"
	KeyAccessMeans    = "accessMeans"
	KeyUnderInfluence = "underInfluence"
	KeyAlone          = "alone"
)

// Question is one yes/no item of the triage flow.
type Question struct {
	Key    string
	Prompt string
}

// Questions is the fixed triage flow in the order it is asked.
var Questions = []Question{
	{Key: KeyDangerNow, Prompt: "Are you in danger right now or thinking about ending your life today?"},
	{Key: KeyHavePlan, Prompt: "Do you have a plan for how you would end your life?"},
	{Key: KeyAccessMeans, Prompt: "Do you have access to the means you would use?"},
	{Key: KeyUnderInfluence, Prompt: "Have you been drinking alcohol or using drugs?"},
	{Key: KeyAlone, Prompt: "Are you alone right now?"},
}

// Classify maps answers to a level. First match wins:
//
//	red   dangerNow || havePlan || (accessMeans && (underInfluence || alone))
//	amber accessMeans || underInfluence || alone
//	green otherwise
func Classify(a models.TriageAnswers) models.Level {
	if a.DangerNow || a.HavePlan || (a.AccessMeans && (a.UnderInfluence || a.Alone)) {
		return models.LevelRed
	}
	if a.AccessMeans || a.UnderInfluence || a.Alone {
		return models.LevelAmber
	}
	return models.LevelGreen
}

// Evaluate classifies answers and stamps the result with now in UTC.
func Evaluate(a models.TriageAnswers, now time.Time) models.TriageResult {
	return models.TriageResult{
		Timestamp: now.UTC(),
		Answers:   a,
		Level:     Classify(a),
	}
}

// ParseAnswers converts raw keyed answers into TriageAnswers. Unknown keys are
// rejected with common.ErrValidation; missing keys default to false.
func ParseAnswers(raw map[string]bool) (models.TriageAnswers, error) {
	var a models.TriageAnswers
	var unknown []string

	for k, v := range raw {
		switch k {
		case KeyDangerNow:
			a.DangerNow = v
		case KeyHavePlan:
			a.HavePlan = v
		case KeyAccessMeans:
			a.AccessMeans = v
		case KeyUnderInfluence:
			a.UnderInfluence = v
		case KeyAlone:
			a.Alone = v
		default:
			unknown = append(unknown, k)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return models.TriageAnswers{}, fmt.Errorf("%w: unknown triage answers: %s", common.ErrValidation, strings.Join(unknown, ", "))
	}
	return a, nil
}

// Guidance returns the fixed next-step text shown for a level.
func Guidance(l models.Level) string {
	switch l {
	case models.LevelRed:
		return "Call your local emergency number now or go to the nearest emergency department. If you can, ask someone to stay with you."
	case models.LevelAmber:
		return "Put distance between you and anything you could use to hurt yourself, contact someone from your safety plan, and reach a crisis line."
	default:
		return "Keep using your safety plan and coping strategies. Reach out to a helpline any time you need to talk."
	}
}

// Answer returns the value a holds for question q.
func (q Question) Answer(a models.TriageAnswers) bool {
	switch q.Key {
	case KeyDangerNow:
		return a.DangerNow
	case KeyHavePlan:
		return a.HavePlan
	case KeyAccessMeans:
		return a.AccessMeans
	case KeyUnderInfluence:
		return a.UnderInfluence
	case KeyAlone:
		return a.Alone
	}
	return false
}
