package triage

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Examples(t *testing.T) {
	tests := []struct {
		name string
		in   models.TriageAnswers
		want models.Level
	}{
		{name: "danger now", in: models.TriageAnswers{DangerNow: true}, want: models.LevelRed},
		{name: "have plan", in: models.TriageAnswers{HavePlan: true}, want: models.LevelRed},
		{name: "means and alone", in: models.TriageAnswers{AccessMeans: true, Alone: true}, want: models.LevelRed},
		{name: "means and influence", in: models.TriageAnswers{AccessMeans: true, UnderInfluence: true}, want: models.LevelRed},
		{name: "means only", in: models.TriageAnswers{AccessMeans: true}, want: models.LevelAmber},
		{name: "alone only", in: models.TriageAnswers{Alone: true}, want: models.LevelAmber},
		{name: "influence and alone", in: models.TriageAnswers{UnderInfluence: true, Alone: true}, want: models.LevelAmber},
		{name: "all false", in: models.TriageAnswers{}, want: models.LevelGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

// Exhaustive check over all 32 combinations against an independent
// formulation of the rule.
func TestClassify_AllCombinations(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		a := models.TriageAnswers{
			DangerNow:      mask&1 != 0,
			HavePlan:       mask&2 != 0,
			AccessMeans:    mask&4 != 0,
			UnderInfluence: mask&8 != 0,
			Alone:          mask&16 != 0,
		}

		got := Classify(a)
		require.True(t, got.Valid(), "mask %05b", mask)

		redHolds := a.DangerNow || a.HavePlan || (a.AccessMeans && a.UnderInfluence) || (a.AccessMeans && a.Alone)
		amberHolds := a.AccessMeans || a.UnderInfluence || a.Alone

		switch {
		case redHolds:
			assert.Equal(t, models.LevelRed, got, "mask %05b", mask)
		case amberHolds:
			assert.Equal(t, models.LevelAmber, got, "mask %05b", mask)
		default:
			assert.Equal(t, models.LevelGreen, got, "mask %05b", mask)
		}
	}
}

func TestEvaluate_StampsUTC(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)

	res := Evaluate(models.TriageAnswers{Alone: true}, now)
	assert.Equal(t, models.LevelAmber, res.Level)
	assert.Equal(t, time.UTC, res.Timestamp.Location())
	assert.True(t, res.Timestamp.Equal(now))
	assert.True(t, res.Answers.Alone)
}

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers(map[string]bool{KeyHavePlan: true, KeyAlone: false})
	require.NoError(t, err)
	assert.Equal(t, models.TriageAnswers{HavePlan: true}, a)

	a, err = ParseAnswers(nil)
	require.NoError(t, err)
	assert.Equal(t, models.TriageAnswers{}, a)

	_, err = ParseAnswers(map[string]bool{"sleepy": true, "dangerNow": true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Contains(t, err.Error(), "sleepy")
}

func TestQuestions_CoverEveryKey(t *testing.T) {
	raw := map[string]bool{}
	for _, q := range Questions {
		require.NotEmpty(t, q.Prompt)
		raw[q.Key] = true
	}
	a, err := ParseAnswers(raw)
	require.NoError(t, err)
	assert.Equal(t, models.TriageAnswers{DangerNow: true, HavePlan: true, AccessMeans: true, UnderInfluence: true, Alone: true}, a)
}

func TestGuidance_DiffersPerLevel(t *testing.T) {
	assert.NotEqual(t, Guidance(models.LevelRed), Guidance(models.LevelAmber))
	assert.NotEqual(t, Guidance(models.LevelAmber), Guidance(models.LevelGreen))
	assert.Equal(t, Guidance(models.LevelGreen), Guidance(models.Level("")))
}

func TestQuestion_AnswerMatchesParse(t *testing.T) {
	for _, q := range Questions {
		a, err := ParseAnswers(map[string]bool{q.Key: true})
		require.NoError(t, err)
		for _, other := range Questions {
			assert.Equal(t, other.Key == q.Key, other.Answer(a), "%s after setting %s", other.Key, q.Key)
		}
	}
	assert.False(t, Question{Key: "bogus"}.Answer(models.TriageAnswers{DangerNow: true}))
}
