package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkeleton_Defaults(t *testing.T) {
	p := NewSkeleton("en")

	require.NotNil(t, p.Signals)
	require.NotNil(t, p.People)
	require.NotNil(t, p.Professionals)
	assert.Empty(t, p.ID)
	assert.Empty(t, p.ShareToken)
	assert.Equal(t, DefaultCheckinEveryMin, p.CheckinEveryMin)
	assert.False(t, p.RemindersOn)
	assert.Equal(t, "en", p.Lang)
}

func TestApply_MergesOnlySuppliedFields(t *testing.T) {
	p := NewSkeleton("en")
	p.Signals = []string{"can't sleep"}
	p.Coping = []string{"walk"}

	coping := []string{"music", "shower"}
	reminders := true
	p.Apply(PlanPatch{Coping: &coping, RemindersOn: &reminders})

	assert.Equal(t, []string{"can't sleep"}, p.Signals)
	assert.Equal(t, []string{"music", "shower"}, p.Coping)
	assert.True(t, p.RemindersOn)
	assert.Equal(t, DefaultCheckinEveryMin, p.CheckinEveryMin)

	coping[0] = "mutated"
	assert.Equal(t, "music", p.Coping[0], "patch slice must be copied")
}

func TestApply_EmptyListClearsSection(t *testing.T) {
	p := NewSkeleton("en")
	p.Reasons = []string{"my cat"}

	empty := []string{}
	p.Apply(PlanPatch{Reasons: &empty})
	assert.Empty(t, p.Reasons)
}

func TestClone_IsDeep(t *testing.T) {
	p := NewSkeleton("en")
	p.People = []SafetyContact{{Name: "Sam", Phone: "555"}}

	c := p.Clone()
	require.Empty(t, cmp.Diff(p, c))

	c.People[0].Name = "Alex"
	assert.Equal(t, "Sam", p.People[0].Name)

	var nilPlan *SafetyPlan
	assert.Nil(t, nilPlan.Clone())
}

func TestNormalize_FillsNilListsAndInterval(t *testing.T) {
	var p SafetyPlan
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","checkinEveryMin":0}`), &p))

	p.Normalize()
	assert.NotNil(t, p.Coping)
	assert.NotNil(t, p.Professionals)
	assert.Equal(t, DefaultCheckinEveryMin, p.CheckinEveryMin)
}

func TestContacts_SkipsEmptyNames(t *testing.T) {
	p := NewSkeleton("en")
	p.People = []SafetyContact{{Name: "Sam"}, {Phone: "123"}}
	p.Professionals = []SafetyContact{{Name: "Dr. Lee", Email: "lee@example.org"}}

	got := p.Contacts()
	assert.Equal(t, []SafetyContact{{Name: "Sam"}, {Name: "Dr. Lee", Email: "lee@example.org"}}, got)
}

func TestSections(t *testing.T) {
	s, err := ParseSection("removeMeans")
	require.NoError(t, err)
	assert.Equal(t, SectionRemoveMeans, s)
	assert.False(t, s.IsContactList())

	_, err = ParseSection("unknown")
	require.Error(t, err)

	p := NewSkeleton("en")
	p.Apply(TextPatch(SectionPlaces, []string{"park"}))
	p.Apply(ContactPatch(SectionProfessionals, []SafetyContact{{Name: "GP"}}))

	assert.Equal(t, []string{"park"}, p.TextItems(SectionPlaces))
	assert.Equal(t, 1, p.Len(SectionProfessionals))
	assert.Nil(t, p.TextItems(SectionPeople))
	assert.Nil(t, p.ContactItems(SectionSignals))
	assert.Equal(t, "Warning signs", SectionSignals.Title())
}

func TestLevel(t *testing.T) {
	assert.True(t, LevelRed.Valid())
	assert.False(t, Level("purple").Valid())
	assert.Less(t, LevelGreen.Rank(), LevelAmber.Rank())
	assert.Less(t, LevelAmber.Rank(), LevelRed.Rank())
	assert.Equal(t, -1, Level("").Rank())
}

func TestTriageAnswers_MissingFieldsDecodeFalse(t *testing.T) {
	var a TriageAnswers
	require.NoError(t, json.Unmarshal([]byte(`{"alone":true}`), &a))
	assert.Equal(t, TriageAnswers{Alone: true}, a)
}
