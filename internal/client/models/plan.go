package models

import (
	"slices"
	"time"
)

// DefaultCheckinEveryMin is the check-in interval of a fresh plan.
const DefaultCheckinEveryMin = 60

// SafetyContact is a person or professional the user can reach.
// Duplicates are allowed.
type SafetyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	SMS   string `json:"sms,omitempty"`
	Email string `json:"email,omitempty"`
}

// IsEmpty reports whether the contact carries no name.
func (c SafetyContact) IsEmpty() bool {
	return c.Name == ""
}

// SafetyPlan is the single long-lived plan kept per device.
//
// ID, CreatedAt and ShareToken never change once set; UpdatedAt only moves
// forward.
type SafetyPlan struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Signals       []string        `json:"signals"`
	Coping        []string        `json:"coping"`
	People        []SafetyContact `json:"people"`
	Places        []string        `json:"places"`
	Reasons       []string        `json:"reasons"`
	RemoveMeans   []string        `json:"removeMeans"`
	Professionals []SafetyContact `json:"professionals"`

	CheckinEveryMin int  `json:"checkinEveryMin"`
	RemindersOn     bool `json:"remindersOn"`

	ShareToken string `json:"shareToken,omitempty"`
	Lang       string `json:"lang,omitempty"`
}

// NewSkeleton returns the unsaved draft a first save starts from.
func NewSkeleton(lang string) *SafetyPlan {
	return &SafetyPlan{
		Signals:         []string{},
		Coping:          []string{},
		People:          []SafetyContact{},
		Places:          []string{},
		Reasons:         []string{},
		RemoveMeans:     []string{},
		Professionals:   []SafetyContact{},
		CheckinEveryMin: DefaultCheckinEveryMin,
		Lang:            lang,
	}
}

// Clone returns a deep copy so callers cannot alias stored slices.
func (p *SafetyPlan) Clone() *SafetyPlan {
	if p == nil {
		return nil
	}
	c := *p
	c.Signals = slices.Clone(p.Signals)
	c.Coping = slices.Clone(p.Coping)
	c.People = slices.Clone(p.People)
	c.Places = slices.Clone(p.Places)
	c.Reasons = slices.Clone(p.Reasons)
	c.RemoveMeans = slices.Clone(p.RemoveMeans)
	c.Professionals = slices.Clone(p.Professionals)
	return &c
}

// Normalize replaces nil lists with empty ones and restores a positive
// check-in interval. It is applied to anything read back from storage.
func (p *SafetyPlan) Normalize() {
	if p.Signals == nil {
		p.Signals = []string{}
	}
	if p.Coping == nil {
		p.Coping = []string{}
	}
	if p.People == nil {
		p.People = []SafetyContact{}
	}
	if p.Places == nil {
		p.Places = []string{}
	}
	if p.Reasons == nil {
		p.Reasons = []string{}
	}
	if p.RemoveMeans == nil {
		p.RemoveMeans = []string{}
	}
	if p.Professionals == nil {
		p.Professionals = []SafetyContact{}
	}
	if p.CheckinEveryMin <= 0 {
		p.CheckinEveryMin = DefaultCheckinEveryMin
	}
}

// Contacts returns the non-empty people followed by the non-empty professionals.
func (p *SafetyPlan) Contacts() []SafetyContact {
	out := make([]SafetyContact, 0, len(p.People)+len(p.Professionals))
	for _, c := range p.People {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	for _, c := range p.Professionals {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}

// PlanPatch is a partial update. A nil field is "not supplied" and keeps the
// prior value. Identity fields are deliberately absent.
type PlanPatch struct {
	Signals       *[]string        `json:"signals,omitempty"`
	Coping        *[]string        `json:"coping,omitempty"`
	People        *[]SafetyContact `json:"people,omitempty"`
	Places        *[]string        `json:"places,omitempty"`
	Reasons       *[]string        `json:"reasons,omitempty"`
	RemoveMeans   *[]string        `json:"removeMeans,omitempty"`
	Professionals *[]SafetyContact `json:"professionals,omitempty"`

	CheckinEveryMin *int  `json:"checkinEveryMin,omitempty"`
	RemindersOn     *bool `json:"remindersOn,omitempty"`

	// Lang is only honoured when the save creates the plan.
	Lang *string `json:"lang,omitempty"`
}

// Apply shallow-merges the supplied fields of patch into p.
func (p *SafetyPlan) Apply(patch PlanPatch) {
	if patch.Signals != nil {
		p.Signals = slices.Clone(*patch.Signals)
	}
	if patch.Coping != nil {
		p.Coping = slices.Clone(*patch.Coping)
	}
	if patch.People != nil {
		p.People = slices.Clone(*patch.People)
	}
	if patch.Places != nil {
		p.Places = slices.Clone(*patch.Places)
	}
	if patch.Reasons != nil {
		p.Reasons = slices.Clone(*patch.Reasons)
	}
	if patch.RemoveMeans != nil {
		p.RemoveMeans = slices.Clone(*patch.RemoveMeans)
	}
	if patch.Professionals != nil {
		p.Professionals = slices.Clone(*patch.Professionals)
	}
	if patch.CheckinEveryMin != nil {
		p.CheckinEveryMin = *patch.CheckinEveryMin
	}
	if patch.RemindersOn != nil {
		p.RemindersOn = *patch.RemindersOn
	}
}
