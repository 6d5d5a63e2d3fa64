package models

import "fmt"

// Section names one list field of a SafetyPlan.
type Section string

const (
	SectionSignals       Section = "signals"
	SectionCoping        Section = "coping"
	SectionPeople        Section = "people"
	SectionPlaces        Section = "places"
	SectionReasons       Section = "reasons"
	SectionRemoveMeans   Section = "removeMeans"
	SectionProfessionals Section = "professionals"
)

// Sections lists every section in display order.
var Sections = []Section{
	SectionSignals,
	SectionCoping,
	SectionPeople,
	SectionPlaces,
	SectionReasons,
	SectionRemoveMeans,
	SectionProfessionals,
}

var sectionTitles = map[Section]string{
	SectionSignals:       "Warning signs",
	SectionCoping:        "Coping strategies",
	SectionPeople:        "People I can reach out to",
	SectionPlaces:        "Places that help me feel better",
	SectionReasons:       "My reasons for living",
	SectionRemoveMeans:   "Making my environment safer",
	SectionProfessionals: "Professionals and services",
}

// Title is the heading used in exports.
func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}

// IsContactList reports whether the section holds SafetyContact values.
func (s Section) IsContactList() bool {
	return s == SectionPeople || s == SectionProfessionals
}

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// TextItems returns the items of a text section; nil for contact sections.
func (p *SafetyPlan) TextItems(s Section) []string {
	switch s {
	case SectionSignals:
		return p.Signals
	case SectionCoping:
		return p.Coping
	case SectionPlaces:
		return p.Places
	case SectionReasons:
		return p.Reasons
	case SectionRemoveMeans:
		return p.RemoveMeans
	}
	return nil
}

// ContactItems returns the items of a contact section; nil otherwise.
func (p *SafetyPlan) ContactItems(s Section) []SafetyContact {
	switch s {
	case SectionPeople:
		return p.People
	case SectionProfessionals:
		return p.Professionals
	}
	return nil
}

// Len is the number of items held in section s.
func (p *SafetyPlan) Len(s Section) int {
	if s.IsContactList() {
		return len(p.ContactItems(s))
	}
	return len(p.TextItems(s))
}

// TextPatch builds a patch replacing text section s with items.
func TextPatch(s Section, items []string) PlanPatch {
	var patch PlanPatch
	switch s {
	case SectionSignals:
		patch.Signals = &items
	case SectionCoping:
		patch.Coping = &items
	case SectionPlaces:
		patch.Places = &items
	case SectionReasons:
		patch.Reasons = &items
	case SectionRemoveMeans:
		patch.RemoveMeans = &items
	}
	return patch
}

// ContactPatch builds a patch replacing contact section s with items.
func ContactPatch(s Section, items []SafetyContact) PlanPatch {
	var patch PlanPatch
	switch s {
	case SectionPeople:
		patch.People = &items
	case SectionProfessionals:
		patch.Professionals = &items
	}
	return patch
}
