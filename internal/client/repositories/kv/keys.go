package kv

// Keys names the storage slots of the client. They are configurable so that
// several profiles or tests can share one database without colliding.
type Keys struct {
	Triage        string `json:"triage"`
	SafetyPlan    string `json:"safety_plan"`
	Contacts      string `json:"contacts"`
	Session       string `json:"session"`
	JournalPrefix string `json:"journal_prefix"`
}

func DefaultKeys() Keys {
	return Keys{
		Triage:        "triage.last",
		SafetyPlan:    "safety_plan.current",
		Contacts:      "contacts.default",
		Session:       "session.current",
		JournalPrefix: "local.",
	}
}

// WithDefaults fills empty slots from DefaultKeys.
func (k Keys) WithDefaults() Keys {
	d := DefaultKeys()
	if k.Triage == "" {
		k.Triage = d.Triage
	}
	if k.SafetyPlan == "" {
		k.SafetyPlan = d.SafetyPlan
	}
	if k.Contacts == "" {
		k.Contacts = d.Contacts
	}
	if k.Session == "" {
		k.Session = d.Session
	}
	if k.JournalPrefix == "" {
		k.JournalPrefix = d.JournalPrefix
	}
	return k
}
