// Package resources holds the static crisis resource tables and the country
// detection used to pick one.
//
// The OTHER table only points at the general emergency number and a
// helpline finder. A wrong country-specific number is worse than a generic
// pointer, so unknown regions never get one.
package resources

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
)

// Country is a supported region code.
type Country string

const (
	US    Country = "US"
	GB    Country = "GB"
	CA    Country = "CA"
	AU    Country = "AU"
	IE    Country = "IE"
	NZ    Country = "NZ"
	Other Country = "OTHER"
)

// Countries lists the supported codes with OTHER last.
var Countries = []Country{US, GB, CA, AU, IE, NZ, Other}

// ParseCountry maps a code (case-insensitive, "UK" accepted for GB) to a
// Country. Anything unknown is Other.
func ParseCountry(code string) Country {
	c := Country(strings.ToUpper(strings.TrimSpace(code)))
	if c == "UK" {
		return GB
	}
	if slices.Contains(Countries, c) {
		return c
	}
	return Other
}

var findAHelpline = models.CrisisResource{
	ID:    "findahelpline",
	Label: "Find a Helpline",
	Kind:  models.KindAdvice,
	Href:  "https://findahelpline.com",
	Note:  "Free, confidential helplines by country",
}

var tables = map[Country][]models.CrisisResource{
	US: {
		{ID: "us-911", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:911", Hours: "24/7"},
		{ID: "us-988", Label: "988 Suicide & Crisis Lifeline", Kind: models.KindPhone, Href: "tel:988", Hours: "24/7"},
		{ID: "us-988-sms", Label: "988 Lifeline text", Kind: models.KindSMS, Href: "sms:988", Hours: "24/7"},
		{ID: "us-988-chat", Label: "988 Lifeline chat", Kind: models.KindChat, Href: "https://988lifeline.org/chat", Hours: "24/7"},
		{ID: "us-ctl", Label: "Crisis Text Line", Kind: models.KindSMS, Href: "sms:741741", Hours: "24/7", Note: "Text HOME"},
	},
	GB: {
		{ID: "gb-999", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:999", Hours: "24/7"},
		{ID: "gb-111", Label: "NHS 111", Kind: models.KindAdvice, Href: "tel:111", Hours: "24/7", Note: "Choose the mental health option"},
		{ID: "gb-samaritans", Label: "Samaritans", Kind: models.KindPhone, Href: "tel:116123", Hours: "24/7"},
		{ID: "gb-shout", Label: "Shout", Kind: models.KindSMS, Href: "sms:85258", Hours: "24/7", Note: "Text SHOUT"},
	},
	CA: {
		{ID: "ca-911", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:911", Hours: "24/7"},
		{ID: "ca-988", Label: "9-8-8 Suicide Crisis Helpline", Kind: models.KindPhone, Href: "tel:988", Hours: "24/7"},
		{ID: "ca-988-sms", Label: "9-8-8 text", Kind: models.KindSMS, Href: "sms:988", Hours: "24/7"},
	},
	AU: {
		{ID: "au-000", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:000", Hours: "24/7"},
		{ID: "au-lifeline", Label: "Lifeline", Kind: models.KindPhone, Href: "tel:131114", Hours: "24/7"},
		{ID: "au-lifeline-sms", Label: "Lifeline text", Kind: models.KindSMS, Href: "sms:0477131114", Hours: "24/7"},
		{ID: "au-lifeline-chat", Label: "Lifeline chat", Kind: models.KindChat, Href: "https://www.lifeline.org.au/crisis-chat/", Hours: "24/7"},
	},
	IE: {
		{ID: "ie-112", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:112", Hours: "24/7", Note: "999 also works"},
		{ID: "ie-samaritans", Label: "Samaritans", Kind: models.KindPhone, Href: "tel:116123", Hours: "24/7"},
		{ID: "ie-50808", Label: "Text 50808", Kind: models.KindSMS, Href: "sms:50808", Hours: "24/7", Note: "Text HELLO"},
	},
	NZ: {
		{ID: "nz-111", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:111", Hours: "24/7"},
		{ID: "nz-1737", Label: "Need to talk? 1737", Kind: models.KindPhone, Href: "tel:1737", Hours: "24/7"},
		{ID: "nz-1737-sms", Label: "Need to talk? text", Kind: models.KindSMS, Href: "sms:1737", Hours: "24/7"},
		{ID: "nz-lifeline", Label: "Lifeline Aotearoa", Kind: models.KindPhone, Href: "tel:0800543354", Hours: "24/7"},
	},
	Other: {
		{ID: "intl-112", Label: "Emergency services", Kind: models.KindEmergency, Href: "tel:112", Note: "Works from most mobile phones; use your local number if it differs"},
		findAHelpline,
	},
}

// Directory serves the static tables. The zero value is ready to use.
type Directory struct{}

// Get returns a copy of the table for country. Unknown codes get OTHER.
func (Directory) Get(country Country) []models.CrisisResource {
	t, ok := tables[country]
	if !ok {
		t = tables[Other]
	}
	return slices.Clone(t)
}

// Emergency returns the emergency entry of country's table.
func (d Directory) Emergency(country Country) models.CrisisResource {
	for _, r := range d.Get(country) {
		if r.Kind == models.KindEmergency {
			return r
		}
	}
	return tables[Other][0]
}
