package resources

import (
	"os"
	"strings"
	"time"
)

// LocaleResolver reports the platform locale tag (e.g. "en_GB.UTF-8") and
// timezone name (e.g. "Europe/London").
type LocaleResolver interface {
	Locale() (tag, timezone string)
}

// EnvResolver reads LC_ALL, LC_MESSAGES and LANG, and TZ or the local zone.
type EnvResolver struct{}

func (EnvResolver) Locale() (string, string) {
	var tag string
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(k); v != "" {
			tag = v
			break
		}
	}
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = time.Local.String()
	}
	return tag, tz
}

// StaticResolver returns fixed values.
type StaticResolver struct {
	Tag      string
	Timezone string
}

func (r StaticResolver) Locale() (string, string) {
	return r.Tag, r.Timezone
}

type hint struct {
	country Country
	region  string
	zones   []string
}

// Checked in order; the first match wins. Zones match as substrings.
var hints = []hint{
	{US, "US", []string{
		"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles",
		"America/Phoenix", "America/Anchorage", "America/Detroit", "America/Boise",
		"America/Indiana/", "America/Kentucky/", "America/North_Dakota/", "America/Menominee",
		"America/Juneau", "America/Sitka", "America/Nome", "America/Yakutat",
		"America/Metlakatla", "America/Adak", "Pacific/Honolulu", "US/",
	}},
	{GB, "GB", []string{"Europe/London", "Europe/Belfast", "GB"}},
	{CA, "CA", []string{
		"America/Toronto", "America/Montreal", "America/Vancouver", "America/Edmonton",
		"America/Winnipeg", "America/Halifax", "America/St_Johns", "America/Regina",
		"America/Moncton", "America/Glace_Bay", "America/Goose_Bay", "America/Whitehorse",
		"America/Yellowknife", "America/Iqaluit", "America/Dawson", "America/Fort_Nelson",
		"America/Creston", "America/Swift_Current", "America/Rankin_Inlet", "America/Resolute",
		"America/Cambridge_Bay", "America/Inuvik", "America/Atikokan", "America/Blanc-Sablon",
		"America/Thunder_Bay", "America/Nipigon", "America/Rainy_River", "America/Pangnirtung",
		"Canada/",
	}},
	{AU, "AU", []string{"Australia/"}},
	{IE, "IE", []string{"Europe/Dublin", "Eire"}},
	{NZ, "NZ", []string{"Pacific/Auckland", "Pacific/Chatham", "NZ"}},
}

// Detect guesses the country from the locale region and the timezone.
//
// A supported locale region is trusted only when the timezone is unset,
// UTC-like, or one of that country's zones: en_US is the default locale of
// many systems, and a wrong national number is worse than the generic
// fallback. Without a supported region the timezone alone decides. When
// nothing matches it returns Other.
func Detect(r LocaleResolver) Country {
	tag, tz := r.Locale()
	tz = strings.TrimPrefix(strings.TrimSpace(tz), ":")

	zone, zoneKnown := zoneCountry(tz)

	if region, ok := regionCountry(localeRegion(tag)); ok {
		if neutralZone(tz) || (zoneKnown && zone == region) {
			return region
		}
		return Other
	}

	if zoneKnown {
		return zone
	}
	return Other
}

func regionCountry(region string) (Country, bool) {
	if region == "UK" {
		return GB, true
	}
	for _, h := range hints {
		if region != "" && h.region == region {
			return h.country, true
		}
	}
	return Other, false
}

func zoneCountry(tz string) (Country, bool) {
	if tz == "" {
		return Other, false
	}
	for _, h := range hints {
		for _, z := range h.zones {
			if strings.Contains(tz, z) {
				return h.country, true
			}
		}
	}
	return Other, false
}

// neutralZone reports whether tz says nothing about where the device is.
func neutralZone(tz string) bool {
	switch tz {
	case "", "Local", "UTC", "GMT", "UCT", "Universal", "Zulu", "Greenwich":
		return true
	}
	return strings.HasPrefix(tz, "Etc/")
}

// localeRegion extracts "GB" from tags like "en_GB.UTF-8", "en-gb" or
// "en_GB@euro".
func localeRegion(tag string) string {
	tag, _, _ = strings.Cut(tag, ".")
	tag, _, _ = strings.Cut(tag, "@")
	_, region, ok := strings.Cut(strings.ReplaceAll(tag, "-", "_"), "_")
	if !ok {
		return ""
	}
	return strings.ToUpper(region)
}
