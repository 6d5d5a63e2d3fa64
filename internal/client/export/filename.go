package export

import (
	"strings"
	"time"
)

const (
	PlanFilePrefix   = "safety-plan"
	TriageFilePrefix = "triage"
)

// FileName builds "prefix-YYYY-MM-DDTHH-MM.ext" from t in UTC. Characters
// that are unsafe in file names are replaced with '-'.
func FileName(prefix string, t time.Time, ext string) string {
	name := sanitize(prefix) + "-" + t.UTC().Format("2006-01-02T15-04")
	ext = sanitize(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return name
	}
	return name + "." + ext
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, s)
}
