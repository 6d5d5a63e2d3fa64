// Package services holds the client use cases: triage, the safety plan,
// default contacts, the export journal and authentication against the
// mirror server.
//
// Every service persists to the local store first and then hands the
// result to a mirror.Syncer. Remote problems never reach the caller.
package services

import "time"

// Clock returns the current time. Services take one so tests can pin time.
type Clock func() time.Time

func (c Clock) orNow() Clock {
	if c == nil {
		return time.Now
	}
	return c
}
