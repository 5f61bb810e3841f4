package timeclock

import (
	"fmt"
	"time"

	"fichaje/internal/shared/sheettime"
)

// findConflict returns the first stored session for person whose interval
// intersects [start, end), in stored order. Half-open semantics: a session
// ending exactly when the candidate begins is not a conflict. Open sessions
// run until now.
func findConflict(sessions []Session, person string, start, end, now time.Time) *Session {
	for i := range sessions {
		s := sessions[i]
		if s.Person != person {
			continue
		}
		if start.Before(s.EffectiveEnd(now)) && end.After(s.Start) {
			return &s
		}
	}
	return nil
}

// describeConflict renders the conflicting interval for the error payload.
func describeConflict(s Session, now time.Time) string {
	desc := fmt.Sprintf("%s already has a record from %s to %s",
		s.Person,
		sheettime.Format(s.Start),
		sheettime.Format(s.EffectiveEnd(now)),
	)
	if s.End == nil {
		desc += " (in progress)"
	}
	return desc
}
