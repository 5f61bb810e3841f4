package events

import "time"

const ClockEventTopic = "timeclock.session.lifecycle.v1"

const (
	EventClockedIn       = "CLOCKED_IN"
	EventClockedOut      = "CLOCKED_OUT"
	EventEntryBackfilled = "ENTRY_BACKFILLED"
)

type ClockEvent struct {
	EventType  string    `json:"event_type"`
	EntryID    string    `json:"entry_id"`
	PersonName string    `json:"person_name"`
	ClockIn    string    `json:"clock_in"`
	ClockOut   string    `json:"clock_out,omitempty"`
	TotalHours string    `json:"total_hours,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
