package timeclock

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry mirrors one row of the legacy "Registro" sheet. clock_in,
// clock_out and total_hours keep the sheet wire format (see sheettime):
// empty string means absent, and an absent clock_out marks the session open.
// uq_time_entries_open is a partial unique index over open rows that backstops
// the single-active-session rule at the store.
type TimeEntry struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ClockIn    string    `gorm:"column:clock_in;type:text;not null"`
	ClockOut   string    `gorm:"column:clock_out;type:text;not null;default:''"`
	PersonName string    `gorm:"column:person_name;type:text;not null;index"`
	TotalHours string    `gorm:"column:total_hours;type:text;not null;default:''"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (TimeEntry) TableName() string {
	return "registro"
}

// Open reports whether the row is an open session.
func (e TimeEntry) Open() bool {
	return e.ClockOut == ""
}

// CaregiverRef points at the roster table; the timeclock store adapter only
// ever reads names from it.
type CaregiverRef struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (CaregiverRef) TableName() string {
	return "cuidadores"
}

// Session is the parsed, in-memory view of a row. Derivations (active person,
// conflict checks) work on Sessions; rows whose timestamps cannot be parsed
// never become one.
type Session struct {
	ID     uuid.UUID
	Person string
	Start  time.Time
	End    *time.Time // nil = open
}

// EffectiveEnd is the interval end used for overlap checks: the clock-out
// when present, otherwise the evaluation instant.
func (s Session) EffectiveEnd(now time.Time) time.Time {
	if s.End != nil {
		return *s.End
	}
	return now
}
