package timeclock

import (
	"testing"
	"time"

	"fichaje/internal/shared/sheettime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sessionAt(person string, start time.Time, dur time.Duration) Session {
	end := start.Add(dur)
	return Session{ID: uuid.New(), Person: person, Start: start, End: &end}
}

func TestFindConflict(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	shift := sessionAt("Ana", day1, 8*time.Hour)
	sessions := []Session{shift}

	t.Run("overlap at tail", func(t *testing.T) {
		got := findConflict(sessions, "Ana", day1.Add(7*time.Hour), day1.Add(9*time.Hour), now)
		if assert.NotNil(t, got) {
			assert.Equal(t, shift.ID, got.ID)
		}
	})

	t.Run("candidate fully inside", func(t *testing.T) {
		got := findConflict(sessions, "Ana", day1.Add(2*time.Hour), day1.Add(3*time.Hour), now)
		assert.NotNil(t, got)
	})

	t.Run("candidate envelops", func(t *testing.T) {
		got := findConflict(sessions, "Ana", day1.Add(-time.Hour), day1.Add(10*time.Hour), now)
		assert.NotNil(t, got)
	})

	t.Run("adjacent intervals do not conflict", func(t *testing.T) {
		got := findConflict(sessions, "Ana", day1.Add(8*time.Hour), day1.Add(10*time.Hour), now)
		assert.Nil(t, got)
		got = findConflict(sessions, "Ana", day1.Add(-2*time.Hour), day1, now)
		assert.Nil(t, got)
	})

	t.Run("other person never conflicts", func(t *testing.T) {
		got := findConflict(sessions, "Luis", day1, day1.Add(8*time.Hour), now)
		assert.Nil(t, got)
	})

	t.Run("open session runs until now", func(t *testing.T) {
		openStart := now.Add(-2 * time.Hour)
		open := []Session{{ID: uuid.New(), Person: "Ana", Start: openStart}}

		got := findConflict(open, "Ana", now.Add(-time.Hour), now.Add(time.Hour), now)
		assert.NotNil(t, got)

		// After now the open session casts no shadow.
		got = findConflict(open, "Ana", now, now.Add(time.Hour), now)
		assert.Nil(t, got)
	})

	t.Run("first match in stored order wins", func(t *testing.T) {
		second := sessionAt("Ana", day1.Add(10*time.Hour), 2*time.Hour)
		both := []Session{shift, second}
		got := findConflict(both, "Ana", day1, day1.Add(13*time.Hour), now)
		if assert.NotNil(t, got) {
			assert.Equal(t, shift.ID, got.ID)
		}
	})
}

func TestDescribeConflict(t *testing.T) {
	now := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)

	start := time.Date(2024, 1, 1, 14, 0, 0, 0, sheettime.Zone)
	closed := sessionAt("Ana", start, 8*time.Hour)
	assert.Equal(t,
		"Ana already has a record from 01/01/2024, 14:00:00 to 01/01/2024, 22:00:00",
		describeConflict(closed, now),
	)

	open := Session{ID: uuid.New(), Person: "Luis", Start: start}
	desc := describeConflict(open, now)
	assert.Contains(t, desc, "Luis already has a record from 01/01/2024, 14:00:00")
	assert.Contains(t, desc, "(in progress)")
}
