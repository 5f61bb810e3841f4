// Package sheettime is the codec for the legacy spreadsheet timestamp format.
// All stored wall-clock values represent UTC−5 (the organization operates in a
// single fixed timezone); formatting and parsing must round-trip bit-exact.
package sheettime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Layout is the literal stored pattern: DD/MM/YYYY, HH:mm:ss.
const Layout = "02/01/2006, 15:04:05"

// Zone is a fixed business rule, not a display preference. Never derive it
// from the host environment.
var Zone = time.FixedZone("UTC-5", -5*60*60)

var ErrMalformedTimestamp = errors.New("malformed timestamp")

// fallbackLayouts are tried when a stored value does not match Layout, e.g.
// rows typed into the sheet by hand.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Format serializes an absolute instant as the stored UTC−5 wall clock.
func Format(t time.Time) string {
	return t.In(Zone).Format(Layout)
}

// Parse reads a stored wall-clock value back into an absolute instant,
// assuming it represents UTC−5. Values that miss the layout go through
// generic parsing before the whole value is rejected as malformed.
func Parse(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(Layout, s, Zone); err == nil {
		return t, nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, Zone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}

// Hours returns the full-precision duration in decimal hours. In-memory
// comparisons (the 24h cap, the long-shift flag) use this value; only the
// stored total is rounded.
func Hours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// RoundHours rounds to the 2 decimal places kept in the store.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// FormatHours renders hours the way the store keeps them, e.g. "8.00".
func FormatHours(h float64) string {
	return strconv.FormatFloat(RoundHours(h), 'f', 2, 64)
}

// ParseHours reads a stored total back, empty meaning absent.
func ParseHours(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
