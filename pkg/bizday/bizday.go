// Package bizday resolves business-day boundaries in the fixed UTC+5:30
// operating timezone, independent of the host's locale. The offset is a
// constant with no daylight-saving rules, so no tz database is involved.
package bizday

import (
	"fmt"
	"time"
)

// Offset is the fixed business timezone offset from UTC.
const Offset = 5*time.Hour + 30*time.Minute

const dateLayout = "2006-01-02"

// Window is a [Start, End] pair of UTC instants covering one business day,
// from 00:00:00.000 through 23:59:59.999 local time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ForDate resolves the window for a YYYY-MM-DD date string interpreted as a
// wall-clock date in the business timezone.
func ForDate(value string) (Window, error) {
	naive, err := time.Parse(dateLayout, value)
	if err != nil {
		return Window{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return windowFromNaiveMidnight(naive), nil
}

// Today resolves the window for the business date observed at the given
// instant. The instant is shifted forward by the offset first so the date
// portion is the business-local date, not the host's.
func Today(now time.Time) Window {
	return windowFromNaiveMidnight(naiveBusinessMidnight(now))
}

// DateString returns the YYYY-MM-DD business date observed at the instant.
func DateString(now time.Time) string {
	return naiveBusinessMidnight(now).Format(dateLayout)
}

func naiveBusinessMidnight(now time.Time) time.Time {
	shifted := now.UTC().Add(Offset)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

func windowFromNaiveMidnight(naive time.Time) Window {
	// The naive value is local midnight read as UTC; subtracting the offset
	// yields the true UTC instant of local midnight.
	start := naive.Add(-Offset)
	end := start.Add(24*time.Hour - time.Millisecond)
	return Window{Start: start, End: end}
}
