// Package dateutil normalizes the heterogeneous date strings the backend
// emits and answers day-level interval questions for the calendar.
package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// Layouts attempted for ISO-style inputs, most specific first.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse converts a raw date string into a local time. Two textual forms are
// accepted: the backend legacy "M/D/YYYY" and anything ISO-8601 parseable.
// The boolean is false for empty or unparseable input; Parse never panics.
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		if t, ok := parseSlash(s); ok {
			return t, true
		}
		// Fall through: some backends send ISO strings with slashes in a
		// trailing timezone name.
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseSlash interprets "M/D/YYYY" (1-based month) at local midnight.
func parseSlash(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (e.g. 2/31 becomes 3/2); reject that.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns 00:00:00.000000000 of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// OccursOnDay reports whether the [startRaw, endRaw] interval intersects the
// given calendar day. Either date failing to parse means no occurrence. The
// standard interval-overlap test makes multi-day activities show up on every
// day they span, not only the first.
func OccursOnDay(startRaw, endRaw string, day time.Time) bool {
	start, ok := Parse(startRaw)
	if !ok {
		return false
	}
	end, ok := Parse(endRaw)
	if !ok {
		return false
	}
	dayStart := StartOfDay(day)
	dayEnd := EndOfDay(day)
	return !start.After(dayEnd) && !end.Before(dayStart)
}
