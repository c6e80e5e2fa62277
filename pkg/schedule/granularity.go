// Package schedule turns raw activities into render-ready calendar data:
// events, view ranges, navigation arithmetic, and day buckets.
package schedule

import (
	"fmt"
	"strings"
)

// Granularity is the calendar zoom level.
type Granularity string

const (
	// GranularityMonth shows a full month grid.
	GranularityMonth Granularity = "month"
	// GranularityWeek shows a Monday-start seven-day board.
	GranularityWeek Granularity = "week"
	// GranularityDay shows a single day list.
	GranularityDay Granularity = "day"
	// GranularityAgenda shows the coming month as a flat list.
	GranularityAgenda Granularity = "agenda"
)

// AllGranularities returns the supported zoom levels in toolbar order.
func AllGranularities() []Granularity {
	return []Granularity{
		GranularityMonth,
		GranularityWeek,
		GranularityDay,
		GranularityAgenda,
	}
}

// ParseGranularity converts a string to a Granularity, defaulting to month.
func ParseGranularity(raw string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(raw)))
	if g == "" {
		return GranularityMonth, nil
	}
	for _, candidate := range AllGranularities() {
		if candidate == g {
			return candidate, nil
		}
	}
	return GranularityMonth, fmt.Errorf("schedule: unknown granularity %q", raw)
}

// Action is a toolbar navigation command.
type Action string

const (
	// ActionPrev moves the anchor one view unit back.
	ActionPrev Action = "PREV"
	// ActionNext moves the anchor one view unit forward.
	ActionNext Action = "NEXT"
	// ActionToday resets the anchor to now.
	ActionToday Action = "TODAY"
)
