package schedule

import (
	"fmt"
	"time"

	"github.com/nongtrai/farmcal/pkg/dateutil"
)

// StartOfWeek returns the Monday of date's week at local midnight. The
// planning calendar uses week-start = Monday throughout.
func StartOfWeek(date time.Time) time.Time {
	d := dateutil.StartOfDay(date)
	offset := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekRange returns the seven consecutive days of date's Monday-start week,
// each at local midnight. A zero date is replaced by now so the view always
// has something to render.
func WeekRange(date, now time.Time) []time.Time {
	if date.IsZero() {
		date = now
	}
	start := StartOfWeek(date)
	if start.IsZero() {
		start = StartOfWeek(now)
	}
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayRange returns the single-day window for the day view.
func DayRange(date, now time.Time) []time.Time {
	if date.IsZero() {
		date = now
	}
	return []time.Time{dateutil.StartOfDay(date)}
}

// MonthRange returns the full grid for date's month: every day from the
// Monday on or before the 1st through the Sunday on or after the last day.
// Length is always a multiple of 7.
func MonthRange(date, now time.Time) []time.Time {
	if date.IsZero() {
		date = now
	}
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	last := first.AddDate(0, 1, -1)
	start := StartOfWeek(first)
	end := StartOfWeek(last).AddDate(0, 0, 6)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Navigate computes the next anchor date for a toolbar action. Invalid input
// resolves to now; the result is never the zero time, so navigation cannot
// leave the view unrenderable.
func Navigate(date time.Time, action Action, g Granularity, now time.Time) time.Time {
	if date.IsZero() {
		date = now
	}
	var next time.Time
	switch action {
	case ActionToday:
		return dateutil.StartOfDay(now)
	case ActionPrev:
		next = shift(date, g, -1)
	case ActionNext:
		next = shift(date, g, 1)
	default:
		next = date
	}
	if next.IsZero() {
		return dateutil.StartOfDay(now)
	}
	return next
}

func shift(date time.Time, g Granularity, direction int) time.Time {
	switch g {
	case GranularityWeek:
		return date.AddDate(0, 0, 7*direction)
	case GranularityDay:
		return date.AddDate(0, 0, direction)
	default:
		// Month and agenda both page by calendar month.
		return date.AddDate(0, direction, 0)
	}
}

// Title renders the toolbar label for an anchor date at a given granularity.
// A zero date falls back to the label for now.
func Title(date time.Time, g Granularity, now time.Time, loc Locale) string {
	if date.IsZero() {
		date = now
	}
	switch g {
	case GranularityWeek:
		days := WeekRange(date, now)
		first := days[0]
		last := days[len(days)-1]
		return fmt.Sprintf("%02d/%02d - %02d/%02d/%d",
			first.Day(), int(first.Month()),
			last.Day(), int(last.Month()), last.Year())
	case GranularityDay:
		return fmt.Sprintf("%s, %02d/%02d",
			loc.WeekdayName(date.Weekday()), date.Day(), int(date.Month()))
	default:
		return fmt.Sprintf("%s %d", loc.MonthName(date.Month()), date.Year())
	}
}
