package schedule

import (
	"time"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
)

// Event is the render-ready projection of an Activity onto a day range.
// Start is midnight of the first day, End the last instant of the final day;
// activities are day-ranged, never time-of-day scheduled.
type Event struct {
	Title    string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Activity activity.Activity
}

// LabelFunc resolves an activity type code to a display title. The calendar
// does not own label text; the host supplies the lookup.
type LabelFunc func(activityType string) string

// MapActivities converts raw activities into events. Records with missing or
// unparseable dates are dropped silently — a data-quality tolerance, not an
// error path. An end date before the start clamps to the end of the start
// day, so Start <= End always holds on the output.
func MapActivities(acts []activity.Activity, label LabelFunc) []Event {
	if label == nil {
		label = activity.TypeLabel
	}
	events := make([]Event, 0, len(acts))
	for _, a := range acts {
		if a.StartDate == "" || a.EndDate == "" {
			continue
		}
		start, ok := dateutil.Parse(a.StartDate)
		if !ok {
			continue
		}
		end, ok := dateutil.Parse(a.EndDate)
		if !ok {
			continue
		}
		start = dateutil.StartOfDay(start)
		end = dateutil.EndOfDay(end)
		if end.Before(start) {
			end = dateutil.EndOfDay(start)
		}
		events = append(events, Event{
			Title:    label(a.ActivityType),
			Start:    start,
			End:      end,
			AllDay:   true,
			Activity: a,
		})
	}
	return events
}

// OccursOn reports whether the event's day range intersects the given day.
func (e Event) OccursOn(day time.Time) bool {
	dayStart := dateutil.StartOfDay(day)
	dayEnd := dateutil.EndOfDay(day)
	return !e.Start.After(dayEnd) && !e.End.Before(dayStart)
}
