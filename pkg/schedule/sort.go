package schedule

import (
	"sort"
	"time"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
)

// SortActivities orders same-day activities for display: overdue first, then
// status priority (IN_PROGRESS < ACTIVE < COMPLETED < DEACTIVATED, unknown
// last), then ascending start date. The sort is stable because the resulting
// order is the visual stacking within a day.
//
// An unparseable start date ties as the zero time and therefore sorts first
// among equal-status rows. That mirrors the backend admin's behavior of
// defaulting to epoch 0; it looks unintended but is reproduced as-is.
func SortActivities(acts []activity.Activity, isOverdue activity.Predicate) []activity.Activity {
	if isOverdue == nil {
		isOverdue = activity.Never
	}
	out := append([]activity.Activity(nil), acts...)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := isOverdue(out[i]), isOverdue(out[j])
		if oi != oj {
			return oi
		}
		pi := out[i].NormalizedStatus().Priority()
		pj := out[j].NormalizedStatus().Priority()
		if pi != pj {
			return pi < pj
		}
		return startOrZero(out[i]).Before(startOrZero(out[j]))
	})
	return out
}

// SortEvents orders events by their underlying activities.
func SortEvents(events []Event, isOverdue activity.Predicate) []Event {
	if isOverdue == nil {
		isOverdue = activity.Never
	}
	out := append([]Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := isOverdue(out[i].Activity), isOverdue(out[j].Activity)
		if oi != oj {
			return oi
		}
		pi := out[i].Activity.NormalizedStatus().Priority()
		pj := out[j].Activity.NormalizedStatus().Priority()
		if pi != pj {
			return pi < pj
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func startOrZero(a activity.Activity) time.Time {
	t, ok := dateutil.Parse(a.StartDate)
	if !ok {
		return time.Time{}
	}
	return t
}
