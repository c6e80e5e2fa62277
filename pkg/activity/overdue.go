package activity

import (
	"time"

	"github.com/nongtrai/farmcal/pkg/dateutil"
)

// Predicate reports a per-activity condition, typically overdue-ness.
type Predicate func(Activity) bool

// OverduePredicate builds the default overdue policy: the activity's end date
// has passed before the start of "now"'s day and the activity is still open.
// Activities with unparseable end dates are never overdue.
func OverduePredicate(now time.Time) Predicate {
	today := dateutil.StartOfDay(now)
	return func(a Activity) bool {
		switch a.NormalizedStatus() {
		case StatusCompleted, StatusDeactivated:
			return false
		}
		end, ok := dateutil.Parse(a.EndDate)
		if !ok {
			return false
		}
		return dateutil.EndOfDay(end).Before(today)
	}
}

// Never is a Predicate that marks nothing overdue. Useful for views that do
// not apply urgency.
func Never(Activity) bool { return false }
