package schedule

import (
	"time"

	"github.com/nongtrai/farmcal/pkg/activity"
)

// DayBucket pairs one calendar day with the sorted events occurring on it.
// Buckets are derived per render; nothing caches them across anchor changes.
type DayBucket struct {
	Day    time.Time
	Events []Event
}

// BuildBuckets computes the bucket for every day in the view window. Cost is
// O(days × events); callers memoize the mapped event slice, not the buckets.
func BuildBuckets(days []time.Time, events []Event, isOverdue activity.Predicate) []DayBucket {
	buckets := make([]DayBucket, len(days))
	for i, day := range days {
		var occurring []Event
		for _, e := range events {
			if e.OccursOn(day) {
				occurring = append(occurring, e)
			}
		}
		buckets[i] = DayBucket{
			Day:    day,
			Events: SortEvents(occurring, isOverdue),
		}
	}
	return buckets
}
