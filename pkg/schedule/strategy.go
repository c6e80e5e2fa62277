package schedule

import "time"

// Strategy is the navigation contract every calendar view satisfies, so the
// toolbar can drive month, week, day and agenda views without knowing which
// one is active.
type Strategy interface {
	Granularity() Granularity
	Range(date, now time.Time) []time.Time
	Navigate(date time.Time, action Action, now time.Time) time.Time
	Title(date, now time.Time, loc Locale) string
}

type strategy struct {
	granularity Granularity
}

// StrategyFor returns the Strategy variant for a granularity.
func StrategyFor(g Granularity) Strategy {
	return strategy{granularity: g}
}

func (s strategy) Granularity() Granularity { return s.granularity }

func (s strategy) Range(date, now time.Time) []time.Time {
	switch s.granularity {
	case GranularityWeek:
		return WeekRange(date, now)
	case GranularityDay:
		return DayRange(date, now)
	default:
		return MonthRange(date, now)
	}
}

func (s strategy) Navigate(date time.Time, action Action, now time.Time) time.Time {
	return Navigate(date, action, s.granularity, now)
}

func (s strategy) Title(date, now time.Time, loc Locale) string {
	return Title(date, s.granularity, now, loc)
}
