package schedule

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, time.January, 17, 9, 0, 0, 0, time.Local)

func localDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", localDay(2024, time.January, 17), localDay(2024, time.January, 15)},
		{"monday", localDay(2024, time.January, 15), localDay(2024, time.January, 15)},
		{"sunday", localDay(2024, time.January, 21), localDay(2024, time.January, 15)},
		{"month boundary", localDay(2024, time.February, 1), localDay(2024, time.January, 29)},
	}
	for _, tc := range tests {
		if got := StartOfWeek(tc.in); !got.Equal(tc.want) {
			t.Fatalf("%s: StartOfWeek(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestWeekRangeSevenConsecutiveDays(t *testing.T) {
	days := WeekRange(localDay(2024, time.January, 17), testNow)
	if len(days) != 7 {
		t.Fatalf("WeekRange length = %d, want 7", len(days))
	}
	if !days[0].Equal(localDay(2024, time.January, 15)) {
		t.Fatalf("week starts %v, want Monday Jan 15", days[0])
	}
	if !days[6].Equal(localDay(2024, time.January, 21)) {
		t.Fatalf("week ends %v, want Sunday Jan 21", days[6])
	}
	for i := 1; i < 7; i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("days %d and %d not consecutive: %v, %v", i-1, i, days[i-1], days[i])
		}
	}
}

func TestWeekRangeZeroDateFallsBackToNow(t *testing.T) {
	days := WeekRange(time.Time{}, testNow)
	if len(days) != 7 {
		t.Fatalf("WeekRange length = %d, want 7", len(days))
	}
	if !days[0].Equal(localDay(2024, time.January, 15)) {
		t.Fatalf("zero-date week starts %v, want now's Monday", days[0])
	}
}

func TestDayRange(t *testing.T) {
	days := DayRange(time.Date(2024, time.January, 17, 14, 30, 0, 0, time.Local), testNow)
	if len(days) != 1 {
		t.Fatalf("DayRange length = %d, want 1", len(days))
	}
	if !days[0].Equal(localDay(2024, time.January, 17)) {
		t.Fatalf("DayRange day = %v, want midnight Jan 17", days[0])
	}
}

func TestMonthRangeCoversGrid(t *testing.T) {
	// January 2024: the 1st is a Monday, the 31st a Wednesday.
	days := MonthRange(localDay(2024, time.January, 17), testNow)
	if len(days)%7 != 0 {
		t.Fatalf("MonthRange length %d not a multiple of 7", len(days))
	}
	if !days[0].Equal(localDay(2024, time.January, 1)) {
		t.Fatalf("grid starts %v, want Jan 1 (a Monday)", days[0])
	}
	if !days[len(days)-1].Equal(localDay(2024, time.February, 4)) {
		t.Fatalf("grid ends %v, want Sunday Feb 4", days[len(days)-1])
	}
	if days[0].Weekday() != time.Monday {
		t.Fatalf("grid should start on Monday, got %v", days[0].Weekday())
	}
}

func TestNavigate(t *testing.T) {
	anchor := localDay(2024, time.January, 17)
	tests := []struct {
		name   string
		date   time.Time
		action Action
		g      Granularity
		want   time.Time
	}{
		{"month prev", anchor, ActionPrev, GranularityMonth, localDay(2023, time.December, 17)},
		{"month next", anchor, ActionNext, GranularityMonth, localDay(2024, time.February, 17)},
		{"week prev", anchor, ActionPrev, GranularityWeek, localDay(2024, time.January, 10)},
		{"week next", anchor, ActionNext, GranularityWeek, localDay(2024, time.January, 24)},
		{"day prev", anchor, ActionPrev, GranularityDay, localDay(2024, time.January, 16)},
		{"day next", anchor, ActionNext, GranularityDay, localDay(2024, time.January, 18)},
		{"agenda pages by month", anchor, ActionNext, GranularityAgenda, localDay(2024, time.February, 17)},
		{"today", anchor, ActionToday, GranularityMonth, localDay(2024, time.January, 17)},
		{"zero date resolves to now", time.Time{}, ActionNext, GranularityDay, localDay(2024, time.January, 18)},
	}
	for _, tc := range tests {
		got := Navigate(tc.date, tc.action, tc.g, testNow)
		if !got.Equal(tc.want) {
			t.Fatalf("%s: Navigate = %v, want %v", tc.name, got, tc.want)
		}
		if got.IsZero() {
			t.Fatalf("%s: Navigate returned the zero time", tc.name)
		}
	}
}

func TestTitle(t *testing.T) {
	loc := Vietnamese()
	anchor := localDay(2024, time.January, 17)

	tests := []struct {
		name string
		date time.Time
		g    Granularity
		want string
	}{
		{"month", anchor, GranularityMonth, "Tháng 1 2024"},
		{"week", anchor, GranularityWeek, "15/01 - 21/01/2024"},
		{"day", anchor, GranularityDay, "Thứ tư, 17/01"},
		{"agenda uses month label", anchor, GranularityAgenda, "Tháng 1 2024"},
		{"zero date falls back to now", time.Time{}, GranularityMonth, "Tháng 1 2024"},
	}
	for _, tc := range tests {
		if got := Title(tc.date, tc.g, testNow, loc); got != tc.want {
			t.Fatalf("%s: Title = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseGranularity(t *testing.T) {
	if g, err := ParseGranularity("week"); err != nil || g != GranularityWeek {
		t.Fatalf("ParseGranularity(week) = %v, %v", g, err)
	}
	if g, err := ParseGranularity(""); err != nil || g != GranularityMonth {
		t.Fatalf("empty granularity should default to month, got %v, %v", g, err)
	}
	if g, err := ParseGranularity("quarter"); err == nil || g != GranularityMonth {
		t.Fatalf("unknown granularity should error and default, got %v, %v", g, err)
	}
}
