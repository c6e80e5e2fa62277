package schedule

import "time"

// Locale carries the display names the calendar needs. It is passed
// explicitly wherever labels are produced; there is no ambient package-level
// locale to mutate.
type Locale struct {
	// Months is indexed by time.Month - 1.
	Months [12]string
	// Weekdays is indexed by time.Weekday (Sunday first).
	Weekdays [7]string
	// WeekdaysShort is indexed by time.Weekday, used for column headers.
	WeekdaysShort [7]string
}

// Vietnamese is the default locale of the planning calendar.
func Vietnamese() Locale {
	return Locale{
		Months: [12]string{
			"Tháng 1", "Tháng 2", "Tháng 3", "Tháng 4",
			"Tháng 5", "Tháng 6", "Tháng 7", "Tháng 8",
			"Tháng 9", "Tháng 10", "Tháng 11", "Tháng 12",
		},
		Weekdays: [7]string{
			"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư",
			"Thứ năm", "Thứ sáu", "Thứ bảy",
		},
		WeekdaysShort: [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"},
	}
}

// English is available for terminals where Vietnamese fonts misrender.
func English() Locale {
	return Locale{
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday",
			"Thursday", "Friday", "Saturday",
		},
		WeekdaysShort: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	}
}

// MonthName returns the localized name for m.
func (l Locale) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.Months[m-1]
}

// WeekdayName returns the localized long name for d.
func (l Locale) WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return l.Weekdays[d]
}

// WeekdayShort returns the localized column-header name for d.
func (l Locale) WeekdayShort(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return l.WeekdaysShort[d]
}
