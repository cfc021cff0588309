package workhours

import "time"

const dateLayout = "02-01-2006"

// Dates are carried as time.Time values pinned to midnight UTC so that
// equality and map membership behave like calendar-day comparisons.

func newDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func addDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// daysBetween returns the whole-day distance from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// weekdayFromMonday maps time.Weekday onto the ISO convention Monday=0 .. Sunday=6.
func weekdayFromMonday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(date time.Time) int {
	switch date.Month() {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeapYear(date.Year()) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isWeekend(date time.Time) bool {
	return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
}
