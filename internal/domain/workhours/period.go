package workhours

import (
	"fmt"
	"time"
)

// Reporting periods tile each month with Monday–Sunday weeks, except that a
// week split across a month boundary with 0–1 days on one side is merged into
// the adjacent week. The merge applies at both ends of a month, so a period is
// anywhere from 4 to 11 days long.

// periodBoundaries returns the first and last day of the reporting period
// containing date. The decision table is keyed on latestMonday, the
// month-relative day number of the Monday on or before date (<= 0 when that
// Monday is in the previous month), and lastWeekLen, the days remaining in the
// month from that Monday.
func periodBoundaries(date time.Time) (time.Time, time.Time, error) {
	latestMonday := date.Day() - weekdayFromMonday(date)
	lastWeekLen := daysInMonth(date) - latestMonday

	var start time.Time
	var length int

	switch {
	case latestMonday >= -5 && latestMonday <= -2:
		// Leading stub of 1-4 days: merge with the following full week.
		start = newDate(date.Year(), date.Month(), 1)
		length = latestMonday + 13
	case latestMonday >= -1 && latestMonday <= 5:
		// First week of the month, possibly short.
		start = newDate(date.Year(), date.Month(), 1)
		length = latestMonday + 6
	case latestMonday >= 6 && latestMonday <= 31:
		startDay := latestMonday
		if lastWeekLen <= 1 {
			// Trailing stub of 0-1 days: pull it back into the prior week.
			startDay -= 7
		}
		if startDay < 1 || startDay > daysInMonth(date) {
			return time.Time{}, time.Time{}, fmt.Errorf("internal: period start day %d outside month", startDay)
		}
		start = newDate(date.Year(), date.Month(), startDay)

		switch {
		case lastWeekLen >= 0 && lastWeekLen <= 1:
			length = lastWeekLen + 8
		case lastWeekLen >= 2 && lastWeekLen <= 8:
			length = lastWeekLen + 1
		case lastWeekLen >= 9 && lastWeekLen <= 31:
			length = 7
		default:
			return time.Time{}, time.Time{}, fmt.Errorf("internal: last week length %d outside 0..31", lastWeekLen)
		}
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("internal: latest monday %d outside -5..31", latestMonday)
	}

	return start, addDays(start, length-1), nil
}

// periodName labels a period by ISO week number. A period that starts on a
// Monday and runs 7+ days past it is owned by its start week; otherwise the
// end date decides, so a short leading stub is named after the week it feeds
// into.
func periodName(start, end time.Time) string {
	if weekdayFromMonday(start) == 0 && daysBetween(start, end) >= 7 {
		_, week := start.ISOWeek()
		return fmt.Sprintf("week: %d", week)
	}
	_, week := end.ISOWeek()
	return fmt.Sprintf("week: %d", week)
}
