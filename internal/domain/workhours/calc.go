// Package workhours computes the number of working hours between two calendar
// dates. The range is segmented into week-aligned reporting periods clipped to
// month boundaries, weekends and Swedish holidays are excluded, and the
// results are aggregated into a year > month > period totals tree.
package workhours

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// HoursPerDay is credited for every day that is neither a weekend day nor a
// holiday.
const HoursPerDay = 8

var (
	// ErrStartDate reports a start date that does not parse as DD-MM-YYYY.
	ErrStartDate = errors.New("invalid start date, expected DD-MM-YYYY")
	// ErrEndDate reports an end date that does not parse as DD-MM-YYYY.
	ErrEndDate = errors.New("invalid end date, expected DD-MM-YYYY")
	// ErrInvertedRange reports a range whose start lies after its end.
	ErrInvertedRange = errors.New("start date must be on or before end date")
)

// Calculate computes the working hours between two DD-MM-YYYY dates,
// inclusive. The returned tree is complete or nil; no partial results.
func Calculate(start, end string) (*Tree, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	tree := newTree()
	current := startDate
	for !current.After(endDate) {
		periodStart, periodEnd, err := periodBoundaries(current)
		if err != nil {
			return nil, err
		}
		label := periodName(periodStart, periodEnd)
		holidays := holidaysForYears(current.Year(), periodEnd.Year())

		// The final period may be cut short by the requested end date. The
		// clip never extends past the natural boundary, so the next iteration
		// always starts a fresh period.
		if periodEnd.After(endDate) {
			periodEnd = endDate
		}
		hours := scorePeriod(current, periodEnd, holidays)

		yearKey := strconv.Itoa(current.Year())
		monthKey := fmt.Sprintf("%02d-%s", int(current.Month()), current.Month())
		tree.add(yearKey, monthKey, label, hours)

		current = addDays(periodEnd, 1)
	}
	return tree, nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrStartDate
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrEndDate
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}
	return startDate, endDate, nil
}

// scorePeriod sums working hours over the inclusive day range.
func scorePeriod(start, end time.Time, holidays holidaySet) uint32 {
	var hours uint32
	for date := start; !date.After(end); date = addDays(date, 1) {
		if isWeekend(date) || holidays.contains(date) {
			continue
		}
		hours += HoursPerDay
	}
	return hours
}
