package workhours

import "time"

// holidaySet holds the non-working dates for a span of years, queried by
// membership only. Keys are midnight-UTC dates.
type holidaySet map[time.Time]struct{}

func (s holidaySet) contains(date time.Time) bool {
	_, ok := s[date]
	return ok
}

// holidaysForYears returns the Swedish holiday set for every year from
// startYear through endYear inclusive.
func holidaysForYears(startYear, endYear int) holidaySet {
	set := make(holidaySet, 12*(endYear-startYear+1))
	for year := startYear; year <= endYear; year++ {
		for _, date := range yearHolidays(year) {
			set[date] = struct{}{}
		}
	}
	return set
}

func yearHolidays(year int) []time.Time {
	easter := easterSunday(year)
	return []time.Time{
		newDate(year, time.January, 1),   // nyårsdagen
		newDate(year, time.January, 6),   // trettondedag jul
		newDate(year, time.May, 1),       // första maj
		newDate(year, time.December, 24), // julafton
		newDate(year, time.December, 25), // juldagen
		newDate(year, time.December, 26), // annandag jul
		newDate(year, time.December, 31), // nyårsafton
		addDays(easter, -2),              // långfredagen
		addDays(easter, 1),               // annandag påsk
		addDays(easter, 40),              // kristi himmelsfärdsdag
		midsummerEve(year),
		nationalDay(year),
	}
}

// easterSunday computes Easter for the Gregorian calendar using the anonymous
// Gregorian computus (see https://en.wikipedia.org/wiki/Date_of_Easter).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return newDate(year, time.Month(month), day)
}

// midsummerEve is the latest Friday on or before June 30.
func midsummerEve(year int) time.Time {
	date := newDate(year, time.June, 30)
	for weekdayFromMonday(date) != 4 {
		date = addDays(date, -1)
	}
	return date
}

// nationalDay is June 6, observed on the preceding Friday when it lands on a
// weekend.
func nationalDay(year int) time.Time {
	date := newDate(year, time.June, 6)
	switch date.Weekday() {
	case time.Saturday:
		return addDays(date, -1)
	case time.Sunday:
		return addDays(date, -2)
	default:
		return date
	}
}
