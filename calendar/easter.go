package calendar

import "time"

// gregorianReformYear is the first year for which Easter is computed with
// the Gregorian computus. Years before it use the Julian computus.
const gregorianReformYear = 1583

// EasterSunday computes the date of Easter Sunday for the given year.
//
// For years >= 1583 the Gregorian (reform) computus is used, following
// the anonymous Meeus/Jones/Butcher algorithm. For years <= 1582 the
// Julian computus applies and the returned date is a Julian-calendar
// date. The function is total: any plausible year yields a date.
func EasterSunday(year int) Date {
	if year < gregorianReformYear {
		return julianEasterSunday(year)
	}
	return gregorianEasterSunday(year)
}

// gregorianEasterSunday implements the Meeus/Jones/Butcher computus,
// valid for all Gregorian-calendar years.
func gregorianEasterSunday(year int) Date {
	a := year % 19 // golden number - 1
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30 // epact correction
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return NewDate(year, time.Month(month), day)
}

// julianEasterSunday implements the Meeus Julian computus. The result is
// expressed in the Julian calendar, which is the civil calendar in force
// for the years this branch covers.
func julianEasterSunday(year int) Date {
	a := year % 4
	b := year % 7
	c := year % 19 // golden number - 1
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	x := d + e + 114
	month := x / 31
	day := x%31 + 1
	return NewDate(year, time.Month(month), day)
}
