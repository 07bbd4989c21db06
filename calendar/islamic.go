package calendar

import (
	"sort"
	"time"
)

// The Islamic dates produced here follow the tabular (civil) calendar:
// a fixed 30-year intercalation cycle anchored at 1 Muharram 1 AH =
// 16 July 622 CE (Julian day number 1948440, the Friday epoch). It is an
// arithmetic approximation, not an astronomical one; observed dates can
// differ by a day or two. The historical vectors in the tests depend on
// this exact scheme, so it must not be "corrected" toward ephemeris
// accuracy.
const islamicEpochJDN = 1948440

// IslamicHolidays returns every Gregorian date within gregorianYear on
// which the given fixed Hijri (month, day) falls. Because the ~354-day
// lunar year drifts against the solar year, the result holds zero, one,
// or two dates, sorted chronologically.
func IslamicHolidays(gregorianYear, islamicMonth, islamicDay int) []Date {
	startJDN := gregorianToJDN(gregorianYear, time.January, 1)
	endJDN := gregorianToJDN(gregorianYear, time.December, 31)

	// Hijri year containing 1 January; the requested (month, day) of that
	// year may still precede the window, so probe the two following years
	// as well. Average year lengths bound the drift to at most two
	// candidate years per Gregorian year.
	base := hijriYearForJDN(startJDN)

	seen := make(map[int]struct{})
	var dates []Date
	for hy := base; hy <= base+2; hy++ {
		jdn := hijriToJDN(hy, islamicMonth, islamicDay)
		if jdn < startJDN || jdn > endJDN {
			continue
		}
		if _, dup := seen[jdn]; dup {
			continue
		}
		seen[jdn] = struct{}{}
		dates = append(dates, jdnToGregorian(jdn))
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// hijriToJDN converts a tabular Islamic date to its Julian day number.
// Months alternate 30 and 29 days; 11 leap days are spread over each
// 30-year cycle by the (3+11y)/30 term.
func hijriToJDN(year, month, day int) int {
	return day +
		30*(month-1) - (month-1)/2 +
		354*(year-1) + (3+11*year)/30 +
		islamicEpochJDN - 1
}

// hijriYearForJDN returns the tabular Islamic year containing the given
// Julian day number.
func hijriYearForJDN(jdn int) int {
	return (30*(jdn-islamicEpochJDN) + 10646) / 10631
}

// gregorianToJDN converts a proleptic Gregorian date to its Julian day
// number (Fliegel-Van Flandern).
func gregorianToJDN(year int, month time.Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian day number back to a proleptic
// Gregorian date (Fliegel-Van Flandern inverse).
func jdnToGregorian(jdn int) Date {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10
	return NewDate(year, time.Month(month), day)
}
