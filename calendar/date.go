/*
Package calendar provides the deterministic date algorithms the holiday
engine is built on.

PURPOSE:
  Pure date arithmetic, independent of any holiday rule data:
  - Date: a day-granularity calendar date (no time zone, no clock time)
  - Easter Sunday computation across the Julian/Gregorian reform
  - Gregorian <-> Hijri (Islamic) conversion for moving holidays
  - Weekend tests and simple interval containment

DESIGN PRINCIPLES:
  1. Day granularity only: a holiday is a date, never an instant
  2. Pure functions: no side effects, total over plausible year ranges
  3. Integer arithmetic: the computus and the tabular Islamic calendar
     are defined over integer division; no floating point is involved

USAGE:
  easter := calendar.EasterSunday(2010)        // 2010-04-04
  dates := calendar.IslamicHolidays(2008, 1, 1) // 1 Muharram occurrences

SEE ALSO:
  - easter.go: computus algorithms
  - islamic.go: tabular Hijri conversion
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

// Date is a calendar date without time-of-day or zone. The zero value is
// not a valid date; use NewDate or Today.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// FromTime truncates a time.Time to its date in UTC terms.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in ISO "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }
func (d Date) Equal(other Date) bool  { return d.normalize() == other.normalize() }

// Arithmetic
func (d Date) AddDays(n int) Date { return FromTime(d.Time().AddDate(0, 0, n)) }

// normalize folds overflowed day/month values into a canonical date, so
// Date{2010, time.January, 32} compares equal to 2010-02-01.
func (d Date) normalize() Date { return FromTime(d.Time()) }

// Properties
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsZero() bool          { return d == Date{} }

// IsWeekend reports whether the date falls on Saturday or Sunday under
// the proleptic Gregorian week.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// =============================================================================
// INTERVAL - Inclusive date range
// =============================================================================

// Interval is an inclusive [Start, End] range of dates.
type Interval struct {
	Start Date
	End   Date
}

func NewInterval(start, end Date) Interval {
	return Interval{Start: start, End: end}
}

func (iv Interval) Contains(d Date) bool {
	return !d.Before(iv.Start) && !d.After(iv.End)
}

func (iv Interval) IsValid() bool {
	return !iv.End.Before(iv.Start)
}

// Years returns the Gregorian years the interval touches, in order.
func (iv Interval) Years() []int {
	if !iv.IsValid() {
		return nil
	}
	var years []int
	for y := iv.Start.Year; y <= iv.End.Year; y++ {
		years = append(years, y)
	}
	return years
}
