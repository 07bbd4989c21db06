package calendar_test

import (
	"testing"
	"time"

	"github.com/warp/holiday-engine/calendar"
)

// =============================================================================
// EASTER SUNDAY - KNOWN DATES
// =============================================================================

func TestEasterSunday_GregorianKnownDates(t *testing.T) {
	// GIVEN: Historically documented Easter Sunday dates
	// WHEN: Computing Easter for each year
	// THEN: The computed date matches the record

	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2000, time.April, 23},
		{2001, time.April, 15},
		{2002, time.March, 31},
		{2003, time.April, 20},
		{2004, time.April, 11},
		{2005, time.March, 27},
		{2006, time.April, 16},
		{2007, time.April, 8},
		{2008, time.March, 23},
		{2009, time.April, 12},
		{2010, time.April, 4},
		{2011, time.April, 24},
		{2012, time.April, 8},
		{2013, time.March, 31},
	}

	for _, tc := range cases {
		got := calendar.EasterSunday(tc.year)
		want := calendar.NewDate(tc.year, tc.month, tc.day)
		if got != want {
			t.Errorf("EasterSunday(%d) = %s, want %s", tc.year, got, want)
		}
	}
}

func TestEasterSunday_ReformBoundary(t *testing.T) {
	// GIVEN: The 1582/1583 calendar-reform boundary
	// WHEN: Computing Easter on both sides of it
	// THEN: 1583 uses the Gregorian computus, 1582 the Julian one

	if got, want := calendar.EasterSunday(1583), calendar.NewDate(1583, time.April, 10); got != want {
		t.Errorf("EasterSunday(1583) = %s, want %s (Gregorian)", got, want)
	}
	if got, want := calendar.EasterSunday(1584), calendar.NewDate(1584, time.April, 1); got != want {
		t.Errorf("EasterSunday(1584) = %s, want %s (Gregorian)", got, want)
	}
	if got, want := calendar.EasterSunday(1582), calendar.NewDate(1582, time.April, 15); got != want {
		t.Errorf("EasterSunday(1582) = %s, want %s (Julian)", got, want)
	}
	if got, want := calendar.EasterSunday(1500), calendar.NewDate(1500, time.April, 19); got != want {
		t.Errorf("EasterSunday(1500) = %s, want %s (Julian)", got, want)
	}
}

func TestEasterSunday_AlwaysSundayWithinCanonicalBounds(t *testing.T) {
	// GIVEN: The full Gregorian era
	// WHEN: Computing Easter for every year
	// THEN: The date is a Sunday between March 22 and April 25

	for year := 1583; year <= 2500; year++ {
		d := calendar.EasterSunday(year)
		if d.Weekday() != time.Sunday {
			t.Errorf("EasterSunday(%d) = %s falls on %s, want Sunday", year, d, d.Weekday())
		}
		earliest := calendar.NewDate(year, time.March, 22)
		latest := calendar.NewDate(year, time.April, 25)
		if d.Before(earliest) || d.After(latest) {
			t.Errorf("EasterSunday(%d) = %s outside [%s, %s]", year, d, earliest, latest)
		}
	}
}

func TestEasterSunday_JulianWithinCanonicalBounds(t *testing.T) {
	// Julian Easter also lands between March 22 and April 25 in its own
	// calendar. Weekday is not checked here: Go's time package is
	// proleptic Gregorian and the returned value is a Julian date.

	for year := 400; year <= 1582; year++ {
		d := calendar.EasterSunday(year)
		earliest := calendar.NewDate(year, time.March, 22)
		latest := calendar.NewDate(year, time.April, 25)
		if d.Before(earliest) || d.After(latest) {
			t.Errorf("EasterSunday(%d) = %s outside [%s, %s]", year, d, earliest, latest)
		}
	}
}

// =============================================================================
// WEEKEND
// =============================================================================

func TestDate_IsWeekend(t *testing.T) {
	// GIVEN: A Friday through Monday run in March 2010
	// THEN: Only Saturday and Sunday count as weekend

	cases := []struct {
		day     int
		weekend bool
	}{
		{12, false}, // Friday
		{13, true},  // Saturday
		{14, true},  // Sunday
		{15, false}, // Monday
	}
	for _, tc := range cases {
		d := calendar.NewDate(2010, time.March, tc.day)
		if got := d.IsWeekend(); got != tc.weekend {
			t.Errorf("IsWeekend(%s) = %v, want %v", d, got, tc.weekend)
		}
	}
}
