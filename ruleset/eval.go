package ruleset

import (
	"fmt"
	"time"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/holiday"
)

// =============================================================================
// RULE EVALUATION
// =============================================================================

// HolidaysForYear resolves every rule along the hierarchy path for one
// year: the root's rules always apply, plus the rules of each sub-region
// named by the path, outermost first.
func (d *Definition) HolidaysForYear(year int, path []string) (holiday.Set, error) {
	set := holiday.Set{}

	node := d
	if err := node.addHolidays(set, year); err != nil {
		return nil, err
	}
	for _, id := range path {
		child := node.Sub[id]
		if child == nil {
			return nil, fmt.Errorf("calendar %q has no region %q", node.Code, id)
		}
		node = child
		if err := node.addHolidays(set, year); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (d *Definition) addHolidays(set holiday.Set, year int) error {
	for _, r := range d.Holidays {
		dates, err := r.Dates(year)
		if err != nil {
			return fmt.Errorf("calendar %q, rule %q: %w", d.Code, r.Key, err)
		}
		for _, date := range dates {
			set.Add(holiday.Holiday{Date: date, Key: r.Key, Type: r.holidayType()})
		}
	}
	return nil
}

// RuleHierarchy renders the definition tree as the engine's hierarchy
// structure.
func (d *Definition) RuleHierarchy() *holiday.Hierarchy {
	h := &holiday.Hierarchy{
		ID:  d.Code,
		Key: "calendar.description." + d.Code,
	}
	for id, sub := range d.Sub {
		child := sub.RuleHierarchy()
		child.ID = id
		h.AddChild(child)
	}
	return h
}

// Dates returns the dates the rule produces within the year; empty when
// the year is outside the rule's validity window.
func (r Rule) Dates(year int) ([]calendar.Date, error) {
	if r.ValidFrom != nil && year < *r.ValidFrom {
		return nil, nil
	}
	if r.ValidTo != nil && year > *r.ValidTo {
		return nil, nil
	}

	switch r.Type {
	case RuleFixed:
		d := calendar.NewDate(year, time.Month(r.Month), r.Day)
		// A Feb 29 rule has no occurrence in non-leap years.
		if d.Time().Day() != r.Day {
			return nil, nil
		}
		return []calendar.Date{d}, nil

	case RuleFixedWeekday:
		weekday, err := parseWeekday(r.Weekday)
		if err != nil {
			return nil, err
		}
		which, err := parseWhich(r.Which)
		if err != nil {
			return nil, err
		}
		return []calendar.Date{nthWeekday(year, time.Month(r.Month), weekday, which)}, nil

	case RuleRelativeToEaster:
		return []calendar.Date{calendar.EasterSunday(year).AddDays(r.Days)}, nil

	case RuleIslamic:
		return calendar.IslamicHolidays(year, r.IslamicMonth, r.IslamicDay), nil

	default:
		return nil, fmt.Errorf("unknown rule type %q", r.Type)
	}
}

func (r Rule) holidayType() holiday.Type {
	if r.Unofficial {
		return holiday.TypeUnofficial
	}
	return holiday.TypeOfficial
}

// nthWeekday finds the nth occurrence of a weekday in a month; n == -1
// selects the last occurrence.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) calendar.Date {
	if n == -1 {
		// Last day of the month, stepped back to the wanted weekday.
		last := calendar.NewDate(year, month+1, 1).AddDays(-1)
		back := int(last.Weekday() - weekday)
		if back < 0 {
			back += 7
		}
		return last.AddDays(-back)
	}

	first := calendar.NewDate(year, month, 1)
	forward := int(weekday - first.Weekday())
	if forward < 0 {
		forward += 7
	}
	return first.AddDays(forward + (n-1)*7)
}
