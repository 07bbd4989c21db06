/*
Package ruleset is the data-driven holiday-rule evaluator and the
engine's default manager implementation (registered as "ruleset").

PURPOSE:
  Converts JSON calendar definitions into holiday sets. A definition
  holds a list of rules plus nested sub-region definitions mirroring the
  country/state/city hierarchy. Rules come in four kinds:

    fixed               month/day, same date every year
    fixed_weekday       nth (or last) weekday of a month
    relative_to_easter  signed day offset from Easter Sunday
    islamic             fixed Hijri (month, day), zero to two dates/year

JSON SCHEMA:
  {
    "code": "us",
    "description": "United States",
    "holidays": [
      {"type": "fixed", "month": 7, "day": 4, "key": "INDEPENDENCE_DAY"},
      {"type": "fixed_weekday", "month": 11, "weekday": "thursday",
       "which": "fourth", "key": "THANKSGIVING"}
    ],
    "sub": {
      "ny": { "code": "ny", "holidays": [ ... ], "sub": { ... } }
    }
  }

DEFINITION SOURCES (checked in order by the manager):
  1. the resource locator, when the manager was built from a URL
  2. a SQLite definition store, when "ruleset.db" is configured
  3. the embedded presets

SEE ALSO:
  - eval.go: rule resolution per year
  - manager.go: the holiday.Implementation wiring
  - presets.go: built-in calendar definitions
*/
package ruleset

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// Definition is one node of a calendar definition: its own rules plus
// nested sub-region definitions.
type Definition struct {
	Code        string                 `json:"code"`
	Description string                 `json:"description,omitempty"`
	Holidays    []Rule                 `json:"holidays,omitempty"`
	Sub         map[string]*Definition `json:"sub,omitempty"`
}

// Rule is a single holiday rule. Which fields apply depends on Type.
type Rule struct {
	Type       string `json:"type"`
	Key        string `json:"key"`
	Unofficial bool   `json:"unofficial,omitempty"`
	ValidFrom  *int   `json:"valid_from,omitempty"`
	ValidTo    *int   `json:"valid_to,omitempty"`

	// fixed and fixed_weekday
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`

	// fixed_weekday
	Weekday string `json:"weekday,omitempty"`
	Which   string `json:"which,omitempty"` // first..fourth, last

	// relative_to_easter
	Days int `json:"days,omitempty"`

	// islamic
	IslamicMonth int `json:"islamic_month,omitempty"`
	IslamicDay   int `json:"islamic_day,omitempty"`
}

// Rule type identifiers.
const (
	RuleFixed            = "fixed"
	RuleFixedWeekday     = "fixed_weekday"
	RuleRelativeToEaster = "relative_to_easter"
	RuleIslamic          = "islamic"
)

// Parse decodes and validates a calendar definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse calendar definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if d.Code == "" {
		return fmt.Errorf("calendar definition: missing code")
	}
	for i, r := range d.Holidays {
		if err := r.validate(); err != nil {
			return fmt.Errorf("calendar %q, rule %d: %w", d.Code, i, err)
		}
	}
	for id, sub := range d.Sub {
		if sub == nil {
			return fmt.Errorf("calendar %q: empty sub-region %q", d.Code, id)
		}
		if sub.Code == "" {
			sub.Code = id
		}
		if err := sub.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) validate() error {
	switch r.Type {
	case RuleFixed:
		if r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("fixed rule %q: month out of range", r.Key)
		}
		// February allows 29; the rule then skips non-leap years.
		if r.Day < 1 || r.Day > maxDayOfMonth(time.Month(r.Month)) {
			return fmt.Errorf("fixed rule %q: day out of range for %s", r.Key, time.Month(r.Month))
		}
	case RuleFixedWeekday:
		if r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("fixed_weekday rule %q: month out of range", r.Key)
		}
		if _, err := parseWeekday(r.Weekday); err != nil {
			return fmt.Errorf("fixed_weekday rule %q: %w", r.Key, err)
		}
		if _, err := parseWhich(r.Which); err != nil {
			return fmt.Errorf("fixed_weekday rule %q: %w", r.Key, err)
		}
	case RuleRelativeToEaster:
		// Any signed offset is valid.
	case RuleIslamic:
		if r.IslamicMonth < 1 || r.IslamicMonth > 12 || r.IslamicDay < 1 || r.IslamicDay > 30 {
			return fmt.Errorf("islamic rule %q: month/day out of range", r.Key)
		}
	default:
		return fmt.Errorf("unknown rule type %q", r.Type)
	}
	if r.Key == "" {
		return fmt.Errorf("rule of type %q: missing key", r.Type)
	}
	return nil
}

// maxDayOfMonth returns the largest day a fixed rule may name in a
// month. February is 29; whether that day exists in a given year is a
// per-year question answered during evaluation.
func maxDayOfMonth(m time.Month) int {
	switch m {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func parseWeekday(s string) (time.Weekday, error) {
	switch s {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
}

// parseWhich maps the ordinal selector to an occurrence index; -1 means
// the last occurrence in the month.
func parseWhich(s string) (int, error) {
	switch s {
	case "first":
		return 1, nil
	case "second":
		return 2, nil
	case "third":
		return 3, nil
	case "fourth":
		return 4, nil
	case "last":
		return -1, nil
	default:
		return 0, fmt.Errorf("unknown ordinal %q", s)
	}
}
