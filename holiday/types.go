/*
Package holiday is the core of the engine: it selects a concrete
holiday-rule implementation per calendar at runtime and caches both the
selected instances and their computed results.

PURPOSE:
  Callers ask a Registry for a Manager by calendar identifier or resource
  locator. The Registry assembles configuration (config package), resolves
  the implementation name, instantiates it through the implementation
  registry, and caches the Manager process-wide. The Manager itself caches
  holiday sets per (year, hierarchy path).

KEY CONCEPTS IN THIS FILE (types.go):
  - Holiday: a date plus a description key and a type tag
  - Set: an immutable-once-computed set of Holidays
  - Type: official vs unofficial classification

CACHING MODEL:
  Two levels. The Registry holds at most one Manager per normalized key
  while global caching is enabled; each Manager's year cache is append
  only for its lifetime. Clearing the Registry cache never touches the
  year caches of Managers already handed out.

USAGE:
  m, err := holiday.GetManager("us", nil)
  hs, err := m.Holidays(2010, "ny")
  ok, err := m.IsHoliday(calendar.NewDate(2010, time.July, 4), "ny")

SEE ALSO:
  - registry.go: manager selection and the process-wide instance cache
  - manager.go: per-instance holiday cache
  - implementation.go: the capability concrete evaluators provide
*/
package holiday

import (
	"sort"

	"github.com/warp/holiday-engine/calendar"
)

// =============================================================================
// HOLIDAY
// =============================================================================

// Type classifies a holiday entry.
type Type string

const (
	TypeOfficial   Type = "official"
	TypeUnofficial Type = "unofficial"
)

// Holiday is a single holiday occurrence. Key is a symbolic description
// key (e.g. "INDEPENDENCE_DAY"); localized text lookup is outside the
// engine core.
type Holiday struct {
	Date calendar.Date
	Key  string
	Type Type
}

// =============================================================================
// SET
// =============================================================================

// Set is a set of holidays. Sets returned from a Manager are shared
// cache entries and must not be mutated by callers.
type Set map[Holiday]struct{}

func NewSet(hs ...Holiday) Set {
	s := make(Set, len(hs))
	for _, h := range hs {
		s.Add(h)
	}
	return s
}

func (s Set) Add(h Holiday) { s[h] = struct{}{} }

// Contains reports whether any holiday in the set falls on the date.
func (s Set) Contains(d calendar.Date) bool {
	for h := range s {
		if h.Date.Equal(d) {
			return true
		}
	}
	return false
}

// Filter returns the subset of holidays inside the interval.
func (s Set) Filter(iv calendar.Interval) Set {
	out := Set{}
	for h := range s {
		if iv.Contains(h.Date) {
			out.Add(h)
		}
	}
	return out
}

// Merge adds every holiday of other into s.
func (s Set) Merge(other Set) {
	for h := range other {
		s.Add(h)
	}
}

// Sorted returns the holidays ordered by date, then key. Useful for
// stable output; the Set itself is unordered.
func (s Set) Sorted() []Holiday {
	out := make([]Holiday, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Key < out[j].Key
	})
	return out
}
