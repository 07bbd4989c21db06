/*
Package civil provides a holiday implementation backed by the rickar/cal
observance library.

PURPOSE:
  An alternative to the ruleset implementation for deployments that only
  need present-day civil observances and prefer a curated upstream
  catalog over definition files. Selected per calendar with the
  "manager.impl.<calendar>" configuration key.

LIMITS:
  - Flat: no sub-regions, hierarchy paths are rejected
  - No resource locators: definitions come from the library alone
  - Covers the country set listed in countries below

SEE ALSO:
  - ruleset: the default, definition-driven implementation
*/
package civil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/be"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/ch"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/us"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/holiday"
)

func init() {
	holiday.RegisterImplementation("civil", New)
}

// countries maps calendar codes to the library's observance catalogs.
var countries = map[string][]*cal.Holiday{
	"at": at.Holidays,
	"au": au.Holidays,
	"be": be.Holidays,
	"ca": ca.Holidays,
	"ch": ch.Holidays,
	"cz": cz.Holidays,
	"de": de.Holidays,
	"dk": dk.Holidays,
	"es": es.Holidays,
	"fr": fr.Holidays,
	"gb": gb.Holidays,
	"it": it.Holidays,
	"nl": nl.Holidays,
	"no": no.Holidays,
	"pl": pl.Holidays,
	"se": se.Holidays,
	"us": us.Holidays,
}

// Manager adapts a country's observance catalog to the engine.
type Manager struct {
	code      string
	holidays  []*cal.Holiday
	hierarchy *holiday.Hierarchy
}

// New constructs an uninitialized civil manager. The configuration map
// is accepted for interface symmetry; the catalog is fixed upstream.
func New(_ config.Map) (holiday.Implementation, error) {
	return &Manager{}, nil
}

func (m *Manager) Init(src holiday.Source) error {
	if src.URL != nil {
		return fmt.Errorf("civil implementation does not accept resource locators")
	}
	catalog, ok := countries[src.CalendarID]
	if !ok {
		return fmt.Errorf("civil implementation has no catalog for %q", src.CalendarID)
	}
	m.code = src.CalendarID
	m.holidays = catalog
	m.hierarchy = &holiday.Hierarchy{
		ID:  src.CalendarID,
		Key: "calendar.description." + src.CalendarID,
	}
	return nil
}

func (m *Manager) Holidays(year int, path ...string) (holiday.Set, error) {
	if len(path) > 0 {
		return nil, fmt.Errorf("calendar %q has no region %q", m.code, path[0])
	}

	set := holiday.Set{}
	for _, h := range m.holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		set.Add(holiday.Holiday{
			Date: calendar.FromTime(actual),
			Key:  keyFor(h.Name),
			Type: typeFor(h.Type),
		})
	}
	return set, nil
}

func (m *Manager) HolidaysBetween(iv calendar.Interval, path ...string) (holiday.Set, error) {
	if !iv.IsValid() {
		return nil, fmt.Errorf("invalid interval: end %s before start %s", iv.End, iv.Start)
	}
	out := holiday.Set{}
	for _, year := range iv.Years() {
		set, err := m.Holidays(year, path...)
		if err != nil {
			return nil, err
		}
		out.Merge(set.Filter(iv))
	}
	return out, nil
}

func (m *Manager) Hierarchy() *holiday.Hierarchy {
	return m.hierarchy
}

// Codes returns the calendar codes the catalog covers, sorted.
func Codes() []string {
	codes := make([]string, 0, len(countries))
	for code := range countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// keyFor renders an observance name as a stable holiday key, uppercase
// with non-alphanumeric runs collapsed to underscores.
func keyFor(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func typeFor(t cal.ObservanceType) holiday.Type {
	if t == cal.ObservancePublic || t == cal.ObservanceBank {
		return holiday.TypeOfficial
	}
	return holiday.TypeUnofficial
}
