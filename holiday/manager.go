package holiday

import (
	"strconv"
	"strings"
	"sync"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/config"
)

// =============================================================================
// MANAGER - Configured evaluator plus per-year holiday cache
// =============================================================================

// Manager is a cached, ready-to-query holiday manager: the merged
// configuration, the selected rule evaluator, and a per-(year, path)
// holiday cache. Managers are safe for concurrent use; two goroutines
// racing on the same uncached year may both evaluate, but the stored
// sets are equivalent and never partially written.
type Manager struct {
	calendarID string
	cfg        config.Map
	impl       Implementation

	mu              sync.RWMutex
	holidaysPerYear map[string]Set
}

func newManager(calendarID string, cfg config.Map, impl Implementation) *Manager {
	return &Manager{
		calendarID:      calendarID,
		cfg:             cfg,
		impl:            impl,
		holidaysPerYear: make(map[string]Set),
	}
}

// CalendarID returns the normalized calendar identifier, or "" for
// locator-built managers.
func (m *Manager) CalendarID() string { return m.calendarID }

// Config returns a copy of the merged configuration; the assembled
// original is immutable for the manager's lifetime.
func (m *Manager) Config() config.Map { return m.cfg.Clone() }

// Hierarchy returns the evaluator's region structure.
func (m *Manager) Hierarchy() *Hierarchy { return m.impl.Hierarchy() }

// Holidays returns all holidays of a year for the hierarchy path,
// computing through the evaluator on first use and serving the cached
// set afterwards.
func (m *Manager) Holidays(year int, path ...string) (Set, error) {
	key := cacheKey(year, path)

	m.mu.RLock()
	cached, ok := m.holidaysPerYear[key]
	m.mu.RUnlock()
	if ok {
		return cached, nil
	}

	computed, err := m.impl.Holidays(year, path...)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	// Another goroutine may have stored an equivalent set meanwhile; keep
	// the first one so repeated calls return the identical value.
	if existing, ok := m.holidaysPerYear[key]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.holidaysPerYear[key] = computed
	m.mu.Unlock()
	return computed, nil
}

// HolidaysBetween returns the holidays inside the interval. This
// delegates to the evaluator on every call; the cache is year-keyed, not
// interval-keyed.
func (m *Manager) HolidaysBetween(iv calendar.Interval, path ...string) (Set, error) {
	return m.impl.HolidaysBetween(iv, path...)
}

// IsHoliday reports whether the date is a holiday under the hierarchy
// path, by exact date membership in the date's year set.
func (m *Manager) IsHoliday(d calendar.Date, path ...string) (bool, error) {
	set, err := m.Holidays(d.Year, path...)
	if err != nil {
		return false, err
	}
	return set.Contains(d), nil
}

// cacheKey builds the year cache key, e.g. "2010_ny_nyc".
func cacheKey(year int, path []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(year))
	for _, p := range path {
		b.WriteByte('_')
		b.WriteString(p)
	}
	return b.String()
}
