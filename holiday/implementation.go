package holiday

import (
	"net/url"
	"sort"
	"sync"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/config"
)

// =============================================================================
// IMPLEMENTATION CAPABILITY
// =============================================================================

// Source tells an implementation what it was constructed for: a
// normalized calendar identifier, or a resource locator. Exactly one of
// the two is set.
type Source struct {
	CalendarID string
	URL        *url.URL
}

// Implementation is the capability a concrete holiday-rule evaluator
// provides. Implementations are selected by configured name through the
// implementation registry; the engine core never evaluates rules itself.
type Implementation interface {
	// Init prepares the implementation for its source. Called exactly once,
	// after construction, before any query.
	Init(src Source) error

	// Holidays returns all holidays of a year, narrowed by the hierarchy
	// path (e.g. "ny", "nyc").
	Holidays(year int, path ...string) (Set, error)

	// HolidaysBetween returns the holidays inside the interval.
	HolidaysBetween(iv calendar.Interval, path ...string) (Set, error)

	// Hierarchy describes the region structure this implementation serves.
	Hierarchy() *Hierarchy
}

// ImplementationFactory constructs an implementation from the assembled
// configuration. Replaces instantiation-by-class-name: implementations
// register a factory under the name configuration refers to.
type ImplementationFactory func(cfg config.Map) (Implementation, error)

// =============================================================================
// IMPLEMENTATION REGISTRY
// =============================================================================

var (
	implRegistry = make(map[string]ImplementationFactory)
	implMu       sync.RWMutex
)

// RegisterImplementation adds an implementation factory under a name.
// Implementation packages call this from init().
func RegisterImplementation(name string, f ImplementationFactory) {
	implMu.Lock()
	defer implMu.Unlock()
	implRegistry[name] = f
}

// lookupImplementation returns the factory for a name, or nil.
func lookupImplementation(name string) ImplementationFactory {
	implMu.RLock()
	defer implMu.RUnlock()
	return implRegistry[name]
}

// Implementations returns the names of all registered implementation
// factories.
func Implementations() []string {
	implMu.RLock()
	defer implMu.RUnlock()
	names := make([]string, 0, len(implRegistry))
	for name := range implRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
