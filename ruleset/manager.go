package ruleset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/warp/holiday-engine/calendar"
	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/holiday"
	"github.com/warp/holiday-engine/store/sqlite"
)

func init() {
	holiday.RegisterImplementation("ruleset", New)
}

// =============================================================================
// MANAGER - holiday.Implementation backed by a parsed Definition
// =============================================================================

// Manager evaluates a parsed calendar definition. It is stateless after
// Init; all caching happens in the engine core.
type Manager struct {
	cfg       config.Map
	def       *Definition
	hierarchy *holiday.Hierarchy
}

// New constructs an uninitialized ruleset manager. The definition is
// loaded during Init, once the source is known.
func New(cfg config.Map) (holiday.Implementation, error) {
	return &Manager{cfg: cfg}, nil
}

// Init loads the calendar definition for the source: the locator when
// one was supplied, otherwise the configured SQLite store, otherwise the
// embedded presets.
func (m *Manager) Init(src holiday.Source) error {
	data, err := m.loadDefinition(src)
	if err != nil {
		return err
	}
	def, err := Parse(data)
	if err != nil {
		return err
	}
	m.def = def
	m.hierarchy = def.RuleHierarchy()
	return nil
}

func (m *Manager) loadDefinition(src holiday.Source) ([]byte, error) {
	if src.URL != nil {
		return readLocator(src.URL)
	}

	if dbPath := m.cfg[config.KeyRulesetDB]; dbPath != "" {
		return m.loadFromStore(dbPath, src.CalendarID)
	}

	if preset, ok := presets[src.CalendarID]; ok {
		return []byte(preset), nil
	}
	return nil, fmt.Errorf("no calendar definition for %q", src.CalendarID)
}

func (m *Manager) loadFromStore(dbPath, code string) ([]byte, error) {
	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening definition store: %w", err)
	}
	defer store.Close()

	def, err := store.Definition(context.Background(), code)
	if err != nil {
		return nil, err
	}
	return []byte(def.JSON), nil
}

// Holidays resolves the definition's rules for one year and path.
func (m *Manager) Holidays(year int, path ...string) (holiday.Set, error) {
	return m.def.HolidaysForYear(year, path)
}

// HolidaysBetween resolves every year the interval touches and keeps
// the dates inside it.
func (m *Manager) HolidaysBetween(iv calendar.Interval, path ...string) (holiday.Set, error) {
	if !iv.IsValid() {
		return nil, fmt.Errorf("invalid interval: end %s before start %s", iv.End, iv.Start)
	}
	out := holiday.Set{}
	for _, year := range iv.Years() {
		set, err := m.def.HolidaysForYear(year, path)
		if err != nil {
			return nil, err
		}
		out.Merge(set.Filter(iv))
	}
	return out, nil
}

// Hierarchy returns the definition's region tree.
func (m *Manager) Hierarchy() *holiday.Hierarchy {
	return m.hierarchy
}

// readLocator fetches raw definition JSON from a resource locator.
func readLocator(u *url.URL) ([]byte, error) {
	switch u.Scheme {
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", u, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: status %d", u, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	case "file", "":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", u, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported locator scheme %q", u.Scheme)
	}
}
