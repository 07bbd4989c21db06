package holiday

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/warp/holiday-engine/config"
)

// =============================================================================
// REGISTRY - Process-wide manager selection and instance cache
// =============================================================================

// Registry builds and caches Manager instances. The instance cache and
// the caching toggle are explicit owned state; most programs use the
// package-level default registry, but tests and embedders can run
// several independent registries side by side.
type Registry struct {
	mu             sync.Mutex
	cache          map[string]*Manager
	cachingEnabled bool
	baseOverrides  config.Map
}

// NewRegistry returns a registry with instance caching enabled.
func NewRegistry() *Registry {
	return &Registry{
		cache:          make(map[string]*Manager),
		cachingEnabled: true,
	}
}

// Manager returns the manager for a calendar identifier. An empty or
// blank identifier selects the host's default country code. With caching
// enabled the same normalized identifier always yields the identical
// instance until ClearCache.
func (r *Registry) Manager(calendarID string, overrides config.Map) (*Manager, error) {
	key := NormalizeCalendarID(calendarID)
	if m := r.fromCache(key); m != nil {
		return m, nil
	}
	m, err := r.build(Source{CalendarID: key}, key, r.mergedOverrides(overrides))
	if err != nil {
		return nil, err
	}
	r.putCache(key, m)
	return m, nil
}

// ManagerFromURL returns the manager for a resource locator. A nil
// locator fails immediately, before any configuration work.
func (r *Registry) ManagerFromURL(locator *url.URL, overrides config.Map) (*Manager, error) {
	if locator == nil {
		return nil, ErrMissingResource
	}
	key := locator.String()
	if m := r.fromCache(key); m != nil {
		return m, nil
	}
	m, err := r.build(Source{URL: locator}, "", r.mergedOverrides(overrides))
	if err != nil {
		return nil, err
	}
	r.putCache(key, m)
	return m, nil
}

// build runs the full construction path: assemble configuration, resolve
// the implementation name, instantiate, init. Any failure propagates and
// nothing is written to the cache.
func (r *Registry) build(src Source, calendarID string, overrides config.Map) (*Manager, error) {
	slog.Debug("creating holiday manager",
		"calendar", calendarID, "url", src.URL, "caching", r.CachingEnabled())

	cfg, err := config.Assemble(src.URL, overrides)
	if err != nil {
		return nil, &ConfigurationError{CalendarID: calendarID, Err: err}
	}

	name, err := implementationName(cfg, calendarID)
	if err != nil {
		return nil, err
	}

	factory := lookupImplementation(name)
	if factory == nil {
		return nil, &ConfigurationError{
			CalendarID:     calendarID,
			Implementation: name,
			Err:            ErrUnknownImplementation,
		}
	}

	impl, err := factory(cfg)
	if err != nil {
		return nil, &ConfigurationError{
			CalendarID:     calendarID,
			Implementation: name,
			Err:            &InstantiationError{Implementation: name, Err: err},
		}
	}
	if err := impl.Init(src); err != nil {
		return nil, &ConfigurationError{
			CalendarID:     calendarID,
			Implementation: name,
			Err:            &InstantiationError{Implementation: name, Err: err},
		}
	}

	return newManager(calendarID, cfg, impl), nil
}

// implementationName resolves the implementation: the per-calendar key
// wins over the generic fallback; neither resolving is fatal.
func implementationName(cfg config.Map, calendarID string) (string, error) {
	if calendarID != "" {
		if name, ok := cfg[config.ImplKey(calendarID)]; ok && name != "" {
			return name, nil
		}
	}
	if name, ok := cfg[config.KeyManagerImpl]; ok && name != "" {
		return name, nil
	}
	return "", &ConfigurationError{CalendarID: calendarID, Err: ErrNoImplementation}
}

// SetBaseOverrides sets overrides applied to every manager this registry
// builds. Per-call overrides still win on conflicting keys. Intended for
// process-wide wiring at startup, such as the definition store path.
func (r *Registry) SetBaseOverrides(overrides config.Map) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseOverrides = overrides.Clone()
}

// mergedOverrides layers per-call overrides on top of the base set.
func (r *Registry) mergedOverrides(overrides config.Map) config.Map {
	r.mu.Lock()
	base := r.baseOverrides
	r.mu.Unlock()
	if len(base) == 0 {
		return overrides
	}
	merged := base.Clone()
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// =============================================================================
// INSTANCE CACHE
// =============================================================================

func (r *Registry) fromCache(key string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.cachingEnabled {
		return nil
	}
	return r.cache[key]
}

// putCache stores a freshly built manager. Two callers racing on the
// same uncached key may both build; the second write wins, which is
// harmless since the instances are behaviorally equivalent.
func (r *Registry) putCache(key string, m *Manager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.cachingEnabled {
		return
	}
	r.cache[key] = m
}

// SetCachingEnabled toggles the instance cache. When disabled, every
// request runs the full build path; per-manager holiday caches are not
// affected.
func (r *Registry) SetCachingEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cachingEnabled = enabled
}

// CachingEnabled reports whether the instance cache is active.
func (r *Registry) CachingEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cachingEnabled
}

// ClearCache atomically empties the instance cache. Holiday caches of
// managers already returned to callers are untouched.
func (r *Registry) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*Manager)
}

// =============================================================================
// CALENDAR IDENTIFIER NORMALIZATION
// =============================================================================

// NormalizeCalendarID maps nil-ish input to the host's default country
// code and everything else to its trimmed, lowercased form. The mapping
// is deterministic and total; the result is the instance-cache key.
func NormalizeCalendarID(calendarID string) string {
	calendarID = strings.TrimSpace(calendarID)
	if calendarID == "" {
		return defaultCountryCode()
	}
	return strings.ToLower(calendarID)
}

// defaultCountryCode derives the host country from the locale
// environment ("en_US.UTF-8" -> "us"), falling back to "us".
func defaultCountryCode() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		locale := os.Getenv(key)
		if locale == "" {
			continue
		}
		if _, region, ok := strings.Cut(locale, "_"); ok {
			region, _, _ = strings.Cut(region, ".")
			if region != "" {
				return strings.ToLower(region)
			}
		}
	}
	return "us"
}

// =============================================================================
// DEFAULT REGISTRY - Package-level convenience surface
// =============================================================================

var defaultRegistry = NewRegistry()

// GetManager returns a manager from the default registry. An empty
// calendarID selects the host's default country.
func GetManager(calendarID string, overrides config.Map) (*Manager, error) {
	return defaultRegistry.Manager(calendarID, overrides)
}

// GetManagerFromURL returns a manager for a resource locator from the
// default registry.
func GetManagerFromURL(locator *url.URL, overrides config.Map) (*Manager, error) {
	return defaultRegistry.ManagerFromURL(locator, overrides)
}

// SetManagerCachingEnabled toggles instance caching on the default
// registry.
func SetManagerCachingEnabled(enabled bool) { defaultRegistry.SetCachingEnabled(enabled) }

// IsManagerCachingEnabled reports the default registry's caching state.
func IsManagerCachingEnabled() bool { return defaultRegistry.CachingEnabled() }

// ClearManagerCache empties the default registry's instance cache.
func ClearManagerCache() { defaultRegistry.ClearCache() }
