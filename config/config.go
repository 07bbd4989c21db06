/*
Package config assembles the holiday engine's configuration from a chain
of providers plus caller-supplied overrides.

PURPOSE:
  Every manager construction needs one merged key/value configuration.
  Contributions come from, in strictly increasing precedence:
    1. the built-in default provider (always present)
    2. the resource-locator provider (when a URL was supplied)
    3. extra providers named in the HOLIDAY_CONFIG_PROVIDERS environment
       setting (comma separated, left to right)
    4. caller-supplied manual overrides (always win on collision)

KEY CONCEPTS:
  - Map: plain string-to-string configuration mapping
  - Provider: contributes a partial Map; never mutates shared state
  - Assemble: the single pure ordered merge of all contributions

ERROR HANDLING:
  A named extra provider that cannot be found, constructed, or invoked is
  skipped and the assembly continues with the remaining names. These
  failures are logged at debug level and never surfaced to the caller;
  callers may rely on optional best-effort providers.

SEE ALSO:
  - provider.go: Provider capability, name registry, built-in providers
  - assembler.go: the ordered merge
*/
package config

// Configuration keys understood by the engine core.
const (
	// KeyManagerImpl selects the manager implementation. The generic key
	// is the fallback; a per-calendar key (see ImplKey) takes precedence.
	KeyManagerImpl = "manager.impl"

	// KeyRulesetDB points the ruleset implementation at a SQLite file of
	// calendar definitions instead of the embedded presets.
	KeyRulesetDB = "ruleset.db"

	// ProvidersEnv names the environment setting holding a comma-separated
	// list of extra provider names. Empty or absent means none.
	ProvidersEnv = "HOLIDAY_CONFIG_PROVIDERS"
)

// ImplKey returns the per-calendar implementation-selection key, e.g.
// "manager.impl.us".
func ImplKey(calendarID string) string {
	return KeyManagerImpl + "." + calendarID
}

// Map is a configuration mapping. Assembled maps are owned by their
// manager and must be treated as immutable by callers.
type Map map[string]string

// Clone returns an independent copy.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// merge copies every entry of src into m, later sources winning ties.
func (m Map) merge(src Map) {
	for k, v := range src {
		m[k] = v
	}
}
