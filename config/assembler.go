package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// Assemble builds the merged configuration for one manager construction.
//
// Contributions are merged in precedence order: built-in defaults, the
// locator provider (when locator is non-nil), the extra providers named
// in the ProvidersEnv setting (in listed order), and finally the manual
// overrides, which win every collision. Failures of named extra
// providers are swallowed; earlier contributions are never corrupted by
// a failing later one. A supplied locator is different: the caller asked
// for that exact resource, so a failed read is fatal.
func Assemble(locator *url.URL, overrides Map) (Map, error) {
	merged := Map{}

	contribute(merged, "default", defaultProvider{})

	if locator != nil {
		partial, err := URLProvider{URL: locator}.Configuration()
		if err != nil {
			return nil, fmt.Errorf("locator configuration: %w", err)
		}
		merged.merge(partial)
	}

	for _, name := range extraProviderNames() {
		factory := lookupProvider(name)
		if factory == nil {
			slog.Debug("skipping unknown configuration provider", "name", name)
			continue
		}
		provider, err := factory()
		if err != nil {
			slog.Debug("skipping configuration provider", "name", name, "error", err)
			continue
		}
		contribute(merged, name, provider)
	}

	merged.merge(overrides)
	return merged, nil
}

// contribute merges one provider's partial map, dropping the whole
// contribution when the provider fails. The working map is only touched
// after a successful read, so prior entries stay intact.
func contribute(merged Map, name string, p Provider) {
	partial, err := p.Configuration()
	if err != nil {
		slog.Debug("configuration provider failed", "name", name, "error", err)
		return
	}
	merged.merge(partial)
}

// extraProviderNames reads the comma-separated provider list from the
// environment. Absent or empty is not an error.
func extraProviderNames() []string {
	raw := os.Getenv(ProvidersEnv)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
