package config

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
)

// =============================================================================
// PROVIDER CAPABILITY
// =============================================================================

// Provider contributes configuration entries. Implementations return
// their own partial mapping; the assembler performs the ordered merge,
// so providers never see or mutate each other's results.
type Provider interface {
	Configuration() (Map, error)
}

// Factory constructs a named provider. Registered by packages that ship
// optional providers; looked up by name during assembly.
type Factory func() (Provider, error)

// =============================================================================
// PROVIDER REGISTRY
// =============================================================================
// Replaces instantiation-by-class-name: extra providers named in the
// environment are resolved against this compile-time registry.

var (
	providerRegistry = make(map[string]Factory)
	registryMu       sync.RWMutex
)

// RegisterProvider adds a provider factory under a name. Call from
// package init() functions.
func RegisterProvider(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providerRegistry[name] = f
}

// lookupProvider returns the factory for a name, or nil.
func lookupProvider(name string) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return providerRegistry[name]
}

// ListProviders returns the names of all registered provider factories.
func ListProviders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	return names
}

// =============================================================================
// BUILT-IN PROVIDERS
// =============================================================================

// defaultProvider carries the engine's baseline configuration. It is
// always first in the chain and therefore lowest precedence.
type defaultProvider struct{}

func (defaultProvider) Configuration() (Map, error) {
	return Map{
		KeyManagerImpl: "ruleset",
	}, nil
}

// URLProvider reads properties-style "key=value" lines from a resource
// locator. file:// and plain paths are read from disk; http(s) locators
// are fetched with a GET.
type URLProvider struct {
	URL *url.URL
}

func (p URLProvider) Configuration() (Map, error) {
	if p.URL == nil {
		return nil, fmt.Errorf("url provider: missing locator")
	}

	r, err := p.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return parseProperties(r)
}

func (p URLProvider) open() (io.ReadCloser, error) {
	switch p.URL.Scheme {
	case "http", "https":
		resp, err := http.Get(p.URL.String())
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", p.URL, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching %s: status %d", p.URL, resp.StatusCode)
		}
		return resp.Body, nil
	case "file", "":
		path := p.URL.Path
		if path == "" {
			path = p.URL.Opaque
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", p.URL, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("url provider: unsupported scheme %q", p.URL.Scheme)
	}
}

// parseProperties reads "key=value" lines, skipping blanks and comments.
func parseProperties(r io.Reader) (Map, error) {
	out := Map{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading properties: %w", err)
	}
	return out, nil
}
