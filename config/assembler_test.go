package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST PROVIDERS
// =============================================================================

type staticProvider struct {
	entries Map
}

func (p staticProvider) Configuration() (Map, error) { return p.entries, nil }

type failingProvider struct{}

func (failingProvider) Configuration() (Map, error) {
	return nil, errors.New("boom")
}

func registerStatic(t *testing.T, name string, entries Map) {
	t.Helper()
	RegisterProvider(name, func() (Provider, error) {
		return staticProvider{entries: entries}, nil
	})
	t.Cleanup(func() { unregisterProvider(name) })
}

// unregisterProvider keeps tests independent; production code only adds.
func unregisterProvider(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(providerRegistry, name)
}

// =============================================================================
// ASSEMBLY ORDER AND PRECEDENCE
// =============================================================================

func TestAssemble_DefaultsOnly(t *testing.T) {
	// GIVEN: No locator, no extras, no overrides
	// THEN: Only the built-in defaults are present

	t.Setenv(ProvidersEnv, "")
	cfg, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ruleset", cfg[KeyManagerImpl])
}

func TestAssemble_ManualOverrideAlwaysWins(t *testing.T) {
	// GIVEN: A provider and an override colliding on the same key
	// THEN: The override's value survives regardless of provider order

	t.Setenv(ProvidersEnv, "test-static")
	registerStatic(t, "test-static", Map{
		KeyManagerImpl: "from-provider",
		"extra.key":    "extra-value",
	})

	cfg, err := Assemble(nil, Map{KeyManagerImpl: "from-override"})
	require.NoError(t, err)
	assert.Equal(t, "from-override", cfg[KeyManagerImpl])
	assert.Equal(t, "extra-value", cfg["extra.key"])
}

func TestAssemble_ExtraProviderOverridesDefaults(t *testing.T) {
	t.Setenv(ProvidersEnv, "test-static")
	registerStatic(t, "test-static", Map{KeyManagerImpl: "civil"})

	cfg, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "civil", cfg[KeyManagerImpl])
}

func TestAssemble_ExtraProvidersApplyLeftToRight(t *testing.T) {
	t.Setenv(ProvidersEnv, "test-a, test-b")
	registerStatic(t, "test-a", Map{"k": "a", "only.a": "1"})
	registerStatic(t, "test-b", Map{"k": "b"})

	cfg, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "b", cfg["k"])
	assert.Equal(t, "1", cfg["only.a"])
}

// =============================================================================
// PROVIDER FAULT TOLERANCE
// =============================================================================

func TestAssemble_UnknownProviderNameIsSkipped(t *testing.T) {
	// GIVEN: The extras list names a provider nobody registered
	// THEN: Assembly succeeds with the remaining contributions

	t.Setenv(ProvidersEnv, "does-not-exist, test-static")
	registerStatic(t, "test-static", Map{"survived": "yes"})

	cfg, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "yes", cfg["survived"])
	assert.Equal(t, "ruleset", cfg[KeyManagerImpl])
}

func TestAssemble_FailingProviderDoesNotCorruptPriorResults(t *testing.T) {
	t.Setenv(ProvidersEnv, "test-static, test-failing")
	registerStatic(t, "test-static", Map{"before": "kept"})
	RegisterProvider("test-failing", func() (Provider, error) {
		return failingProvider{}, nil
	})
	t.Cleanup(func() { unregisterProvider("test-failing") })

	cfg, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "kept", cfg["before"])
}

func TestAssemble_FailingFactoryIsSkipped(t *testing.T) {
	t.Setenv(ProvidersEnv, "test-broken-factory")
	RegisterProvider("test-broken-factory", func() (Provider, error) {
		return nil, errors.New("cannot construct")
	})
	t.Cleanup(func() { unregisterProvider("test-broken-factory") })

	cfg, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ruleset", cfg[KeyManagerImpl])
}

// =============================================================================
// URL PROVIDER
// =============================================================================

func TestAssemble_LocatorProviderContributes(t *testing.T) {
	// GIVEN: A properties file referenced by a file locator
	// THEN: Its entries land between defaults and overrides

	t.Setenv(ProvidersEnv, "")
	path := filepath.Join(t.TempDir(), "engine.properties")
	content := "# test config\nmanager.impl = civil\ncustom.key=custom-value\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	locator := &url.URL{Scheme: "file", Path: path}
	cfg, err := Assemble(locator, Map{"custom.key": "overridden"})
	require.NoError(t, err)

	assert.Equal(t, "civil", cfg[KeyManagerImpl])
	assert.Equal(t, "overridden", cfg["custom.key"])
}

func TestAssemble_UnreadableLocatorIsFatal(t *testing.T) {
	// GIVEN: A locator the caller explicitly asked for, pointing nowhere
	// THEN: Assembly fails instead of silently continuing without it

	t.Setenv(ProvidersEnv, "")
	locator := &url.URL{Scheme: "file", Path: "/nonexistent/engine.properties"}

	_, err := Assemble(locator, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locator configuration")
}

func TestURLProvider_MissingFileFails(t *testing.T) {
	p := URLProvider{URL: &url.URL{Scheme: "file", Path: "/nonexistent/engine.properties"}}
	_, err := p.Configuration()
	assert.Error(t, err)
}
