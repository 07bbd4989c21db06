/*
errors.go - Centralized error types for the engine core

ERROR CATEGORIES:
  1. Configuration errors - no implementation resolvable (fatal)
  2. Instantiation errors - resolved implementation cannot be built (fatal)
  3. Resource errors      - locator construction without a locator (fatal)

Provider load failures are deliberately absent: they are recoverable,
internal to the config package, and never surface here.
*/
package holiday

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNoImplementation is returned when neither a per-calendar nor the
	// generic implementation key resolves during manager construction.
	ErrNoImplementation = errors.New("no manager implementation configured")

	// ErrUnknownImplementation is returned when the resolved name has no
	// registered factory.
	ErrUnknownImplementation = errors.New("unknown manager implementation")

	// ErrMissingResource is returned when the locator construction path is
	// invoked without a locator. It fails before any configuration work.
	ErrMissingResource = errors.New("missing calendar resource locator")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the attempted identifiers
// =============================================================================

// ConfigurationError reports a fatal manager-construction failure with
// enough context to diagnose the attempted calendar and implementation.
type ConfigurationError struct {
	CalendarID     string
	Implementation string
	Err            error
}

func (e *ConfigurationError) Error() string {
	if e.Implementation != "" {
		return fmt.Sprintf("cannot create manager for calendar %q (implementation %q): %v",
			e.CalendarID, e.Implementation, e.Err)
	}
	return fmt.Sprintf("cannot create manager for calendar %q: %v", e.CalendarID, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InstantiationError reports that a resolved implementation could not be
// constructed or initialized. It is always wrapped in a
// ConfigurationError before reaching the caller.
type InstantiationError struct {
	Implementation string
	Err            error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("cannot instantiate implementation %q: %v", e.Implementation, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }
