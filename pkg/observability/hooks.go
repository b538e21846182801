// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about engine operations and scenario playback.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Libraries never import a metrics backend; main wires one in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnApply(declarations, activated, deactivated, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the reconciliation engine. Engine
// operations are synchronous and carry no context.
type EngineHooks interface {
	// OnApply records one apply: the flattened declaration count and the size
	// of the batch handed to the host.
	OnApply(declarations, activated, deactivated int, duration time.Duration)

	// OnReload records a reload over nodes reconciliation nodes.
	OnReload(nodes, activated, deactivated int, duration time.Duration)

	// OnClear records a clear over nodes reconciliation nodes.
	OnClear(nodes, deactivated int, duration time.Duration)

	// OnDegraded records an apply that produced nothing because the element
	// had no container.
	OnDegraded(declarations int)
}

// =============================================================================
// Scenario Hooks
// =============================================================================

// ScenarioHooks receives events from scenario playback.
type ScenarioHooks interface {
	// OnStep records a completed scenario step.
	OnStep(ctx context.Context, index int, action string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnApply(int, int, int, time.Duration)  {}
func (NoopEngineHooks) OnReload(int, int, int, time.Duration) {}
func (NoopEngineHooks) OnClear(int, int, time.Duration)       {}
func (NoopEngineHooks) OnDegraded(int)                        {}

// NoopScenarioHooks is a no-op implementation of ScenarioHooks.
type NoopScenarioHooks struct{}

func (NoopScenarioHooks) OnStep(context.Context, int, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks   EngineHooks   = NoopEngineHooks{}
	scenarioHooks ScenarioHooks = NoopScenarioHooks{}
	hooksMu       sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine operations.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetScenarioHooks registers custom scenario hooks.
func SetScenarioHooks(h ScenarioHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scenarioHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Scenario returns the registered scenario hooks.
func Scenario() ScenarioHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scenarioHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	scenarioHooks = NoopScenarioHooks{}
}
