// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about gestures, auto-arrange passes, and storage operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the layout engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    observability.SetStorageHooks(&myStorageHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Gesture().OnGestureStart(ctx, "drag", itemID)
//	// ... pointer moves ...
//	observability.Gesture().OnGestureEnd(ctx, "drag", itemID, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from the drag/resize interaction state machine.
type GestureHooks interface {
	// OnGestureStart records the start of a gesture. Kind is "drag" or "resize".
	OnGestureStart(ctx context.Context, kind, itemID string)

	// OnGestureProgress records a clamped candidate position during a gesture.
	OnGestureProgress(ctx context.Context, kind, itemID string, x, y, w, h float64)

	// OnGestureEnd records a committed gesture with its total duration.
	OnGestureEnd(ctx context.Context, kind, itemID string, duration time.Duration)

	// OnGestureIgnored records an illegal start attempt while a gesture is active.
	OnGestureIgnored(ctx context.Context, kind, itemID string)
}

// =============================================================================
// Arrange Hooks
// =============================================================================

// ArrangeHooks receives events from auto-arrange passes.
type ArrangeHooks interface {
	// OnArrangeStart records the beginning of a packing pass.
	OnArrangeStart(ctx context.Context, itemCount int)

	// OnArrangeComplete records a finished packing pass.
	OnArrangeComplete(ctx context.Context, itemCount, rows int, duration time.Duration)
}

// =============================================================================
// Storage Hooks
// =============================================================================

// StorageHooks receives events from the persistence gateway.
type StorageHooks interface {
	// OnSave records a save attempt. Err is nil on success.
	OnSave(ctx context.Context, boardID string, itemCount int, duration time.Duration, err error)

	// OnLoad records a load attempt. Err is nil on success.
	OnLoad(ctx context.Context, boardID string, itemCount int, duration time.Duration, err error)

	// OnLoadFallback records a load that fell back to the default catalogue.
	OnLoadFallback(ctx context.Context, boardID string, reason string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(context.Context, string, string) {}
func (NoopGestureHooks) OnGestureProgress(context.Context, string, string, float64, float64, float64, float64) {
}
func (NoopGestureHooks) OnGestureEnd(context.Context, string, string, time.Duration) {}
func (NoopGestureHooks) OnGestureIgnored(context.Context, string, string)            {}

// NoopArrangeHooks is a no-op implementation of ArrangeHooks.
type NoopArrangeHooks struct{}

func (NoopArrangeHooks) OnArrangeStart(context.Context, int)                        {}
func (NoopArrangeHooks) OnArrangeComplete(context.Context, int, int, time.Duration) {}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnSave(context.Context, string, int, time.Duration, error) {}
func (NoopStorageHooks) OnLoad(context.Context, string, int, time.Duration, error) {}
func (NoopStorageHooks) OnLoadFallback(context.Context, string, string)            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gestureHooks GestureHooks = NoopGestureHooks{}
	arrangeHooks ArrangeHooks = NoopArrangeHooks{}
	storageHooks StorageHooks = NoopStorageHooks{}
	hooksMu      sync.RWMutex
)

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any interaction.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetArrangeHooks registers custom arrange hooks.
// This should be called once at application startup before any packing pass.
func SetArrangeHooks(h ArrangeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		arrangeHooks = h
	}
}

// SetStorageHooks registers custom storage hooks.
// This should be called once at application startup before any storage operations.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Arrange returns the registered arrange hooks.
func Arrange() ArrangeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return arrangeHooks
}

// Storage returns the registered storage hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gestureHooks = NoopGestureHooks{}
	arrangeHooks = NoopArrangeHooks{}
	storageHooks = NoopStorageHooks{}
}
