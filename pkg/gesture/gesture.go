// Package gesture implements the drag/resize interaction state machine.
//
// The controller owns the process-wide interaction state, which is exactly
// one of Idle, Dragging, or Resizing. A gesture runs from pointer-down to
// pointer-up; starting a second gesture while one is active is silently
// ignored. All methods are synchronous and return immediately.
//
// Pointer deltas are always computed against the pointer position recorded
// at gesture start, never incrementally, so reprocessing a duplicate pointer
// event can never double-apply a delta.
//
// # Listener Lifetime
//
// Viewport-wide pointer listeners exist only while a gesture is active: they
// are bound on StartDrag/StartResize and released unconditionally on End,
// including when the pointer has long left the canvas. The release handle is
// owned by the interaction state, not by any rendering component.
//
// # Usage
//
//	ctrl := gesture.NewController(store, grid.DefaultConfig(),
//	    gesture.WithCommitFunc(saveBoard))
//
//	ctrl.StartDrag("chart-1", grid.Point{X: 120, Y: 80})
//	ctrl.Move(grid.Point{X: 140, Y: 80})
//	ctrl.End() // commits, then persists via the commit func
package gesture

import (
	"context"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// =============================================================================
// Interaction State
// =============================================================================

// Phase is the current interaction mode.
type Phase int

// The three interaction phases.
const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseResizing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// kind returns the hook event kind for the phase.
func (p Phase) kind() string {
	if p == PhaseResizing {
		return "resize"
	}
	return "drag"
}

// State is a read-only snapshot of the interaction state. While a gesture is
// active, Live holds the last clamped candidate rectangle; the item itself
// is not updated until the gesture ends.
type State struct {
	Phase        Phase
	ItemID       string
	Handle       grid.Handle
	PointerStart grid.Point
	StartRect    grid.Rect
	Live         grid.Rect
}

// =============================================================================
// Collaborators
// =============================================================================

// Binder attaches viewport-wide pointer listeners for the duration of a
// gesture. Bind is called on gesture start and must return a release
// function; the controller calls it exactly once when the gesture ends.
type Binder interface {
	Bind() (release func())
}

// BinderFunc adapts a function to the Binder interface.
type BinderFunc func() func()

// Bind implements Binder.
func (f BinderFunc) Bind() func() { return f() }

// =============================================================================
// Options
// =============================================================================

// Option configures a Controller.
type Option func(*Controller)

// WithBinder sets the viewport listener binder.
func WithBinder(b Binder) Option {
	return func(c *Controller) { c.binder = b }
}

// WithArrangeOptions overrides the packing options used after resize commits.
func WithArrangeOptions(opts arrange.Options) Option {
	return func(c *Controller) { c.arrangeOpts = opts }
}

// WithCommitFunc sets the callback invoked with the full item list after a
// gesture commits. This is where persistence hangs off; failures there must
// not roll back the in-memory board.
func WithCommitFunc(fn func(items []board.Item)) Option {
	return func(c *Controller) { c.onCommit = fn }
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
