package gesture

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// Controller drives drag and resize gestures against a board store. It is
// the only writer of item coordinates while a gesture is active.
//
// Controller is not safe for concurrent use; it is designed for a
// single-threaded, event-driven caller.
type Controller struct {
	store       *board.Store
	cfg         grid.Config
	arrangeOpts arrange.Options
	binder      Binder
	onCommit    func(items []board.Item)
	ctx         context.Context

	state   State
	release func()
	started time.Time
}

// NewController creates a gesture controller for the given store and grid
// geometry.
func NewController(store *board.Store, cfg grid.Config, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		cfg:         cfg,
		arrangeOpts: arrange.DefaultOptions(),
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the interaction state.
func (c *Controller) State() State { return c.state }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.state.Phase != PhaseIdle }

// =============================================================================
// Drag
// =============================================================================

// StartDrag begins a move gesture for the item with the given id. It is a
// no-op when a gesture is already active or the id is unknown. Starting a
// drag selects the item.
func (c *Controller) StartDrag(id string, p grid.Point) {
	if c.state.Phase != PhaseIdle {
		observability.Gesture().OnGestureIgnored(c.ctx, "drag", id)
		return
	}
	it, ok := c.store.Get(id)
	if !ok {
		return
	}

	c.state = State{
		Phase:        PhaseDragging,
		ItemID:       id,
		PointerStart: p,
		StartRect:    it.Rect(),
		Live:         it.Rect(),
	}
	c.store.Select(id)
	c.bind()
	c.started = time.Now()
	observability.Gesture().OnGestureStart(c.ctx, "drag", id)
}

// =============================================================================
// Resize
// =============================================================================

// StartResize begins a resize gesture on one of the eight handles. It is a
// no-op when a gesture is already active, the id is unknown, or the handle
// is not valid.
func (c *Controller) StartResize(id string, h grid.Handle, p grid.Point) {
	if c.state.Phase != PhaseIdle {
		observability.Gesture().OnGestureIgnored(c.ctx, "resize", id)
		return
	}
	if !h.Valid() {
		return
	}
	it, ok := c.store.Get(id)
	if !ok {
		return
	}

	c.state = State{
		Phase:        PhaseResizing,
		ItemID:       id,
		Handle:       h,
		PointerStart: p,
		StartRect:    it.Rect(),
		Live:         it.Rect(),
	}
	c.store.Select(id)
	c.bind()
	c.started = time.Now()
	observability.Gesture().OnGestureStart(c.ctx, "resize", id)
}

// =============================================================================
// Move / End
// =============================================================================

// Move updates the live candidate rectangle from the current pointer
// position. It is a no-op while no gesture is active. The delta is computed
// against the pointer position recorded at gesture start, so duplicate
// events are harmless.
func (c *Controller) Move(p grid.Point) {
	if c.state.Phase == PhaseIdle {
		return
	}
	it, ok := c.store.Get(c.state.ItemID)
	if !ok {
		return
	}

	cells := c.cfg.DeltaToCells(p.Sub(c.state.PointerStart))

	switch c.state.Phase {
	case PhaseDragging:
		off := c.cfg.CellsToOffset(cells)
		x, y := it.ClampPosition(c.state.StartRect.X+off.X, c.state.StartRect.Y+off.Y)
		c.state.Live = grid.Rect{X: x, Y: y, W: c.state.StartRect.W, H: c.state.StartRect.H}

	case PhaseResizing:
		cand := grid.ApplyHandle(c.state.Handle, cells, c.state.StartRect, c.cfg)
		c.state.Live = it.ClampRect(cand, c.store.EditMode())
	}

	live := c.state.Live
	observability.Gesture().OnGestureProgress(c.ctx, c.state.Phase.kind(), c.state.ItemID,
		live.X, live.Y, live.W, live.H)
}

// End commits the last clamped candidate onto the item and returns to Idle.
// Viewport listeners are released unconditionally. A resize commit runs the
// auto-arrange pass over the whole board before persisting; a drag commit
// preserves free placement. It is a no-op while no gesture is active.
func (c *Controller) End() {
	if c.state.Phase == PhaseIdle {
		return
	}

	phase := c.state.Phase
	itemID := c.state.ItemID

	c.unbind()

	// Rounding the live rectangle can land just under the type minimum
	// (67.2 rounds to 67), so resize commits re-clamp and ceil the height
	// after snapping.
	committed := c.state.Live.Snapped()
	if it, ok := c.store.Get(itemID); ok && phase == PhaseResizing {
		committed = it.ClampRect(committed, c.store.EditMode())
		committed.H = math.Ceil(committed.H)
	}
	c.store.SetRect(itemID, committed.X, committed.Y, committed.W, committed.H)

	if phase == PhaseResizing {
		c.autoArrange()
	}

	c.state = State{}
	observability.Gesture().OnGestureEnd(c.ctx, phase.kind(), itemID, time.Since(c.started))

	if c.onCommit != nil {
		c.onCommit(c.store.Items())
	}
}

// autoArrange re-packs the whole board after a resize commit.
func (c *Controller) autoArrange() {
	items := c.store.Items()
	observability.Arrange().OnArrangeStart(c.ctx, len(items))

	start := time.Now()
	packed := arrange.Pack(items, c.arrangeOpts)
	c.store.ReplaceAll(packed)

	observability.Arrange().OnArrangeComplete(c.ctx, len(packed), len(arrange.Rows(packed)), time.Since(start))
}

func (c *Controller) bind() {
	if c.binder != nil {
		c.release = c.binder.Bind()
	}
}

func (c *Controller) unbind() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}
