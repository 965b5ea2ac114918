// Package grid implements the coordinate model for the board canvas.
//
// The canvas mixes two units: horizontal positions and widths are percentages
// of the container width, vertical positions and heights are absolute pixels.
// Pointer deltas arrive in pixels on both axes and are quantized to grid
// cells before they are applied: one cell horizontally is ColumnWidth pixels
// wide and maps to 100/Columns percent, one cell vertically is RowHeight
// pixels tall and maps to RowHeight pixels.
//
// All functions in this package are pure: identical inputs always yield
// identical outputs.
package grid

import "math"

// =============================================================================
// Geometry Primitives
// =============================================================================

// Point is a pointer position or pixel delta.
type Point struct {
	X float64
	Y float64
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an item rectangle in canvas units: X and W in percent of the
// container width, Y and H in pixels.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Snapped returns the rectangle with every field rounded to the nearest
// integer. Committed coordinates are always integers; only live gesture
// offsets may be fractional.
func (r Rect) Snapped() Rect {
	return Rect{
		X: math.Round(r.X),
		Y: math.Round(r.Y),
		W: math.Round(r.W),
		H: math.Round(r.H),
	}
}

// Cells is a pointer delta quantized to grid cells.
type Cells struct {
	Cols int
	Rows int
}

// =============================================================================
// Config
// =============================================================================

// Config describes the grid geometry of the canvas.
type Config struct {
	// Columns is the number of columns across the container width.
	// With the default of 100, one column equals one percent.
	Columns int

	// RowHeight is the vertical grid unit in pixels.
	RowHeight float64

	// ColumnWidth is the horizontal grid unit in pixels, i.e. the width of
	// one column at the current container width.
	ColumnWidth float64

	// Margin is the outer canvas margin in pixels. It is a presentation
	// hint for renderers and does not affect any conversion.
	Margin float64
}

// DefaultConfig returns the grid geometry used when no configuration is
// provided.
func DefaultConfig() Config {
	return Config{
		Columns:     100,
		RowHeight:   10,
		ColumnWidth: 10,
		Margin:      8,
	}
}

// PercentPerColumn returns the horizontal percent value of one column.
func (c Config) PercentPerColumn() float64 {
	if c.Columns <= 0 {
		return 1
	}
	return 100 / float64(c.Columns)
}

// DeltaToCells quantizes a raw pixel delta to grid cells:
// cols = round(dx/ColumnWidth), rows = round(dy/RowHeight).
func (c Config) DeltaToCells(d Point) Cells {
	cw := c.ColumnWidth
	if cw <= 0 {
		cw = 1
	}
	rh := c.RowHeight
	if rh <= 0 {
		rh = 1
	}
	return Cells{
		Cols: int(math.Round(d.X / cw)),
		Rows: int(math.Round(d.Y / rh)),
	}
}

// CellsToOffset converts a cell delta to canvas units: percent horizontally,
// pixels vertically.
func (c Config) CellsToOffset(cells Cells) Point {
	return Point{
		X: float64(cells.Cols) * c.PercentPerColumn(),
		Y: float64(cells.Rows) * c.RowHeight,
	}
}

// =============================================================================
// Resize Handles
// =============================================================================

// Handle identifies one of the eight resize handles on an item rectangle.
type Handle string

// The eight resize handles.
const (
	HandleNW Handle = "nw"
	HandleN  Handle = "n"
	HandleNE Handle = "ne"
	HandleW  Handle = "w"
	HandleE  Handle = "e"
	HandleSW Handle = "sw"
	HandleS  Handle = "s"
	HandleSE Handle = "se"
)

// Handles lists all resize handles in reading order.
var Handles = []Handle{HandleNW, HandleN, HandleNE, HandleW, HandleE, HandleSW, HandleS, HandleSE}

// Valid reports whether h is one of the eight known handles.
func (h Handle) Valid() bool {
	switch h {
	case HandleNW, HandleN, HandleNE, HandleW, HandleE, HandleSW, HandleS, HandleSE:
		return true
	}
	return false
}

// North reports whether the handle touches the top edge.
func (h Handle) North() bool { return h == HandleNW || h == HandleN || h == HandleNE }

// South reports whether the handle touches the bottom edge.
func (h Handle) South() bool { return h == HandleSW || h == HandleS || h == HandleSE }

// East reports whether the handle touches the right edge.
func (h Handle) East() bool { return h == HandleNE || h == HandleE || h == HandleSE }

// West reports whether the handle touches the left edge.
func (h Handle) West() bool { return h == HandleNW || h == HandleW || h == HandleSW }

// ApplyHandle returns the candidate rectangle produced by moving the given
// handle by a quantized cell delta, starting from the rectangle the gesture
// began on. Edges opposite the handle stay fixed:
//
//	e:  w += dx        w:  x += dx; w -= dx
//	s:  h += dy        n:  y += dy; h -= dy
//
// Corner handles combine both rules. The result is unclamped; callers apply
// minimum sizes and container bounds.
func ApplyHandle(h Handle, cells Cells, start Rect, cfg Config) Rect {
	off := cfg.CellsToOffset(cells)
	r := start
	if h.East() {
		r.W += off.X
	}
	if h.West() {
		r.X += off.X
		r.W -= off.X
	}
	if h.South() {
		r.H += off.Y
	}
	if h.North() {
		r.Y += off.Y
		r.H -= off.Y
	}
	return r
}

// =============================================================================
// Clamping
// =============================================================================

// Clamp limits v to the inclusive range [lo, hi].
// If hi < lo, lo wins: the lower bound is never violated.
func Clamp(v, lo, hi float64) float64 {
	if hi >= lo && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
