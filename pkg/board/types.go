package board

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// =============================================================================
// Widget Types - Single Source of Truth
// =============================================================================

// WidgetType identifies one of the fixed widget kinds that can be placed on
// a board.
type WidgetType string

// The fixed widget catalogue.
const (
	WidgetMetric       WidgetType = "metric"
	WidgetInsight      WidgetType = "insight"
	WidgetChart        WidgetType = "chart"
	WidgetTable        WidgetType = "table"
	WidgetImage        WidgetType = "image"
	WidgetFileDownload WidgetType = "file_download"
)

// WidgetTypes lists all widget types in catalogue order.
var WidgetTypes = []WidgetType{
	WidgetMetric,
	WidgetInsight,
	WidgetChart,
	WidgetTable,
	WidgetImage,
	WidgetFileDownload,
}

// Valid reports whether t is a known widget type.
func (t WidgetType) Valid() bool {
	switch t {
	case WidgetMetric, WidgetInsight, WidgetChart, WidgetTable, WidgetImage, WidgetFileDownload:
		return true
	}
	return false
}

// ParseWidgetType converts a string tag to a WidgetType.
// Returns false for unknown or foreign tags.
func ParseWidgetType(s string) (WidgetType, bool) {
	t := WidgetType(s)
	return t, t.Valid()
}

// EditHeightScale is the factor applied to minimum heights in edit mode,
// where items carry extra chrome (handles, title bars).
const EditHeightScale = 1.2

// minHeights maps each widget type to its minimum height in pixels.
var minHeights = map[WidgetType]float64{
	WidgetMetric:       60,
	WidgetChart:        80,
	WidgetInsight:      56,
	WidgetTable:        56,
	WidgetImage:        60,
	WidgetFileDownload: 56,
}

// defaultWidths maps each widget type to its default width in percent.
var defaultWidths = map[WidgetType]float64{
	WidgetMetric:       24,
	WidgetInsight:      74,
	WidgetChart:        100,
	WidgetTable:        49,
	WidgetImage:        49,
	WidgetFileDownload: 100,
}

// MinHeight returns the minimum height in pixels for a widget type.
// In edit mode the base minimum is scaled by EditHeightScale.
func MinHeight(t WidgetType, edit bool) float64 {
	h, ok := minHeights[t]
	if !ok {
		h = 56
	}
	if edit {
		h *= EditHeightScale
	}
	return h
}

// DefaultWidth returns the default width in percent for a widget type.
func DefaultWidth(t WidgetType) float64 {
	if w, ok := defaultWidths[t]; ok {
		return w
	}
	return 50
}

// =============================================================================
// Item - One Placed Widget
// =============================================================================

// Item is one placed widget on the board. X and W are percentages of the
// container width, Y and H are pixels.
type Item struct {
	// ID is a stable identifier. Its prefix before the first "-" is the
	// widget type tag, which persistence relies on when reconstructing
	// items from flat records.
	ID string

	// Type determines the minimum height and the default width.
	Type WidgetType

	X float64
	Y float64
	W float64
	H float64

	// Optional per-instance size constraints in the same units as W and H.
	// Zero means unconstrained.
	MinW float64
	MinH float64
	MaxW float64
	MaxH float64

	// Data is the widget payload owned by the data collaborator. The
	// engine never inspects it beyond a presence test.
	Data Payload
}

// NewItemID generates an identifier for a new item of the given type.
// The type tag is recoverable as the prefix before the first "-".
func NewItemID(t WidgetType) string {
	return fmt.Sprintf("%s-%s", t, uuid.NewString())
}

// TypeFromID derives the widget type from an item identifier's prefix.
// Returns false when the prefix is not a known widget type.
func TypeFromID(id string) (WidgetType, bool) {
	tag, _, _ := strings.Cut(id, "-")
	return ParseWidgetType(tag)
}

// Rect returns the item's rectangle in canvas units.
func (it Item) Rect() grid.Rect {
	return grid.Rect{X: it.X, Y: it.Y, W: it.W, H: it.H}
}

// SetRect replaces the item's rectangle.
func (it *Item) SetRect(r grid.Rect) {
	it.X, it.Y, it.W, it.H = r.X, r.Y, r.W, r.H
}

// ClampRect constrains a candidate rectangle to the item's invariants:
// width in [1, 100], height at least the type minimum, per-instance min/max
// bounds, and the rectangle fully inside the container.
func (it Item) ClampRect(r grid.Rect, edit bool) grid.Rect {
	minW := math.Max(1, it.MinW)
	maxW := 100.0
	if it.MaxW > 0 {
		maxW = math.Min(maxW, it.MaxW)
	}
	r.W = grid.Clamp(r.W, minW, maxW)

	minH := math.Max(1, MinHeight(it.Type, edit))
	if it.MinH > minH {
		minH = it.MinH
	}
	if it.MaxH > 0 {
		r.H = grid.Clamp(r.H, minH, math.Max(minH, it.MaxH))
	} else if r.H < minH {
		r.H = minH
	}

	r.X = grid.Clamp(r.X, 0, 100-r.W)
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// ClampPosition constrains a candidate position so the item stays inside the
// container: x in [0, 100-w], y >= 0. Width and height are untouched.
func (it Item) ClampPosition(x, y float64) (float64, float64) {
	return grid.Clamp(x, 0, 100-it.W), math.Max(0, y)
}

// =============================================================================
// Payloads - Tagged Widget Data
// =============================================================================

// Payload is the opaque widget data carried by an item. Each widget type has
// its own payload shape; the engine only ever tests for presence.
type Payload interface {
	widgetPayload()
}

// MetricData is the payload of a key-metric widget.
type MetricData struct {
	Label string
	Value string
	Delta string
}

// InsightData is the payload of an insight (markdown text) widget.
type InsightData struct {
	Markdown string
}

// ChartData is the payload of a chart widget. Spec is an opaque chart
// specification consumed by the chart collaborator.
type ChartData struct {
	Spec string
}

// TableData is the payload of a table widget.
type TableData struct {
	Columns []string
	Rows    [][]string
}

// ImageData is the payload of an image widget.
type ImageData struct {
	URL string
	Alt string
}

// FileDownloadData is the payload of a file-download list widget.
type FileDownloadData struct {
	Files []string
}

func (MetricData) widgetPayload()       {}
func (InsightData) widgetPayload()      {}
func (ChartData) widgetPayload()        {}
func (TableData) widgetPayload()        {}
func (ImageData) widgetPayload()        {}
func (FileDownloadData) widgetPayload() {}
