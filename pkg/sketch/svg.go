// Package sketch renders a board as an SVG wireframe.
//
// Horizontal item coordinates are percentages of the container width and
// scale with the chosen frame width; vertical coordinates are pixels and
// map through unchanged.
package sketch

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/gridboard/pkg/board"
)

const (
	defaultFrameWidth = 1000.0
	framePadding      = 16.0
	labelOffset       = 18.0
	minFrameHeight    = 120.0
)

var typeFills = map[board.WidgetType]string{
	board.WidgetMetric:       "#dbeafe",
	board.WidgetInsight:      "#fef3c7",
	board.WidgetChart:        "#dcfce7",
	board.WidgetTable:        "#fae8ff",
	board.WidgetImage:        "#fee2e2",
	board.WidgetFileDownload: "#e0e7ff",
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	frameWidth float64
	showIDs    bool
	title      string
}

func WithFrameWidth(w float64) SVGOption {
	return func(r *svgRenderer) {
		if w > 0 {
			r.frameWidth = w
		}
	}
}
func WithIDs() SVGOption               { return func(r *svgRenderer) { r.showIDs = true } }
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG draws every item as a labeled rectangle at its board position.
func RenderSVG(items []board.Item, opts ...SVGOption) []byte {
	r := svgRenderer{frameWidth: defaultFrameWidth}
	for _, opt := range opts {
		opt(&r)
	}

	blocks := buildBlocks(items, r.frameWidth)
	slices.SortFunc(blocks, func(a, b block) int {
		return cmp.Compare(a.id, b.id)
	})

	totalHeight := frameHeight(items)
	titleHeight := 0.0
	if r.title != "" {
		titleHeight = 32.0
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.frameWidth+2*framePadding, totalHeight+titleHeight+2*framePadding,
		r.frameWidth+2*framePadding, totalHeight+titleHeight+2*framePadding)

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="100%%" height="100%%" fill="#f8fafc"/>`+"\n")
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="18" font-weight="bold" fill="#0f172a">%s</text>`+"\n",
			framePadding, framePadding+titleHeight-12, escapeText(r.title))
	}

	fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)">`+"\n", framePadding, framePadding+titleHeight)
	for _, b := range blocks {
		renderBlock(&buf, b, r.showIDs)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type block struct {
	id    string
	label string
	fill  string
	x, y  float64
	w, h  float64
}

func buildBlocks(items []board.Item, frameWidth float64) []block {
	scale := frameWidth / 100
	blocks := make([]block, 0, len(items))
	for _, it := range items {
		fill, ok := typeFills[it.Type]
		if !ok {
			fill = "#e2e8f0"
		}
		blocks = append(blocks, block{
			id:    it.ID,
			label: string(it.Type),
			fill:  fill,
			x:     it.X * scale,
			y:     it.Y,
			w:     it.W * scale,
			h:     it.H,
		})
	}
	return blocks
}

func renderBlock(buf *bytes.Buffer, b block, showIDs bool) {
	fmt.Fprintf(buf, `    <rect id="item-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="#475569" stroke-width="1.5"/>`+"\n",
		escapeText(b.id), b.x, b.y, b.w, b.h, b.fill)

	label := b.label
	if showIDs {
		label = b.id
	}
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="13" fill="#334155">%s</text>`+"\n",
		b.x+8, b.y+labelOffset, escapeText(label))
}

func frameHeight(items []board.Item) float64 {
	h := minFrameHeight
	for _, it := range items {
		if bottom := it.Y + it.H; bottom > h {
			h = bottom
		}
	}
	return h
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
