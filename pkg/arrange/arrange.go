// Package arrange implements the deterministic row-packing pass that removes
// overlaps and gaps after a resize commits.
//
// Packing is a pure function over the item list: items are grouped into rows
// by vertical proximity, ordered left to right, and re-flowed against the
// container width. Given the same input it always produces the same output,
// and running it on its own output changes nothing.
package arrange

import (
	"sort"

	"github.com/matzehuels/gridboard/pkg/board"
)

// Defaults for the packing pass. RowTolerance is carried over from the
// original canvas behaviour: items whose Y coordinates differ by less than
// 20px are treated as one row.
const (
	DefaultRowTolerance = 20.0
	DefaultHGap         = 2.0
	DefaultVGap         = 10.0
)

// Options tunes the packing pass. The zero value is replaced by defaults
// field by field, so partial overrides are fine.
type Options struct {
	// RowTolerance is the vertical distance in pixels within which two
	// items are considered part of the same row.
	RowTolerance float64

	// HGap is the horizontal gap between items in a row, in percent.
	HGap float64

	// VGap is the vertical gap between rows, in pixels.
	VGap float64
}

// DefaultOptions returns the packing defaults.
func DefaultOptions() Options {
	return Options{
		RowTolerance: DefaultRowTolerance,
		HGap:         DefaultHGap,
		VGap:         DefaultVGap,
	}
}

func (o Options) withDefaults() Options {
	if o.RowTolerance <= 0 {
		o.RowTolerance = DefaultRowTolerance
	}
	if o.HGap <= 0 {
		o.HGap = DefaultHGap
	}
	if o.VGap <= 0 {
		o.VGap = DefaultVGap
	}
	return o
}

// Pack re-flows items into gap-free rows. Items are ordered by Y with
// row-tolerance bucketing, then by X within a bucket; each item is then
// assigned a packed position left to right, wrapping to a new row when the
// container width would be exceeded. Widths and heights are never changed.
//
// The input slice is not modified.
func Pack(items []board.Item, opts Options) []board.Item {
	opts = opts.withDefaults()

	out := make([]board.Item, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out
	}

	sortRowMajor(out, opts.RowTolerance)

	rowX, rowY, rowMax := 0.0, 0.0, 0.0
	for i := range out {
		if rowX > 0 && rowX+out[i].W > 100 {
			rowY += rowMax + opts.VGap
			rowX = 0
			rowMax = 0
		}
		out[i].X = rowX
		out[i].Y = rowY
		rowX += out[i].W + opts.HGap
		if out[i].H > rowMax {
			rowMax = out[i].H
		}
	}
	return out
}

// Rows groups packed items by equal Y. Useful for reporting and for the
// display-mode flow renderer.
func Rows(items []board.Item) [][]board.Item {
	if len(items) == 0 {
		return nil
	}
	sorted := make([]board.Item, len(items))
	copy(sorted, items)
	sortRowMajor(sorted, 0)

	var rows [][]board.Item
	for _, it := range sorted {
		if n := len(rows); n > 0 && rows[n-1][0].Y == it.Y {
			rows[n-1] = append(rows[n-1], it)
			continue
		}
		rows = append(rows, []board.Item{it})
	}
	return rows
}

// sortRowMajor orders items by Y, bucketing Y values within tolerance into
// one row, then by X ascending inside each bucket. The sort is stable so
// ties keep document order.
func sortRowMajor(items []board.Item, tolerance float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Y < items[j].Y
	})

	// Assign bucket anchors: a new bucket starts when an item's Y is more
	// than tolerance below the bucket's first item.
	type keyed struct {
		bucket float64
		item   board.Item
	}
	ks := make([]keyed, len(items))
	anchor := items[0].Y
	for i, it := range items {
		if it.Y-anchor > tolerance {
			anchor = it.Y
		}
		ks[i] = keyed{bucket: anchor, item: it}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].bucket != ks[j].bucket {
			return ks[i].bucket < ks[j].bucket
		}
		return ks[i].item.X < ks[j].item.X
	})

	for i := range ks {
		items[i] = ks[i].item
	}
}
