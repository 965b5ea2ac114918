package arrange

import (
	"reflect"
	"testing"

	"github.com/matzehuels/gridboard/pkg/board"
)

func TestPackReflowsAfterResize(t *testing.T) {
	// A full-width chart and a table below it: after the chart's resize
	// commits, the table lands exactly one vertical gap under the chart.
	items := []board.Item{
		{ID: "chart-1", Type: board.WidgetChart, X: 0, Y: 0, W: 100, H: 80},
		{ID: "table-1", Type: board.WidgetTable, X: 0, Y: 90, W: 50, H: 56},
	}

	got := Pack(items, DefaultOptions())

	if got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("chart = (%v, %v), want (0, 0)", got[0].X, got[0].Y)
	}
	if got[1].X != 0 || got[1].Y != 90 {
		t.Errorf("table = (%v, %v), want (0, 90)", got[1].X, got[1].Y)
	}
}

func TestPackWrapsWhenRowOverflows(t *testing.T) {
	items := []board.Item{
		{ID: "table-1", Type: board.WidgetTable, X: 0, Y: 0, W: 50, H: 56},
		{ID: "image-1", Type: board.WidgetImage, X: 55, Y: 0, W: 40, H: 70},
		{ID: "chart-1", Type: board.WidgetChart, X: 0, Y: 100, W: 100, H: 80},
	}

	got := Pack(items, DefaultOptions())

	// Row 0: table at 0, image at 52 (50 + 2 gap).
	if got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("table = (%v, %v), want (0, 0)", got[0].X, got[0].Y)
	}
	if got[1].X != 52 || got[1].Y != 0 {
		t.Errorf("image = (%v, %v), want (52, 0)", got[1].X, got[1].Y)
	}

	// Chart does not fit after the image; new row below the tallest item
	// in row 0 (70px) plus the 10px gap.
	if got[2].X != 0 || got[2].Y != 80 {
		t.Errorf("chart = (%v, %v), want (0, 80)", got[2].X, got[2].Y)
	}
}

func TestPackRowToleranceBucketing(t *testing.T) {
	// Within tolerance (15px apart) the two items share a bucket, so the
	// smaller x wins regardless of which item sits slightly higher.
	sameBucket := []board.Item{
		{ID: "image-1", Type: board.WidgetImage, X: 10, Y: 15, W: 30, H: 60},
		{ID: "table-1", Type: board.WidgetTable, X: 60, Y: 0, W: 30, H: 60},
	}
	got := Pack(sameBucket, DefaultOptions())
	if got[0].ID != "image-1" || got[1].ID != "table-1" {
		t.Errorf("bucket order = [%s %s], want image before table (x order)", got[0].ID, got[1].ID)
	}

	// Beyond tolerance (25px apart) the buckets are distinct, so the higher
	// item comes first even though its x is larger.
	distinctBuckets := []board.Item{
		{ID: "image-1", Type: board.WidgetImage, X: 10, Y: 25, W: 30, H: 60},
		{ID: "table-1", Type: board.WidgetTable, X: 60, Y: 0, W: 30, H: 60},
	}
	got = Pack(distinctBuckets, DefaultOptions())
	if got[0].ID != "table-1" || got[1].ID != "image-1" {
		t.Errorf("bucket order = [%s %s], want table before image (y order)", got[0].ID, got[1].ID)
	}
}

func TestPackIsFixedPoint(t *testing.T) {
	items := []board.Item{
		{ID: "metric-1", Type: board.WidgetMetric, X: 3, Y: 4, W: 24, H: 60},
		{ID: "insight-1", Type: board.WidgetInsight, X: 30, Y: 0, W: 70, H: 56},
		{ID: "chart-1", Type: board.WidgetChart, X: 0, Y: 120, W: 100, H: 80},
		{ID: "table-1", Type: board.WidgetTable, X: 0, Y: 230, W: 49, H: 56},
		{ID: "image-1", Type: board.WidgetImage, X: 51, Y: 236, W: 49, H: 60},
	}

	once := Pack(items, DefaultOptions())
	twice := Pack(once, DefaultOptions())

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed positions:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestPackDeterminism(t *testing.T) {
	items := []board.Item{
		{ID: "table-1", Type: board.WidgetTable, X: 40, Y: 5, W: 30, H: 56},
		{ID: "image-1", Type: board.WidgetImage, X: 0, Y: 0, W: 30, H: 60},
		{ID: "chart-1", Type: board.WidgetChart, X: 0, Y: 80, W: 100, H: 80},
	}

	a := Pack(items, DefaultOptions())
	b := Pack(items, DefaultOptions())
	if !reflect.DeepEqual(a, b) {
		t.Error("Pack should be deterministic for identical input")
	}
}

func TestPackNoOverlapWithinRows(t *testing.T) {
	items := []board.Item{
		{ID: "metric-1", Type: board.WidgetMetric, X: 10, Y: 2, W: 24, H: 60},
		{ID: "table-1", Type: board.WidgetTable, X: 12, Y: 6, W: 49, H: 56},
		{ID: "image-1", Type: board.WidgetImage, X: 14, Y: 1, W: 49, H: 60},
		{ID: "insight-1", Type: board.WidgetInsight, X: 0, Y: 3, W: 74, H: 56},
	}

	got := Pack(items, DefaultOptions())

	for _, row := range Rows(got) {
		end := -1.0
		for _, it := range row {
			if it.X < end {
				t.Errorf("%s at x=%v overlaps previous item ending at %v", it.ID, it.X, end)
			}
			end = it.X + it.W
			if end > 100 {
				t.Errorf("%s ends at %v, beyond the container", it.ID, end)
			}
		}
	}
}

func TestPackEmptyAndSingle(t *testing.T) {
	if got := Pack(nil, DefaultOptions()); len(got) != 0 {
		t.Errorf("Pack(nil) = %v, want empty", got)
	}

	single := []board.Item{{ID: "chart-1", Type: board.WidgetChart, X: 30, Y: 500, W: 100, H: 80}}
	got := Pack(single, DefaultOptions())
	if got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("single item = (%v, %v), want repacked to origin", got[0].X, got[0].Y)
	}
}

func TestPackDoesNotMutateInput(t *testing.T) {
	items := []board.Item{
		{ID: "chart-1", Type: board.WidgetChart, X: 5, Y: 50, W: 100, H: 80},
	}
	Pack(items, DefaultOptions())
	if items[0].X != 5 || items[0].Y != 50 {
		t.Error("Pack must not mutate its input")
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	// Partial overrides keep the remaining defaults.
	opts := Options{HGap: 5}.withDefaults()
	if opts.HGap != 5 {
		t.Errorf("HGap = %v, want override 5", opts.HGap)
	}
	if opts.RowTolerance != DefaultRowTolerance || opts.VGap != DefaultVGap {
		t.Errorf("defaults not applied: %+v", opts)
	}
}
