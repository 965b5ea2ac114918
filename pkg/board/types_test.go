package board

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridboard/pkg/grid"
)

func TestParseWidgetType(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		want  WidgetType
		valid bool
	}{
		{"metric", "metric", WidgetMetric, true},
		{"chart", "chart", WidgetChart, true},
		{"file download", "file_download", WidgetFileDownload, true},
		{"unknown tag", "sparkline", WidgetType("sparkline"), false},
		{"empty tag", "", WidgetType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWidgetType(tt.tag)
			if ok != tt.valid {
				t.Fatalf("ParseWidgetType(%q) valid = %v, want %v", tt.tag, ok, tt.valid)
			}
			if got != tt.want {
				t.Errorf("ParseWidgetType(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestMinHeight(t *testing.T) {
	tests := []struct {
		typ     WidgetType
		display float64
		edit    float64
	}{
		{WidgetMetric, 60, 72},
		{WidgetChart, 80, 96},
		{WidgetInsight, 56, 67.2},
		{WidgetTable, 56, 67.2},
		{WidgetImage, 60, 72},
		{WidgetFileDownload, 56, 67.2},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := MinHeight(tt.typ, false); got != tt.display {
				t.Errorf("MinHeight(%s, false) = %v, want %v", tt.typ, got, tt.display)
			}
			if got := MinHeight(tt.typ, true); got != tt.edit {
				t.Errorf("MinHeight(%s, true) = %v, want %v", tt.typ, got, tt.edit)
			}
		})
	}
}

func TestNewItemIDPrefix(t *testing.T) {
	for _, typ := range WidgetTypes {
		id := NewItemID(typ)
		got, ok := TypeFromID(id)
		if !ok {
			t.Fatalf("TypeFromID(%q) not recognized", id)
		}
		if got != typ {
			t.Errorf("TypeFromID(%q) = %v, want %v", id, got, typ)
		}
	}

	// Two ids for the same type must differ.
	if NewItemID(WidgetChart) == NewItemID(WidgetChart) {
		t.Error("NewItemID should not repeat")
	}
}

func TestTypeFromID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want WidgetType
		ok   bool
	}{
		{"catalogue id", "chart-default", WidgetChart, true},
		{"uuid suffix", "table-0f8fad5b-d9cb-469f-a165-70867728950e", WidgetTable, true},
		{"underscore type", "file_download-default", WidgetFileDownload, true},
		{"foreign type", "video-123", "video", false},
		{"no separator", "metric", WidgetMetric, true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TypeFromID(tt.id)
			if ok != tt.ok {
				t.Fatalf("TypeFromID(%q) ok = %v, want %v", tt.id, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("TypeFromID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestClampRect(t *testing.T) {
	tests := []struct {
		name string
		item Item
		in   grid.Rect
		edit bool
		want grid.Rect
	}{
		{
			name: "valid rect passes through",
			item: Item{Type: WidgetChart},
			in:   grid.Rect{X: 10, Y: 20, W: 50, H: 100},
			want: grid.Rect{X: 10, Y: 20, W: 50, H: 100},
		},
		{
			name: "width above container clamps to 100",
			item: Item{Type: WidgetChart},
			in:   grid.Rect{X: 0, Y: 0, W: 102, H: 80},
			want: grid.Rect{X: 0, Y: 0, W: 100, H: 80},
		},
		{
			name: "height below type minimum raises to minimum",
			item: Item{Type: WidgetChart},
			in:   grid.Rect{X: 0, Y: 0, W: 50, H: 10},
			want: grid.Rect{X: 0, Y: 0, W: 50, H: 80},
		},
		{
			name: "edit mode minimum is scaled",
			item: Item{Type: WidgetMetric},
			in:   grid.Rect{X: 0, Y: 0, W: 24, H: 10},
			edit: true,
			want: grid.Rect{X: 0, Y: 0, W: 24, H: 72},
		},
		{
			name: "instance bounds apply after type minimum",
			item: Item{Type: WidgetTable, MinW: 20, MaxW: 60, MinH: 70, MaxH: 90},
			in:   grid.Rect{X: 0, Y: 0, W: 80, H: 200},
			want: grid.Rect{X: 0, Y: 0, W: 60, H: 90},
		},
		{
			name: "instance minimum width wins over tiny candidate",
			item: Item{Type: WidgetTable, MinW: 20},
			in:   grid.Rect{X: 0, Y: 0, W: 3, H: 60},
			want: grid.Rect{X: 0, Y: 0, W: 20, H: 60},
		},
		{
			name: "rect pushed back inside container",
			item: Item{Type: WidgetImage},
			in:   grid.Rect{X: 80, Y: -30, W: 40, H: 60},
			want: grid.Rect{X: 60, Y: 0, W: 40, H: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.ClampRect(tt.in, tt.edit); got != tt.want {
				t.Errorf("ClampRect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampPosition(t *testing.T) {
	it := Item{Type: WidgetTable, W: 30}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 40, 100, 40, 100},
		{"right overflow clamps to 100-w", 110, 0, 70, 0},
		{"left overflow clamps to 0", -15, 0, 0, 0},
		{"above canvas clamps y", 10, -50, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := it.ClampPosition(tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ClampPosition(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDefaultCatalogue(t *testing.T) {
	for _, edit := range []bool{false, true} {
		items := DefaultCatalogue(edit)

		if len(items) != len(WidgetTypes) {
			t.Fatalf("catalogue has %d items, want %d", len(items), len(WidgetTypes))
		}

		seen := map[WidgetType]bool{}
		for _, it := range items {
			if seen[it.Type] {
				t.Errorf("duplicate type %s in catalogue", it.Type)
			}
			seen[it.Type] = true

			if it.X < 0 || it.X+it.W > 100 {
				t.Errorf("%s: x=%v w=%v outside container", it.ID, it.X, it.W)
			}
			if it.Y < 0 {
				t.Errorf("%s: y=%v negative", it.ID, it.Y)
			}
			if it.H < MinHeight(it.Type, edit) {
				t.Errorf("%s: h=%v below minimum %v", it.ID, it.H, MinHeight(it.Type, edit))
			}
			if typ, ok := TypeFromID(it.ID); !ok || typ != it.Type {
				t.Errorf("%s: id prefix does not round-trip type %s", it.ID, it.Type)
			}
			if !strings.HasSuffix(it.ID, "-default") {
				t.Errorf("%s: catalogue id should be deterministic", it.ID)
			}
		}
	}
}
