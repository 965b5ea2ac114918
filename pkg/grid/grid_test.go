package grid

import "testing"

func TestDeltaToCells(t *testing.T) {
	cfg := Config{Columns: 100, RowHeight: 10, ColumnWidth: 10}

	tests := []struct {
		name  string
		delta Point
		want  Cells
	}{
		{
			name:  "zero delta",
			delta: Point{},
			want:  Cells{},
		},
		{
			name:  "exact cells",
			delta: Point{X: 20, Y: 30},
			want:  Cells{Cols: 2, Rows: 3},
		},
		{
			name:  "rounds to nearest",
			delta: Point{X: 14, Y: 16},
			want:  Cells{Cols: 1, Rows: 2},
		},
		{
			name:  "negative delta",
			delta: Point{X: -25, Y: -5},
			want:  Cells{Cols: -3, Rows: -1},
		},
		{
			name:  "sub-cell movement snaps to zero",
			delta: Point{X: 4, Y: 4},
			want:  Cells{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.DeltaToCells(tt.delta); got != tt.want {
				t.Errorf("DeltaToCells(%v) = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestDeltaToCellsDegenerateConfig(t *testing.T) {
	// Zero cell sizes must not divide by zero; they fall back to 1px cells.
	cfg := Config{}
	got := cfg.DeltaToCells(Point{X: 3, Y: -2})
	want := Cells{Cols: 3, Rows: -2}
	if got != want {
		t.Errorf("DeltaToCells = %v, want %v", got, want)
	}
}

func TestCellsToOffset(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		cells Cells
		want  Point
	}{
		{
			name:  "100 columns makes one cell one percent",
			cfg:   Config{Columns: 100, RowHeight: 10},
			cells: Cells{Cols: 2, Rows: 3},
			want:  Point{X: 2, Y: 30},
		},
		{
			name:  "coarse columns",
			cfg:   Config{Columns: 20, RowHeight: 8},
			cells: Cells{Cols: 1, Rows: 1},
			want:  Point{X: 5, Y: 8},
		},
		{
			name:  "negative cells",
			cfg:   Config{Columns: 100, RowHeight: 10},
			cells: Cells{Cols: -4, Rows: -1},
			want:  Point{X: -4, Y: -10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.CellsToOffset(tt.cells); got != tt.want {
				t.Errorf("CellsToOffset(%v) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}

func TestHandleEdges(t *testing.T) {
	tests := []struct {
		handle                   Handle
		north, south, east, west bool
	}{
		{HandleNW, true, false, false, true},
		{HandleN, true, false, false, false},
		{HandleNE, true, false, true, false},
		{HandleW, false, false, false, true},
		{HandleE, false, false, true, false},
		{HandleSW, false, true, false, true},
		{HandleS, false, true, false, false},
		{HandleSE, false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.handle), func(t *testing.T) {
			if !tt.handle.Valid() {
				t.Fatalf("%s should be valid", tt.handle)
			}
			if tt.handle.North() != tt.north || tt.handle.South() != tt.south ||
				tt.handle.East() != tt.east || tt.handle.West() != tt.west {
				t.Errorf("%s edges = n:%v s:%v e:%v w:%v, want n:%v s:%v e:%v w:%v",
					tt.handle,
					tt.handle.North(), tt.handle.South(), tt.handle.East(), tt.handle.West(),
					tt.north, tt.south, tt.east, tt.west)
			}
		})
	}

	if Handle("center").Valid() {
		t.Error("unknown handle should not be valid")
	}
}

func TestApplyHandle(t *testing.T) {
	cfg := Config{Columns: 100, RowHeight: 10, ColumnWidth: 10}
	start := Rect{X: 20, Y: 100, W: 40, H: 80}

	tests := []struct {
		name   string
		handle Handle
		cells  Cells
		want   Rect
	}{
		{
			name:   "east grows width",
			handle: HandleE,
			cells:  Cells{Cols: 5},
			want:   Rect{X: 20, Y: 100, W: 45, H: 80},
		},
		{
			name:   "west moves x and shrinks width",
			handle: HandleW,
			cells:  Cells{Cols: 5},
			want:   Rect{X: 25, Y: 100, W: 35, H: 80},
		},
		{
			name:   "south grows height",
			handle: HandleS,
			cells:  Cells{Rows: 2},
			want:   Rect{X: 20, Y: 100, W: 40, H: 100},
		},
		{
			name:   "north moves y and shrinks height",
			handle: HandleN,
			cells:  Cells{Rows: 2},
			want:   Rect{X: 20, Y: 120, W: 40, H: 60},
		},
		{
			name:   "southeast corner combines both axes",
			handle: HandleSE,
			cells:  Cells{Cols: -3, Rows: 1},
			want:   Rect{X: 20, Y: 100, W: 37, H: 90},
		},
		{
			name:   "northwest corner combines both axes",
			handle: HandleNW,
			cells:  Cells{Cols: -2, Rows: -3},
			want:   Rect{X: 18, Y: 70, W: 42, H: 110},
		},
		{
			name:   "zero delta is identity",
			handle: HandleSE,
			cells:  Cells{},
			want:   start,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyHandle(tt.handle, tt.cells, start, cfg); got != tt.want {
				t.Errorf("ApplyHandle(%s, %v) = %v, want %v", tt.handle, tt.cells, got, tt.want)
			}
		})
	}
}

// A +20px drag on the se handle at 10px column width quantizes to +2 cells
// and produces an unclamped width of 102 on a full-width item.
func TestApplyHandleOvershootsBeforeClamping(t *testing.T) {
	cfg := Config{Columns: 100, RowHeight: 10, ColumnWidth: 10}
	start := Rect{X: 0, Y: 0, W: 100, H: 80}

	cells := cfg.DeltaToCells(Point{X: 20, Y: 0})
	if cells != (Cells{Cols: 2}) {
		t.Fatalf("DeltaToCells = %v, want {Cols:2}", cells)
	}

	got := ApplyHandle(HandleSE, cells, start, cfg)
	if got.W != 102 {
		t.Errorf("W = %v, want 102 before clamping", got.W)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside range", 5, 0, 10, 5},
		{"below lower bound", -3, 0, 10, 0},
		{"above upper bound", 15, 0, 10, 10},
		{"inverted bounds prefer lower", 5, 10, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestRectSnapped(t *testing.T) {
	r := Rect{X: 19.6, Y: 100.4, W: 40.5, H: 79.5}
	got := r.Snapped()
	want := Rect{X: 20, Y: 100, W: 41, H: 80}
	if got != want {
		t.Errorf("Snapped() = %v, want %v", got, want)
	}
}
