package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/gesture"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// Canvas geometry. One terminal row represents one grid row of pixels; the
// horizontal axis is scaled so the full terminal width spans 100 percent.
const (
	headerRows = 2 // title + key help
	footerRows = 2 // status bar + message line
	minCanvasW = 20
	minCanvasR = 6
)

// Widget type styles
var (
	canvasTypeColors = map[board.WidgetType]lipgloss.Color{
		board.WidgetMetric:       colorCyan,
		board.WidgetInsight:      colorYellow,
		board.WidgetChart:        colorGreen,
		board.WidgetTable:        colorPurple,
		board.WidgetImage:        colorOrange,
		board.WidgetFileDownload: colorBlue,
	}

	canvasSelectedStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	canvasTargetStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	canvasEmptyStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// addKeys maps number keys to widget types for quick insertion.
var addKeys = map[string]board.WidgetType{
	"1": board.WidgetMetric,
	"2": board.WidgetInsight,
	"3": board.WidgetChart,
	"4": board.WidgetTable,
	"5": board.WidgetImage,
	"6": board.WidgetFileDownload,
}

// CanvasModel is the bubbletea model for the interactive board editor.
type CanvasModel struct {
	store       *board.Store
	controller  *gesture.Controller
	gridCfg     grid.Config
	arrangeOpts arrange.Options
	presence    board.Presence

	width  int
	height int

	boardID string
	dirty   bool
	message string
	saved   bool

	// onSave persists the current items and reports an error message, if any.
	onSave func(items []board.Item) error
}

// NewCanvasModel creates the editor model for a loaded board.
func NewCanvasModel(boardID string, items []board.Item, gridCfg grid.Config, arrangeOpts arrange.Options, presence board.Presence, onSave func([]board.Item) error) *CanvasModel {
	store := board.NewStore(items)
	store.SetEditMode(true)

	m := &CanvasModel{
		store:       store,
		gridCfg:     gridCfg,
		arrangeOpts: arrangeOpts,
		presence:    presence,
		boardID:     boardID,
		width:       80,
		height:      24,
		onSave:      onSave,
	}
	m.controller = gesture.NewController(store, gridCfg,
		gesture.WithArrangeOptions(arrangeOpts),
		gesture.WithCommitFunc(func([]board.Item) { m.dirty = true }),
	)
	return m
}

func (m *CanvasModel) Init() tea.Cmd {
	return nil
}

func (m *CanvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m *CanvasModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if t, ok := addKeys[key]; ok {
		if !m.store.EditMode() {
			m.message = "board is locked, press e to edit"
			return m, nil
		}
		if _, added := m.store.AddItem(t); added {
			m.dirty = true
			m.message = fmt.Sprintf("added %s", t)
		} else {
			m.message = fmt.Sprintf("board already has a %s", t)
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "e":
		m.store.SetEditMode(!m.store.EditMode())

	case "tab":
		m.selectNext()

	case "d", "x":
		if !m.store.EditMode() {
			m.message = "board is locked, press e to edit"
			break
		}
		if id := m.store.Selected(); id != "" {
			m.store.RemoveItem(id)
			m.dirty = true
			m.message = "removed " + id
		}

	case "r":
		if !m.store.EditMode() {
			m.message = "board is locked, press e to edit"
			break
		}
		m.store.ReplaceAll(arrange.Pack(m.store.Items(), m.arrangeOpts))
		m.dirty = true
		m.message = "arranged"

	case "s":
		if err := m.onSave(m.store.Items()); err != nil {
			m.message = "save failed: " + err.Error()
		} else {
			m.dirty = false
			m.saved = true
			m.message = "saved"
		}
	}
	return m, nil
}

func (m *CanvasModel) updateMouse(msg tea.MouseMsg) {
	p, inside := m.pointAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		// Display mode is locked; the mouse only works in edit mode.
		if msg.Button != tea.MouseButtonLeft || !inside || !m.store.EditMode() {
			return
		}
		id, handle, ok := m.hitTest(p)
		if !ok {
			m.store.Select("")
			return
		}
		if handle != "" {
			m.controller.StartResize(id, handle, p)
		} else {
			m.controller.StartDrag(id, p)
		}

	case tea.MouseActionMotion:
		m.controller.Move(p)

	case tea.MouseActionRelease:
		if m.controller.Active() {
			m.controller.End()
		}
	}
}

// =============================================================================
// Coordinate Mapping
// =============================================================================

// canvasCols returns the terminal columns the canvas spans.
func (m *CanvasModel) canvasCols() int {
	if m.width < minCanvasW {
		return minCanvasW
	}
	return m.width
}

// canvasRows returns the terminal rows available for the canvas.
func (m *CanvasModel) canvasRows() int {
	rows := m.height - headerRows - footerRows
	if rows < minCanvasR {
		return minCanvasR
	}
	return rows
}

// pctPerCell returns the percent of container width one terminal cell covers.
func (m *CanvasModel) pctPerCell() float64 {
	return 100 / float64(m.canvasCols())
}

// pointAt converts a terminal position to container coordinates: x in
// container pixels derived from the percent axis, y in layout pixels.
func (m *CanvasModel) pointAt(x, y int) (grid.Point, bool) {
	row := y - headerRows
	inside := x >= 0 && x < m.canvasCols() && row >= 0 && row < m.canvasRows()

	xPct := float64(x) * m.pctPerCell()
	containerW := float64(m.gridCfg.Columns) * m.gridCfg.ColumnWidth
	return grid.Point{
		X: xPct / 100 * containerW,
		Y: float64(row) * m.gridCfg.RowHeight,
	}, inside
}

// hitTest finds the item under the pointer and, near its border, the resize
// handle. Items later in the store sit on top.
func (m *CanvasModel) hitTest(p grid.Point) (string, grid.Handle, bool) {
	containerW := float64(m.gridCfg.Columns) * m.gridCfg.ColumnWidth
	xPct := p.X / containerW * 100

	edgeX := m.pctPerCell()      // one cell horizontally
	edgeY := m.gridCfg.RowHeight // one row vertically

	items := m.store.Items()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if xPct < it.X || xPct > it.X+it.W || p.Y < it.Y || p.Y > it.Y+it.H {
			continue
		}

		var ns, ew string
		if p.Y-it.Y <= edgeY {
			ns = "n"
		} else if it.Y+it.H-p.Y <= edgeY {
			ns = "s"
		}
		if xPct-it.X <= edgeX {
			ew = "w"
		} else if it.X+it.W-xPct <= edgeX {
			ew = "e"
		}

		return it.ID, grid.Handle(ns + ew), true
	}
	return "", "", false
}

// =============================================================================
// Selection
// =============================================================================

func (m *CanvasModel) selectNext() {
	items := m.store.Items()
	if len(items) == 0 {
		return
	}
	current := m.store.Selected()
	next := 0
	for i, it := range items {
		if it.ID == current {
			next = (i + 1) % len(items)
			break
		}
	}
	m.store.Select(items[next].ID)
}

// =============================================================================
// View
// =============================================================================

// cell is one terminal cell of the composed canvas.
type cell struct {
	ch    rune
	style lipgloss.Style
	set   bool
}

func (m *CanvasModel) View() string {
	cols, rows := m.canvasCols(), m.canvasRows()

	buf := make([][]cell, rows)
	for i := range buf {
		buf[i] = make([]cell, cols)
	}

	views := m.store.Views(m.controller.State().ItemID)
	if !m.store.EditMode() {
		views = m.displayViews()
	}
	for _, v := range views {
		m.drawItem(buf, v)
	}

	var b strings.Builder
	m.writeHeader(&b)
	for _, row := range buf {
		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}
	m.writeFooter(&b)
	return b.String()
}

// displayViews builds the locked rendering: items are filtered by data
// presence and repacked into row flow, ignoring their stored positions.
func (m *CanvasModel) displayViews() []board.ItemView {
	flowed := arrange.Pack(board.VisibleItems(m.store.Items(), m.presence, false), m.arrangeOpts)
	out := make([]board.ItemView, len(flowed))
	for i, it := range flowed {
		out[i] = board.ItemView{
			ID:   it.ID,
			Type: it.Type,
			X:    it.X,
			Y:    it.Y,
			W:    it.W,
			H:    it.H,
		}
	}
	return out
}

// drawItem paints one widget box into the cell buffer.
func (m *CanvasModel) drawItem(buf [][]cell, v board.ItemView) {
	cols, rows := m.canvasCols(), m.canvasRows()
	pct := m.pctPerCell()

	left := int(math.Round(v.X / pct))
	right := int(math.Round((v.X + v.W) / pct))
	top := int(math.Round(v.Y / m.gridCfg.RowHeight))
	bottom := int(math.Round((v.Y + v.H) / m.gridCfg.RowHeight))

	left = clampInt(left, 0, cols-1)
	right = clampInt(right, left+1, cols)
	top = clampInt(top, 0, rows-1)
	bottom = clampInt(bottom, top+1, rows)

	style := lipgloss.NewStyle().Foreground(canvasTypeColors[v.Type])
	if v.IsGestureTarget {
		style = canvasTargetStyle
	} else if v.IsSelected {
		style = canvasSelectedStyle
	}

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			ch := ' '
			switch {
			case y == top && x == left:
				ch = '┌'
			case y == top && x == right-1:
				ch = '┐'
			case y == bottom-1 && x == left:
				ch = '└'
			case y == bottom-1 && x == right-1:
				ch = '┘'
			case y == top || y == bottom-1:
				ch = '─'
			case x == left || x == right-1:
				ch = '│'
			}
			buf[y][x] = cell{ch: ch, style: style, set: true}
		}
	}

	// Label inside the top border.
	label := string(v.Type)
	if v.IsSelected {
		label = "[" + label + "]"
	}
	for i, r := range label {
		x := left + 2 + i
		if x >= right-1 {
			break
		}
		buf[top][x] = cell{ch: r, style: style, set: true}
	}
}

func (m *CanvasModel) renderRow(row []cell) string {
	var b strings.Builder
	for _, c := range row {
		if !c.set {
			b.WriteString(canvasEmptyStyle.Render("·"))
			continue
		}
		b.WriteString(c.style.Render(string(c.ch)))
	}
	return b.String()
}

func (m *CanvasModel) writeHeader(b *strings.Builder) {
	b.WriteString(StyleTitle.Render("Board: " + m.boardID))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("drag: move  edges: resize  1-6 add  d delete  r arrange  e mode  s save  q quit"))
	b.WriteString("\n")
}

func (m *CanvasModel) writeFooter(b *strings.Builder) {
	mode := "display"
	if m.store.EditMode() {
		mode = "edit"
	}

	parts := []string{
		fmt.Sprintf("%d widgets", m.store.Len()),
		mode + " mode",
	}
	if st := m.controller.State(); st.Phase != gesture.PhaseIdle {
		parts = append(parts, fmt.Sprintf("%s %s", st.Phase, st.ItemID))
	} else if sel := m.store.Selected(); sel != "" {
		parts = append(parts, "selected "+sel)
	}

	b.WriteString(StyleDim.Render(strings.Join(parts, " · ")))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(StyleValue.Render(m.message))
	}
	b.WriteString("\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
