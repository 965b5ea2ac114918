package sketch

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridboard/pkg/board"
)

func TestRenderSVG(t *testing.T) {
	items := []board.Item{
		{ID: "chart-1", Type: board.WidgetChart, X: 0, Y: 0, W: 100, H: 80},
		{ID: "table-1", Type: board.WidgetTable, X: 0, Y: 90, W: 50, H: 56},
	}

	svg := string(RenderSVG(items))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
	for _, want := range []string{`id="item-chart-1"`, `id="item-table-1"`, ">chart<", ">table<"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderSVGFillPerType(t *testing.T) {
	items := []board.Item{
		{ID: "chart-1", Type: board.WidgetChart, X: 0, Y: 0, W: 100, H: 80},
		{ID: "video-1", Type: board.WidgetType("video"), X: 0, Y: 90, W: 50, H: 56},
	}

	svg := string(RenderSVG(items))

	if !strings.Contains(svg, `fill="`+typeFills[board.WidgetChart]+`"`) {
		t.Error("chart block should use the chart fill")
	}
	if !strings.Contains(svg, `fill="#e2e8f0"`) {
		t.Error("unknown types should fall back to the neutral fill")
	}
}

func TestRenderSVGScalesPercentWidths(t *testing.T) {
	items := []board.Item{
		{ID: "table-1", Type: board.WidgetTable, X: 25, Y: 0, W: 50, H: 56},
	}

	svg := string(RenderSVG(items, WithFrameWidth(400)))

	// 25% of 400 = 100, 50% of 400 = 200. Vertical values pass through.
	if !strings.Contains(svg, `x="100.0" y="0.0" width="200.0" height="56.0"`) {
		t.Errorf("percent scaling wrong:\n%s", svg)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	items := []board.Item{
		{ID: "metric-abc", Type: board.WidgetMetric, X: 0, Y: 0, W: 24, H: 60},
	}

	svg := string(RenderSVG(items, WithIDs(), WithTitle(`revenue <Q3> & more`)))

	if !strings.Contains(svg, ">metric-abc<") {
		t.Error("WithIDs should label blocks with their item id")
	}
	if !strings.Contains(svg, "revenue &lt;Q3&gt; &amp; more") {
		t.Error("title should be escaped")
	}
}

func TestRenderSVGEmptyBoard(t *testing.T) {
	svg := string(RenderSVG(nil))
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty board should still render a valid frame")
	}
}
