package board

import "math"

// catalogueSuffix is the id suffix for items created from the built-in
// default catalogue. Deterministic ids keep reloads of an unsaved board
// stable.
const catalogueSuffix = "default"

// DefaultCatalogue returns the built-in board: one pre-positioned item per
// widget type, laid out in four rows. Heights honour the minimum for the
// given mode.
func DefaultCatalogue(edit bool) []Item {
	metricH := math.Ceil(MinHeight(WidgetMetric, edit))
	insightH := math.Ceil(MinHeight(WidgetInsight, edit))
	chartH := math.Ceil(MinHeight(WidgetChart, edit))
	tableH := math.Ceil(MinHeight(WidgetTable, edit))
	imageH := math.Ceil(MinHeight(WidgetImage, edit))
	downloadH := math.Ceil(MinHeight(WidgetFileDownload, edit))

	const gap = 10

	row0 := 0.0
	row1 := row0 + math.Max(metricH, insightH) + gap
	row2 := row1 + chartH + gap
	row3 := row2 + math.Max(tableH, imageH) + gap

	return []Item{
		{ID: catalogueID(WidgetMetric), Type: WidgetMetric, X: 0, Y: row0, W: DefaultWidth(WidgetMetric), H: metricH},
		{ID: catalogueID(WidgetInsight), Type: WidgetInsight, X: 26, Y: row0, W: DefaultWidth(WidgetInsight), H: insightH},
		{ID: catalogueID(WidgetChart), Type: WidgetChart, X: 0, Y: row1, W: DefaultWidth(WidgetChart), H: chartH},
		{ID: catalogueID(WidgetTable), Type: WidgetTable, X: 0, Y: row2, W: DefaultWidth(WidgetTable), H: tableH},
		{ID: catalogueID(WidgetImage), Type: WidgetImage, X: 51, Y: row2, W: DefaultWidth(WidgetImage), H: imageH},
		{ID: catalogueID(WidgetFileDownload), Type: WidgetFileDownload, X: 0, Y: row3, W: DefaultWidth(WidgetFileDownload), H: downloadH},
	}
}

func catalogueID(t WidgetType) string {
	return string(t) + "-" + catalogueSuffix
}
