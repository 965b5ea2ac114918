package board

import "sort"

// =============================================================================
// Visibility Filter
// =============================================================================

// Presence is a read-only snapshot from the data collaborator stating, per
// widget type, whether content currently exists to display (chart data
// loaded, table rows present, files linked to the active request, ...).
type Presence map[WidgetType]bool

// Has reports whether content is present for the given widget type.
func (p Presence) Has(t WidgetType) bool { return p[t] }

// IsVisible decides whether an item should render. In edit mode every item
// is visible regardless of data presence; in display (locked) mode only
// items whose type currently has content are rendered.
func IsVisible(it Item, p Presence, edit bool) bool {
	if edit {
		return true
	}
	return p.Has(it.Type)
}

// VisibleItems filters items through IsVisible. In display mode the result
// is additionally returned in row-flow order (sorted by Y, then X), which is
// how locked boards lay out: flow, not absolute pixel placement.
func VisibleItems(items []Item, p Presence, edit bool) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if IsVisible(it, p, edit) {
			out = append(out, it)
		}
	}
	if !edit {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Y != out[j].Y {
				return out[i].Y < out[j].Y
			}
			return out[i].X < out[j].X
		})
	}
	return out
}
