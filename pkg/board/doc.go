// Package board defines the canonical data model for a widget canvas:
// widget types, layout items, the item store, and the visibility filter.
//
// A board is an ordered collection of layout items. Each item places one
// widget on a free-form canvas using a mixed coordinate system: X and W are
// percentages of the container width, Y and H are absolute pixels. The store
// enforces at most one item per widget type.
//
// # Coordinate Invariants
//
// For every item the store guarantees:
//   - 0 <= X and X+W <= 100
//   - Y >= 0
//   - H >= MinHeight(Type, editMode)
//
// # Usage
//
//	store := board.NewStore(board.DefaultCatalogue(true))
//	item, ok := store.AddItem(board.WidgetChart)
//	if ok {
//	    store.Select(item.ID)
//	}
//
// The store is intentionally unsynchronized: the interaction state machine in
// pkg/gesture guarantees a single writer at a time.
package board
