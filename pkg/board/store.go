package board

// =============================================================================
// Store - Canonical Item List
// =============================================================================

// Store holds the canonical, ordered list of layout items. It is the single
// source of truth for the board; only the gesture controllers and load/apply-
// default mutate it. The store enforces at most one item per widget type.
//
// Store is not safe for concurrent use. The Idle/Dragging/Resizing state
// machine guarantees a single writer.
type Store struct {
	items    []Item
	selected string
	editMode bool
}

// NewStore creates a store seeded with the given items. The items pass
// through the same one-per-type dedupe as ReplaceAll.
func NewStore(items []Item) *Store {
	s := &Store{}
	s.ReplaceAll(items)
	return s
}

// Items returns a copy of the item list in canonical order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items on the board.
func (s *Store) Len() int { return len(s.items) }

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// HasType reports whether the board already contains an item of type t.
func (s *Store) HasType(t WidgetType) bool {
	for _, it := range s.items {
		if it.Type == t {
			return true
		}
	}
	return false
}

// AddItem appends a new item of the given type with its default width and
// minimum height, placed below the current lowest item. It is a no-op when
// an item of that type already exists or the type is unknown.
func (s *Store) AddItem(t WidgetType) (Item, bool) {
	if !t.Valid() || s.HasType(t) {
		return Item{}, false
	}

	var bottom float64
	for _, it := range s.items {
		if edge := it.Y + it.H; edge > bottom {
			bottom = edge
		}
	}

	it := Item{
		ID:   NewItemID(t),
		Type: t,
		X:    0,
		Y:    bottom,
		W:    DefaultWidth(t),
		H:    MinHeight(t, s.editMode),
	}
	s.items = append(s.items, it)
	return it, true
}

// RemoveItem deletes the item with the given id.
// Returns false when no such item exists.
func (s *Store) RemoveItem(id string) bool {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.selected == id {
				s.selected = ""
			}
			return true
		}
	}
	return false
}

// ReplaceAll swaps the whole item list, applying the one-per-type dedupe:
// the first item of each type in input order survives, later duplicates are
// discarded. Used by load and by auto-arrange commits.
func (s *Store) ReplaceAll(items []Item) {
	s.items = DedupeByType(items)
	if s.selected != "" {
		if _, ok := s.Get(s.selected); !ok {
			s.selected = ""
		}
	}
}

// SetRect commits a rectangle onto the item with the given id.
// Returns false when no such item exists.
func (s *Store) SetRect(id string, x, y, w, h float64) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].X, s.items[i].Y = x, y
			s.items[i].W, s.items[i].H = w, h
			return true
		}
	}
	return false
}

// Select marks the item with the given id as selected. An unknown id clears
// the selection.
func (s *Store) Select(id string) {
	if _, ok := s.Get(id); ok {
		s.selected = id
		return
	}
	s.selected = ""
}

// Selected returns the id of the selected item, or "" when none is selected.
func (s *Store) Selected() string { return s.selected }

// SetEditMode toggles between edit (unlocked) and display (locked) mode.
func (s *Store) SetEditMode(edit bool) { s.editMode = edit }

// EditMode reports whether the board is in edit mode.
func (s *Store) EditMode() bool { return s.editMode }

// DedupeByType keeps the first item of each widget type in input order and
// drops the rest. Items with unknown types are dropped as well.
func DedupeByType(items []Item) []Item {
	seen := make(map[WidgetType]bool, len(WidgetTypes))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Type.Valid() || seen[it.Type] {
			continue
		}
		seen[it.Type] = true
		out = append(out, it)
	}
	return out
}

// =============================================================================
// Render Delegate View
// =============================================================================

// ItemView is the flat, read-only shape handed to a presentation layer for
// each visible item. The engine never draws anything itself.
type ItemView struct {
	ID              string
	Type            WidgetType
	X, Y, W, H      float64
	IsGestureTarget bool
	IsSelected      bool
}

// Views builds the render-delegate view of the current items. The item with
// id gestureTarget (if any) is flagged so renderers can raise its stacking
// order and draw the gesture overlay.
func (s *Store) Views(gestureTarget string) []ItemView {
	out := make([]ItemView, len(s.items))
	for i, it := range s.items {
		out[i] = ItemView{
			ID:              it.ID,
			Type:            it.Type,
			X:               it.X,
			Y:               it.Y,
			W:               it.W,
			H:               it.H,
			IsGestureTarget: it.ID == gestureTarget,
			IsSelected:      it.ID == s.selected,
		}
	}
	return out
}
