// Package storage persists board layouts through pluggable backends.
//
// The persistence contract is a flat, versionless record per item:
//
//	{i, x, y, w, h, minW, minH, maxW, maxH}
//
// The widget type is not stored; it is derived from the id prefix before the
// first separator. Loading is deliberately forgiving: missing fields fall
// back to type defaults, records with unknown type tags are dropped,
// duplicate types collapse to the first occurrence, and any backend failure
// or empty document falls back to the built-in default catalogue. A failed
// load is never a fatal error.
//
// # Backends
//
// Four backends implement the Backend interface:
//   - memory: in-process map for tests and development
//   - file: one JSON document per board under a data directory
//   - redis: one key per board for multi-instance deployments
//   - mongo: one document per board with native bson records
//
// # Usage
//
//	backend, err := storage.NewFileBackend("")
//	if err != nil {
//	    return err
//	}
//	gw := storage.NewGateway(backend)
//
//	items := gw.Load(ctx, boardID) // never fails; falls back to defaults
//	if err := gw.Save(ctx, boardID, items); err != nil {
//	    // report and carry on; the in-memory board stays authoritative
//	}
package storage

import (
	"context"
	"errors"

	"github.com/matzehuels/gridboard/pkg/board"
)

// Sentinel errors for storage operations.
var (
	// ErrNotFound is returned by backends when a board has never been saved.
	ErrNotFound = errors.New("not found")
)

// Record is the flat serialization shape of one layout item.
type Record struct {
	I    string  `json:"i" bson:"i"`
	X    float64 `json:"x" bson:"x"`
	Y    float64 `json:"y" bson:"y"`
	W    float64 `json:"w" bson:"w"`
	H    float64 `json:"h" bson:"h"`
	MinW float64 `json:"minW,omitempty" bson:"minW,omitempty"`
	MinH float64 `json:"minH,omitempty" bson:"minH,omitempty"`
	MaxW float64 `json:"maxW,omitempty" bson:"maxW,omitempty"`
	MaxH float64 `json:"maxH,omitempty" bson:"maxH,omitempty"`
}

// Backend is the interface for board document storage.
type Backend interface {
	// Fetch retrieves the records of a board.
	// Returns ErrNotFound when the board has never been saved.
	Fetch(ctx context.Context, boardID string) ([]Record, error)

	// Put stores the records of a board, replacing any previous document.
	Put(ctx context.Context, boardID string, records []Record) error

	// Delete removes a board document. Deleting a missing board is not an
	// error.
	Delete(ctx context.Context, boardID string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Record Codec
// =============================================================================

// EncodeRecords converts items to their flat persistence shape.
func EncodeRecords(items []board.Item) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = Record{
			I:    it.ID,
			X:    it.X,
			Y:    it.Y,
			W:    it.W,
			H:    it.H,
			MinW: it.MinW,
			MinH: it.MinH,
			MaxW: it.MaxW,
			MaxH: it.MaxH,
		}
	}
	return out
}

// DecodeRecords reconstructs typed items from flat records. The widget type
// comes from the id prefix; records with unknown tags are dropped. Missing
// width and height fields substitute the type defaults, heights are clamped
// to the type minimum, and duplicate types collapse to the first occurrence.
func DecodeRecords(records []Record) []board.Item {
	items := make([]board.Item, 0, len(records))
	for _, r := range records {
		typ, ok := board.TypeFromID(r.I)
		if !ok {
			// Future or foreign type tag: drop the record, keep the load.
			continue
		}

		it := board.Item{
			ID:   r.I,
			Type: typ,
			X:    r.X,
			Y:    r.Y,
			W:    r.W,
			H:    r.H,
			MinW: r.MinW,
			MinH: r.MinH,
			MaxW: r.MaxW,
			MaxH: r.MaxH,
		}
		if it.W <= 0 {
			it.W = board.DefaultWidth(typ)
		}
		if min := board.MinHeight(typ, false); it.H < min {
			it.H = min
		}
		if it.Y < 0 {
			it.Y = 0
		}
		if it.X < 0 {
			it.X = 0
		}
		if it.X+it.W > 100 {
			it.X = 100 - it.W
			if it.X < 0 {
				it.X = 0
				it.W = 100
			}
		}
		items = append(items, it)
	}
	return board.DedupeByType(items)
}
