package storage

import (
	"context"
	"time"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// Gateway mediates between the in-memory board and a storage backend. It
// owns the record codec, the dedupe/clamp recovery on load, and the default
// catalogue fallback.
type Gateway struct {
	backend Backend
}

// NewGateway creates a gateway over the given backend.
func NewGateway(backend Backend) *Gateway {
	return &Gateway{backend: backend}
}

// Save serializes items to flat records and stores them. A save failure is
// returned for reporting but must not roll back or block interaction; the
// in-memory board stays authoritative until the next successful save.
func (g *Gateway) Save(ctx context.Context, boardID string, items []board.Item) error {
	start := time.Now()
	err := g.backend.Put(ctx, boardID, EncodeRecords(items))
	observability.Storage().OnSave(ctx, boardID, len(items), time.Since(start), err)

	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "save board %s", boardID)
	}
	return nil
}

// Load retrieves a board's items. Any failure mode - backend error, missing
// board, malformed or empty document - falls back to the built-in default
// catalogue, pre-positioned for edit mode. Load never fails.
func (g *Gateway) Load(ctx context.Context, boardID string) []board.Item {
	start := time.Now()
	records, err := g.backend.Fetch(ctx, boardID)
	observability.Storage().OnLoad(ctx, boardID, len(records), time.Since(start), err)

	if err != nil {
		reason := "backend error"
		if err == ErrNotFound {
			reason = "board not saved yet"
		}
		observability.Storage().OnLoadFallback(ctx, boardID, reason)
		return board.DefaultCatalogue(true)
	}

	items := DecodeRecords(records)
	if len(items) == 0 {
		observability.Storage().OnLoadFallback(ctx, boardID, "empty or unusable document")
		return board.DefaultCatalogue(true)
	}
	return items
}

// Delete removes a board document.
func (g *Gateway) Delete(ctx context.Context, boardID string) error {
	if err := g.backend.Delete(ctx, boardID); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete board %s", boardID)
	}
	return nil
}

// Close releases the underlying backend.
func (g *Gateway) Close() error {
	return g.backend.Close()
}
