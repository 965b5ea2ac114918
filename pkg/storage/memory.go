package storage

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process backend for development and testing.
type MemoryBackend struct {
	mu     sync.RWMutex
	boards map[string][]Record
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{boards: make(map[string][]Record)}
}

// Fetch retrieves the records of a board.
func (b *MemoryBackend) Fetch(ctx context.Context, boardID string) ([]Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records, ok := b.boards[boardID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

// Put stores the records of a board.
func (b *MemoryBackend) Put(ctx context.Context, boardID string, records []Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]Record, len(records))
	copy(stored, records)
	b.boards[boardID] = stored
	return nil
}

// Delete removes a board document.
func (b *MemoryBackend) Delete(ctx context.Context, boardID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.boards, boardID)
	return nil
}

// Close does nothing for the memory backend.
func (b *MemoryBackend) Close() error { return nil }

// Ensure MemoryBackend implements Backend.
var _ Backend = (*MemoryBackend)(nil)
