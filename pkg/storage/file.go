package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileBackend stores one JSON document per board in a directory. It is the
// default backend for CLI usage.
type FileBackend struct {
	mu  sync.RWMutex
	dir string
}

// boardDocument wraps the records with write metadata.
type boardDocument struct {
	Records   []Record  `json:"records"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFileBackend creates a file-based backend rooted at dir.
// If dir is empty, defaults to ~/.local/share/gridboard/boards/ (or
// $XDG_DATA_HOME when set). The directory is created if missing.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("get home dir: %w", err)
			}
			base = filepath.Join(home, ".local", "share")
		}
		dir = filepath.Join(base, "gridboard", "boards")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create board dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// path converts a board id to a file path. Separators in the id are
// flattened so a crafted id cannot escape the data directory.
func (b *FileBackend) path(boardID string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(boardID)
	return filepath.Join(b.dir, safe+".json")
}

// Fetch retrieves the records of a board.
func (b *FileBackend) Fetch(ctx context.Context, boardID string) ([]Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(b.path(boardID))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var doc boardDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse board file: %w", err)
	}
	return doc.Records, nil
}

// Put stores the records of a board.
func (b *FileBackend) Put(ctx context.Context, boardID string, records []Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc := boardDocument{Records: records, UpdatedAt: time.Now().UTC()}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	return os.WriteFile(b.path(boardID), data, 0600)
}

// Delete removes a board document.
func (b *FileBackend) Delete(ctx context.Context, boardID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.path(boardID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file backend.
func (b *FileBackend) Close() error { return nil }

// Ensure FileBackend implements Backend.
var _ Backend = (*FileBackend)(nil)
