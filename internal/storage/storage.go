package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krfl/sidequest/internal/model"
)

// StoreError reports a failed store operation. Op is "open" or "write" so the
// top-level handler can map it to an exit status.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store persists the full entry collection in a single JSON file: an array of
// {"timestamp": <unix seconds>, "message": <string>} records in insertion
// order. One process at a time; there is no cross-process locking.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The path is injected so
// config and tests can point the store anywhere.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file location.
func (s *Store) Path() string { return s.path }

// Load reads every entry in insertion order. A missing file is created empty.
// Unparseable content is moved aside to <path>.corrupt and treated as an
// empty store; Load never surfaces a parse error. Plain reads never truncate.
func (s *Store) Load() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if err := s.createEmpty(); err != nil {
			return nil, err
		}
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "open", Path: s.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Entry{}, nil
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Move the unreadable file aside so the next save cannot overwrite it.
		_ = os.Rename(s.path, s.path+".corrupt")
		return []model.Entry{}, nil
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// Save rewrites the whole store. Atomic write: temp file then rename, so a
// concurrent reader never observes a torn file.
func (s *Store) Save(entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

func (s *Store) createEmpty() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return &StoreError{Op: "open", Path: s.path, Err: err}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return &StoreError{Op: "open", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StoreError{Op: "open", Path: s.path, Err: err}
	}
	return nil
}
