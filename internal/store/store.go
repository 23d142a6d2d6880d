// Package store persists extraction sessions as human-readable JSON files and
// supports replacing the entry sequence of an existing file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
)

var (
	// ErrNotFound indicates the session file does not exist.
	ErrNotFound = errors.New("session file not found")

	// ErrMalformed indicates the session file is not valid JSON.
	ErrMalformed = errors.New("session file malformed")
)

// Store reads and writes SessionRecord files.
type Store struct {
	log *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{log: logger}
}

// Load reads and parses the session file at path.
func (s *Store) Load(path string) (*SessionRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &rec, nil
}

// Save writes the record to path, creating parent directories as needed.
// The write goes to a temp file first and is renamed into place, so a reader
// never observes a partially written file. TotalEntries is recomputed before
// writing.
func (s *Store) Save(path string, rec *SessionRecord) error {
	if rec.RecognitionResults == nil {
		rec.RecognitionResults = []entity.OvertimeEntry{}
	}
	rec.TotalEntries = len(rec.RecognitionResults)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.log.Info("store.save.ok", "path", path, "entries", rec.TotalEntries)
	return nil
}

// UpdateEntries loads the record at path, replaces its entry sequence with the
// supplied one, recomputes the count, and saves. There is no field-level patch
// operation; every update rewrites the full sequence.
func (s *Store) UpdateEntries(path string, entries []entity.OvertimeEntry) error {
	rec, err := s.Load(path)
	if err != nil {
		return err
	}
	rec.RecognitionResults = entries
	return s.Save(path, rec)
}
