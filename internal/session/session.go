// Package session holds the in-memory editable copy of a persisted extraction
// result and coalesces rapid edits into a single write.
package session

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
)

// DefaultQuiescence is the debounce interval after which pending edits are
// flushed.
const DefaultQuiescence = 500 * time.Millisecond

// Saver persists the full entry sequence of a session file. *store.Store
// satisfies it.
type Saver interface {
	UpdateEntries(path string, entries []entity.OvertimeEntry) error
}

// Option configures an EditSession.
type Option func(*EditSession)

// WithQuiescence overrides the debounce window.
func WithQuiescence(d time.Duration) Option {
	return func(s *EditSession) { s.window = d }
}

// WithFlushErrorHandler installs a callback for errors from timer-triggered
// flushes. The in-memory state is never rolled back on failure; the next
// successful flush carries the failed edits.
func WithFlushErrorHandler(fn func(error)) Option {
	return func(s *EditSession) { s.onError = fn }
}

// EditSession owns the only mutable copy of a session's entries and is the
// sole writer back to its file. Each edit cancels any pending flush timer and
// arms a fresh one, so at most one timer is active per session; intermediate
// states inside a quiescence gap may never be persisted (last state wins).
type EditSession struct {
	saver   Saver
	path    string
	log     *slog.Logger
	window  time.Duration
	onError func(error)

	mu      sync.Mutex
	entries []entity.OvertimeEntry
	timer   *time.Timer
	dirty   bool

	// flushMu serializes writes to the session file; the session owns its
	// path exclusively for its lifetime.
	flushMu sync.Mutex
}

// New binds an edit session to a persisted session file. entries is the
// current entry sequence of that file; the session keeps its own copy.
func New(saver Saver, path string, entries []entity.OvertimeEntry, logger *slog.Logger, opts ...Option) *EditSession {
	if logger == nil {
		logger = slog.Default()
	}
	s := &EditSession{
		saver:   saver,
		path:    path,
		log:     logger,
		window:  DefaultQuiescence,
		entries: slices.Clone(entries),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the session file this session writes to.
func (s *EditSession) Path() string {
	return s.path
}

// Entries returns a copy of the current in-memory entry sequence.
func (s *EditSession) Entries() []entity.OvertimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Dirty reports whether edits are waiting to be flushed.
func (s *EditSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SetField applies one field edit and (re)arms the quiescence timer.
func (s *EditSession) SetField(index int, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("entry index %d out of range (have %d entries)", index, len(s.entries))
	}
	if err := s.entries[index].SetField(key, value); err != nil {
		return err
	}

	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, s.timerFlush)
	return nil
}

func (s *EditSession) timerFlush() {
	if err := s.Flush(); err != nil {
		s.log.Error("session.autosave.failed", "path", s.path, "error", err)
		if s.onError != nil {
			s.onError(err)
		}
	}
}

// Flush writes the current entry sequence immediately, bypassing the
// quiescence window. A no-op when nothing is dirty. On failure the edits stay
// in memory and remain dirty, so a retry can succeed without data loss.
func (s *EditSession) Flush() error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	snapshot := slices.Clone(s.entries)
	s.dirty = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if err := s.saver.UpdateEntries(s.path, snapshot); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}

	s.log.Info("session.autosave.ok", "path", s.path, "entries", len(snapshot))
	return nil
}

// Close flushes pending edits and stops the timer. Used on session teardown.
func (s *EditSession) Close() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.Flush()
}
