package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/periscope-dev/periscope/internal/shepherd"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Entries             []shepherd.Entry
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsStale returns true when the agent log has been unreadable for multiple polls.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The poller appends
// parsed entries; the UI reads cloned snapshots at its own cadence.
type Store struct {
	mu       sync.RWMutex
	limit    int
	snapshot Snapshot
}

// NewStore builds a store that retains at most limit entries; zero or
// negative means unbounded.
func NewStore(limit int) *Store {
	return &Store{limit: limit}
}

// Update appends newly read entries. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(entries []shepherd.Entry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Entries = append(s.snapshot.Entries, entries...)
	if s.limit > 0 && len(s.snapshot.Entries) > s.limit {
		overflow := len(s.snapshot.Entries) - s.limit
		s.snapshot.Entries = append([]shepherd.Entry(nil), s.snapshot.Entries[overflow:]...)
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Reset discards buffered entries, e.g. after the watched file changes.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []shepherd.Entry) []shepherd.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]shepherd.Entry, len(entries))
	copy(dup, entries)
	return dup
}
