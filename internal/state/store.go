package state

import (
	"fmt"
	"sync"
	"time"
)

// Stats aggregates per-kind counts for the dashboard.
type Stats struct {
	Photos         int
	Videos         int
	Services       int
	ActiveServices int
	Contacts       int
	UnreadContacts int
}

// Activity is one recent-items row on the dashboard.
type Activity struct {
	Kind      string
	Title     string
	CreatedAt string
}

// Snapshot represents the latest dashboard data available to the UI.
type Snapshot struct {
	Stats               Stats
	Recent              []Activity
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple
// refreshes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the dashboard snapshot between
// the background poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(stats *Stats, recent []Activity, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Recent = cloneActivity(recent)
	if stats != nil {
		s.snapshot.Stats = *stats
		s.snapshot.HasData = true
	} else {
		s.snapshot.HasData = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Recent = cloneActivity(s.snapshot.Recent)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneActivity(items []Activity) []Activity {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Activity, len(items))
	copy(dup, items)
	return dup
}
