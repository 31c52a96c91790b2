package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferro/curator/internal/resource"
	"github.com/aferro/curator/internal/state"
)

// tickMsg drives the periodic dashboard snapshot read.
type tickMsg time.Time

// snapshotMsg delivers the latest dashboard snapshot from the store.
type snapshotMsg state.Snapshot

// listLoadedMsg carries a collection fetch outcome. The generation is the
// one handed out by Collection.Begin, so stale results are dropped by the
// controller rather than by the UI.
type listLoadedMsg[T any] struct {
	kind  string
	gen   uint64
	items []T
	err   error
}

// detailLoadedMsg carries a single-record fetch for the view modal.
type detailLoadedMsg[T any] struct {
	kind  string
	token uint64
	rec   T
	err   error
}

// populateLoadedMsg carries the edit form's prefetch outcome.
type populateLoadedMsg[T any] struct {
	kind  string
	token uint64
	rec   T
	err   error
}

// saveDoneMsg carries a create or update outcome.
type saveDoneMsg[T any] struct {
	kind    string
	editing bool
	rec     T
	err     error
}

// deleteDoneMsg carries a single or bulk delete outcome.
type deleteDoneMsg struct {
	kind string
	ids  []resource.ID
	err  error
}

// recordReplacedMsg carries a server-side record change made outside the
// form flow (the contact mark-read update).
type recordReplacedMsg[T any] struct {
	kind string
	rec  T
	err  error
}

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}
