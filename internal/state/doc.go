// Package state provides thread-safe storage for the dashboard snapshot.
//
// # Overview
//
// The dashboard shows per-kind counts, the unread contact count, and the
// most recent records across kinds. A background poller refreshes these
// from the API while the UI renders whatever is current; this package is
// the coordination point between the two goroutines.
//
// # Behavior
//
// Store.Update replaces the snapshot atomically. A refresh failure keeps
// the previous data visible and records the error; consecutive failures
// are counted so the UI can surface an offline banner once the API has
// been unreachable for more than one cycle. Store.Snapshot returns a
// defensive copy, so the UI can never observe a torn update and the
// poller can never race a render.
//
// The per-screen collections in internal/resource deliberately do not use
// this store: a management screen owns its list exclusively for the
// screen's lifetime, while the dashboard is shared, periodically
// refreshed data.
package state
