// Package resource implements the generic collection controller shared by
// every management screen.
//
// # Overview
//
// Each screen in curator manages one resource kind (photos, videos,
// services, contacts) against the same REST contract: list, single fetch,
// create, update, delete, bulk delete. Instead of four hand-copied screen
// controllers, this package provides one parametric implementation that a
// screen instantiates with an Adapter describing its kind.
//
// # Architecture
//
// The controller composes four independent pieces:
//
//   - Collection: the authoritative in-memory list for one screen
//     instance, with a derived case-insensitive filtered view and an
//     explicit mutation contract (insert/replace/remove/removeMany).
//   - Selection: the set of identifiers marked for a bulk action, always
//     a subset of the currently visible identifiers.
//   - Detail: an on-demand single-record fetch session for a view modal,
//     with token-based discard of late responses after Close.
//   - Executor: create/update/delete/bulk-delete against a Backend, with
//     form validation applied before any request is issued.
//
// Controller ties them together and re-establishes the selection
// invariant after every event that can change the visible set.
//
// # Asynchrony
//
// Nothing in this package performs I/O on its own goroutine. Loads and
// detail fetches follow a begin/resolve protocol: Begin (or Open) records
// intent and hands back a generation token, the caller performs the fetch
// wherever it likes (a Bubble Tea command in the UI, a plain call in
// tests), and Resolve applies the outcome only when the token still
// matches. A newer request therefore always supersedes an older in-flight
// one, and a closed detail session silently drops whatever arrives late.
package resource
