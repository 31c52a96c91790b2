// Package app provides the orchestration layer for curator.
//
// # Overview
//
// This package wires configuration, logging, the API client, the
// dashboard store and its poller, and the UI into the complete
// application. It is the composition root; nothing below it reaches for
// globals.
//
// # Startup
//
//  1. Load configuration from ~/.config/curator/config.toml
//  2. Load user preferences (theme)
//  3. Open the log file
//  4. Build the API client
//  5. Run one dashboard refresh so the store is populated at first paint
//  6. Launch the background poller
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Polling
//
// The poller refreshes the dashboard only; the management screens own
// their collections exclusively and fetch on entry. Refresh failures back
// off exponentially (doubling per consecutive failure, capped) so an
// unreachable API is not hammered.
package app
