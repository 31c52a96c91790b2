// Package ui provides the terminal user interface for the curator
// application.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea. A root Model owns the session, the
// active theme, the polled dashboard snapshot, and exactly one active
// screen at a time. Screens are created fresh on every navigation, so a
// screen's collection is loaded per visit and nothing is cached across
// switches.
//
// # Package Structure
//
//   - ui.go: Root model, screen routing, header/footer chrome, and the Run function
//   - browse.go: Generic list/detail screen parameterized per resource kind
//   - form.go: Generic create/edit form driven by a resource.EditSession
//   - screens.go: Per-kind wiring (images, videos, services, contacts)
//   - dashboard.go: Stats cards and recent activity from state.Store
//   - login.go: Credential gate shown before any screen
//   - theme.go: Color themes and lipgloss style sets
//   - msgs.go: Message types carrying async command outcomes
//
// # Screens
//
//   - Dashboard: Record counts and recent activity, refreshed by the poller
//   - Images, Videos, Services: Full management screens with search, multi-select,
//     create/edit forms, and single or bulk delete
//   - Contacts: Read-only inbox with a status filter; viewing an unread message
//     marks it read
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alternate screen
//  2. Key messages route to the root model, then to the active screen
//  3. Screens issue tea.Cmd closures that call the API client and return
//     typed outcome messages
//  4. Outcome messages carry the generation or token handed out when the
//     request started, so late responses for abandoned requests are dropped
//     by the resource controller
//
// # External Dependencies
//
//   - api.Client: REST access to the content service
//   - resource: Collection, selection, detail, and form state machines
//   - state.Store: Polled dashboard snapshots
//   - prefs: Theme persistence across runs
package ui
