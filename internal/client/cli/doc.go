// Package cli provides the interactive TripDeck command-line client.
//
// It wires configuration, the local session database, REST services, and an
// interactive REPL. Typical flow: restore a persisted session (or prompt for
// credentials), start a background connectivity watcher, and execute user
// commands.
//
// Key features:
//   - Login / Register / Logout with a session that survives restarts
//   - Trip listing, detail, creation (with destination select-or-create)
//   - Activity browsing with search, time-window filter and pagination
//   - Activity create / edit / delete with type-aware forms
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
