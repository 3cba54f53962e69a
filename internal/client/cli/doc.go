// Package cli provides the interactive trip diary command-line client.
//
// It wires configuration, local storage, API services, and an interactive REPL
// that supports online/offline operation. Typical flow: restore the cached
// session, start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (online with offline fallback)
//   - Show and edit the profile, change password, delete account
//   - List trips, show a trip's diary, create trips, append entries
//   - Manage local travel groups and the notification feed
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
