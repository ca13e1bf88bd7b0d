// Package cli provides the interactive jobtracker command-line client.
//
// It wires configuration, local storage, the backend client, the generation
// client and an interactive REPL that tracks online/offline state. Typical
// flow: load records and the resume, start a background connectivity
// watcher, and execute user commands.
//
// Key features:
//   - Applications and offers lists, with records visible before the server confirms them
//   - Generated cover letters and interview guides, regenerated on demand
//   - Resume editing with autosave, import from PDF and avatar generation
//   - Assistant chat with congratulation and encouragement messages on status changes
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
