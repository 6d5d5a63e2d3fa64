// Package cli provides the interactive GophSafe command-line client.
//
// It wires configuration, the local SQLite store, the mirror transport and
// the client services behind a small REPL. Everything works offline; signing
// in only enables best-effort mirroring to the server.
//
// Key features:
//   - Crisis check-in (triage) with level-specific next steps
//   - Safety plan editing, sharing and export (markdown, PDF, upload)
//   - Crisis resources for the detected or configured country
//   - Default trusted contacts and the export journal
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
