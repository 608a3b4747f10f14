// Package cli provides the interactive contacts command-line client.
//
// It wires configuration, the local SQLite cache, the local photo store,
// the gRPC client and an interactive REPL. On start the client signs in,
// seeds an empty local cache, seeds an empty server with the demo roster
// and starts a background connectivity watcher.
//
// Commands:
//   - list / show / add / edit / delete / photo: work on the local cache
//   - push / pull: synchronize with the server
//   - seed / seedremote: run the local or remote seeding on demand
//   - info: show sync bookkeeping
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
