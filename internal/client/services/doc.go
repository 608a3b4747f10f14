// Package services holds the client-side repositories that the CLI and the
// seeding workflow talk to. They combine the local SQLite cache, the local
// file store and the gRPC client, and report every result as an
// outcome.Outcome.
package services
