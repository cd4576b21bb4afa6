// Package client contains the client-side plumbing of recipebook.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) used by the detail view
//     and the connectivity watcher: GetRecipe and Ping.
//  2. APIClient, which reads recipes from the HTTP API and probes liveness
//     through the standard gRPC health service.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite database and applies the embedded goose migrations.
//
// # Error Handling
//
// Callers match ErrUnavailable and ErrNotFound with errors.Is. A cancelled
// context is returned as is so that callers can tell it from a failure.
package client
