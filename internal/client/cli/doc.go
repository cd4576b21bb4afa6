// Package cli provides the interactive recipebook terminal client.
//
// It wires configuration, the local SQLite stores, the recipe API client and
// an interactive REPL. A background watcher probes the server's health
// endpoint and shows online/offline in the prompt.
//
// Commands map onto the views of package views:
//   - list / search: the recipe list with title filter
//   - add / edit / delete: the recipe forms and ownership-checked removal
//   - show: a recipe fetched from the server
//   - login / logout: the session identifier
//   - export: the list as an .xlsx or .csv file
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
