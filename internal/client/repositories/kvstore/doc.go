// Package kvstore provides the client's key-value persistence: the durable
// store (survives restarts, shared by every client process on the device)
// and the session store (scoped to one client process and cleared when it
// exits). Values are opaque byte slices; callers own their encoding.
//
// Both stores are backed by SQLite tables created by the client migrations
// and are written through a dbx.DBTX, so a caller may bind them to a
// transaction. MemoryRepository is an in-memory implementation for tests.
package kvstore
