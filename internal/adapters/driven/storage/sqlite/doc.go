// Package sqlite provides a SQLite-based implementation of the history
// store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The store keeps
// a bounded log of spoken utterances; appends past the retention cap
// evict the oldest rows.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.grumble/data/history.db
package sqlite
