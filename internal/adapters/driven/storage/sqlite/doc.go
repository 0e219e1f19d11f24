// Package sqlite provides the SQLite-backed implementation of the
// ArtefactStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Records are normalised across three tables:
// documents (one row per content identity, holding the optional embedded
// payload), artefacts (one row per document and kind), and feedback
// (append-only rows ordered by rowid).
//
// # Data Location
//
// By default, the database is stored at ~/.tessella/data/artefacts.db
//
// # Thread Safety
//
// All operations are thread-safe. The create-or-attach upsert runs in a
// single transaction; the documents primary key serialises concurrent
// first-writers, so at most one base record is created per identity.
package sqlite
