// Package vocabstore persists named vocabularies in SQLite.
//
// The store wraps a pure-Go SQLite database (modernc.org/sqlite) opened with
// WAL journaling and a busy timeout, so several seqtext invocations can read
// while one writes. Each vocabulary is saved atomically in a single
// transaction that replaces any previous tokens under the same name.
//
// The schema is versioned; a mismatched database is rejected with
// ErrSchemaMismatch rather than migrated in place.
package vocabstore
