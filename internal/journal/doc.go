// Package journal persists committed renames to SQLite so past runs can be
// inspected with `bulkrename history`.
//
// The schema is versioned; a database written by a different version is
// rejected with ErrSchemaMismatch rather than migrated.
package journal
