// Package envfile reads, reconciles, and atomically rewrites the
// application's KEY=VALUE environment file.
//
// The package owns a fixed managed namespace of database connection keys.
// Reconciliation removes every managed line, appends one canonical line per
// managed key in a fixed order, and leaves all other lines byte-for-byte
// untouched, so reconciling twice with the same credentials is idempotent.
// Writes go through a temporary file and rename so a crash mid-write never
// leaves a truncated file behind, and the result is owner-only readable.
package envfile
