// Package storage persists the sent and stored message boxes between runs.
//
// Two Repository implementations exist: JSONRepository writes one file per
// box inside a data directory, SQLiteRepository keeps both boxes in a single
// SQLite database whose schema is managed by goose migrations.
//
// Loading is forgiving. LoadOrEmpty turns any failure into an empty list and
// a warning so a damaged file never blocks start-up.
package storage
