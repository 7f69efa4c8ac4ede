// Package accounts implements single-user registration and login.
//
// Exactly one credential exists per process (or per database in SQLite mode).
// A new registration overwrites the previous one. Passwords are stored and
// compared in plain text; this package validates formats, it does not provide
// authentication security.
//
// Key Types
//
//   - type Service: Register / Login / Profile over a Store
//   - type Store: credential persistence contract
//   - type MemoryStore: process-local Store (default)
//   - type SQLiteStore: Store over the "metadata" key/value table
package accounts
