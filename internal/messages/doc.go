// Package messages builds outgoing chat messages, validates them and keeps
// the session outbox of sent and stored messages.
//
// A Message derives its id and hash once at construction. Both are exposed
// through read-only accessors only.
package messages
