// Package session persists the client's pseudo-session (user, email and
// store identifiers) in a local SQLite key/value table.
package session
