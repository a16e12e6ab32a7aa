// Package session keeps pathvar's scope alive between invocations of the
// CLI within one shell session.
//
// A Session overlays the variables written during the session on top of a
// base store (normally the process environment). Writes go straight to a
// TOML file under the state directory, replaced atomically by rename, so a
// concurrent reader sees either the previous file or the new one.
//
// Session files are keyed by a session id. A new shell gets a new id, so
// nothing carries over between sessions; Reset discards the file early.
package session
