// Package scope defines the session variable store pathvar reads from and
// writes to.
//
// A Store is handed to the engine explicitly; there is no package-level
// store, so independent sessions can coexist in one process. Memory is the
// in-process implementation, seeded from an environment snapshot with
// FromEnviron. Stores that can serialize writers per variable implement
// Locker as well.
package scope
