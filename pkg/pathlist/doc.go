// Package pathlist implements the list algebra behind pathvar.
//
// A path list is a single string holding ordered entries joined by a
// separator rune, the way PATH joins directories with ':' on POSIX systems
// and ';' on Windows. The functions here never touch a scope store: they
// take a raw value, return a new raw value, and leave reading and writing
// to the caller.
//
// Entries are opaque text. Two entries are the same entry when the active
// CompareMode says so; the default mode is plain textual equality.
package pathlist
