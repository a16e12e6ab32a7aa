package pathlist

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"
)

// Separator is the host's path-list separator (not the single-path separator)
const Separator = os.PathListSeparator

var (
	// ErrNotText is returned by ToText when a path is not valid text
	ErrNotText = errors.New("cannot convert to string")

	// ErrEmptyEntry is returned when an entry would be empty
	ErrEmptyEntry = errors.New("path entry is empty")

	// ErrContainsSeparator is returned when an entry holds the list separator
	ErrContainsSeparator = errors.New("path entry contains the list separator")
)

// ToText converts an OS-native path into text. It never substitutes or
// drops bytes: a path that is not valid UTF-8 is rejected with ErrNotText.
func ToText(p string) (string, error) {
	if !utf8.ValidString(p) {
		return "", ErrNotText
	}
	return p, nil
}

// ValidateEntry checks that entry can be stored in a list joined by sep
// without changing the list's structure.
func ValidateEntry(entry string, sep rune) error {
	if entry == "" {
		return ErrEmptyEntry
	}
	if strings.ContainsRune(entry, sep) {
		return ErrContainsSeparator
	}
	return nil
}

// Split parses a raw value into its entries. An empty value is the empty
// list; empty entries inside a non-empty value are kept.
func Split(value string, sep rune) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, string(sep))
}

// Join serializes entries back into a raw value
func Join(entries []string, sep rune) string {
	return strings.Join(entries, string(sep))
}

// Append adds entry at the end of value. The separator is always written,
// so a set-but-empty value gains a leading empty entry.
func Append(value, entry string, sep rune) string {
	return value + string(sep) + entry
}

// Prepend adds entry at the front of value
func Prepend(value, entry string, sep rune) string {
	return entry + string(sep) + value
}

// Remove drops every entry equal to entry under mode, keeping the order
// of the rest.
func Remove(value, entry string, sep rune, mode CompareMode) string {
	entries := Split(value, sep)
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if mode.Equal(e, entry) {
			continue
		}
		kept = append(kept, e)
	}
	return Join(kept, sep)
}

// Dedupe collapses repeated entries, keeping the first occurrence
func Dedupe(value string, sep rune, mode CompareMode) string {
	entries := Split(value, sep)
	seen := make(map[string]bool, len(entries))
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		key := mode.Key(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, e)
	}
	return Join(kept, sep)
}

// Contains reports whether value holds an entry equal to entry under mode
func Contains(value, entry string, sep rune, mode CompareMode) bool {
	for _, e := range Split(value, sep) {
		if mode.Equal(e, entry) {
			return true
		}
	}
	return false
}
