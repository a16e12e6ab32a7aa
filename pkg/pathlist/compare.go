package pathlist

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CompareMode decides when two entries are the same entry
type CompareMode int

const (
	// CompareExact compares entries byte for byte
	CompareExact CompareMode = iota
	// CompareClean compares entries after filepath.Clean
	CompareClean
	// CompareNFC compares entries after Unicode NFC normalization
	CompareNFC
)

// String returns the string representation of the mode
func (m CompareMode) String() string {
	switch m {
	case CompareExact:
		return "exact"
	case CompareClean:
		return "clean"
	case CompareNFC:
		return "nfc"
	default:
		return "unknown"
	}
}

// ParseCompareMode parses a string into a CompareMode value
func ParseCompareMode(s string) (CompareMode, error) {
	switch strings.ToLower(s) {
	case "exact", "":
		return CompareExact, nil
	case "clean":
		return CompareClean, nil
	case "nfc":
		return CompareNFC, nil
	default:
		return CompareExact, fmt.Errorf("unknown compare mode: %s", s)
	}
}

// Key returns the form of entry used for equality under m.
// Empty entries keep the empty key in every mode.
func (m CompareMode) Key(entry string) string {
	if entry == "" {
		return entry
	}
	switch m {
	case CompareClean:
		return filepath.Clean(entry)
	case CompareNFC:
		return norm.NFC.String(entry)
	default:
		return entry
	}
}

// Equal reports whether a and b are the same entry under m
func (m CompareMode) Equal(a, b string) bool {
	return m.Key(a) == m.Key(b)
}
