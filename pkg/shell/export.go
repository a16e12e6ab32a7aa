package shell

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/pathvar/pkg/logging"
	"github.com/arthur-debert/pathvar/pkg/pathlist"
)

// Dialect is a shell syntax family
type Dialect int

const (
	// DialectPOSIX covers bash, zsh and sh
	DialectPOSIX Dialect = iota
	// DialectFish is the fish shell
	DialectFish
)

// String returns the string representation of the dialect
func (d Dialect) String() string {
	switch d {
	case DialectPOSIX:
		return "posix"
	case DialectFish:
		return "fish"
	default:
		return "unknown"
	}
}

// ParseDialect parses a shell name into its Dialect
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "bash", "zsh", "sh", "posix", "":
		return DialectPOSIX, nil
	case "fish":
		return DialectFish, nil
	default:
		return DialectPOSIX, fmt.Errorf("unsupported shell: %s", s)
	}
}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Render returns one statement per variable, sorted by name. Values are
// split on sep for fish path variables (names ending in PATH), which fish
// stores as lists. Names that are not shell identifiers are skipped with a
// warning so one bad name cannot break the whole script.
func Render(dialect Dialect, vars map[string]string, sep rune) string {
	logger := logging.GetLogger("pathvar.shell")
	names := make([]string, 0, len(vars))
	for name := range vars {
		if !namePattern.MatchString(name) {
			logger.Warn().Str("variable", name).Msg("skipping variable that is not a valid shell name")
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		value := vars[name]
		switch dialect {
		case DialectFish:
			b.WriteString("set -gx ")
			b.WriteString(name)
			if strings.HasSuffix(name, "PATH") {
				for _, entry := range pathlist.Split(value, sep) {
					b.WriteByte(' ')
					b.WriteString(fishQuote(entry))
				}
			} else {
				b.WriteByte(' ')
				b.WriteString(fishQuote(value))
			}
			b.WriteString(";\n")
		default:
			fmt.Fprintf(&b, "export %s=%s;\n", name, posixQuote(value))
		}
	}
	return b.String()
}

func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
