package pathvar

import "fmt"

// Tag labels where an argument came from, for diagnostics
type Tag struct {
	Name     string
	Position int
}

func (t Tag) String() string {
	if t.Name == "" {
		return fmt.Sprintf("argument %d", t.Position+1)
	}
	return fmt.Sprintf("argument '%s' (position %d)", t.Name, t.Position+1)
}

// Arg is a path argument as supplied by the caller: the OS-native path plus
// its tag. Value may hold bytes that are not valid text.
type Arg struct {
	Value string
	Tag   Tag
}

// PathArg wraps value as the first positional "path" argument
func PathArg(value string) Arg {
	return Arg{Value: value, Tag: Tag{Name: "path", Position: 0}}
}

// Request carries the inputs of one engine call
type Request struct {
	// Var overrides the engine's default variable when non-empty
	Var string
	// Path is ignored by operations that take no path
	Path Arg
}
