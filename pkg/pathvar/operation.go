package pathvar

import (
	"fmt"
	"strings"
)

// Operation is one of the structural edits the engine knows
type Operation int

const (
	OpAppend Operation = iota
	OpPrepend
	OpRemove
	OpDedupe
	OpList
)

// String returns the string representation of the operation
func (o Operation) String() string {
	switch o {
	case OpAppend:
		return "append"
	case OpPrepend:
		return "prepend"
	case OpRemove:
		return "remove"
	case OpDedupe:
		return "dedupe"
	case OpList:
		return "list"
	default:
		return "unknown"
	}
}

// ParseOperation parses a string into an Operation value
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(s) {
	case "append":
		return OpAppend, nil
	case "prepend":
		return OpPrepend, nil
	case "remove":
		return OpRemove, nil
	case "dedupe", "deduplicate":
		return OpDedupe, nil
	case "list":
		return OpList, nil
	default:
		return OpAppend, fmt.Errorf("unknown operation: %s", s)
	}
}

// Valid reports whether o is one of the known operations
func (o Operation) Valid() bool {
	return o >= OpAppend && o <= OpList
}

// TakesPath reports whether the operation needs a path argument
func (o Operation) TakesPath() bool {
	return o == OpAppend || o == OpPrepend || o == OpRemove
}

// Mutates reports whether the operation writes to scope
func (o Operation) Mutates() bool {
	return o != OpList
}

// state tracks an invocation for trace logging:
// validating -> reading -> writing -> done, or failed from any of them.
type state int

const (
	stateValidating state = iota
	stateReading
	stateWriting
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateValidating:
		return "validating"
	case stateReading:
		return "reading"
	case stateWriting:
		return "writing"
	case stateDone:
		return "done"
	default:
		return "failed"
	}
}
