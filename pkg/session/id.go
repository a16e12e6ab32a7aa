package session

import (
	"os"
	"strconv"
)

// ResolveID picks the session id: the explicit value when set, otherwise
// the parent process id, which identifies the invoking shell.
func ResolveID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return "ppid-" + strconv.Itoa(os.Getppid())
}
