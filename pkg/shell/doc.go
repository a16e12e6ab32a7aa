// Package shell renders pathvar session variables as statements a shell
// can evaluate, so a session's edits can be applied to the invoking shell:
//
//	eval "$(pathvar env)"
//	pathvar env --shell fish | source
package shell
