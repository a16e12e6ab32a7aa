package pathvar

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Edit PATH-like environment variables"
	MsgAppendShort       = "Append an entry to a PATH-like variable"
	MsgPrependShort      = "Prepend an entry to a PATH-like variable"
	MsgRemoveShort       = "Remove every occurrence of an entry"
	MsgDedupeShort       = "Drop repeated entries, keeping the first"
	MsgListShort         = "List the entries of a PATH-like variable"
	MsgEnvShort          = "Print session changes as shell statements"
	MsgSessionShort      = "Inspect or clear the current session"
	MsgSessionPathShort  = "Print the session file"
	MsgSessionResetShort = "Forget every change made in this session"
	MsgTopicsShort       = "Display available documentation topics"
	MsgTopicsLong        = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"

	// Output messages
	MsgVersionFormat    = "pathvar version %s\n  commit: %s\n  built:  %s\n"
	MsgSessionResetDone = "Session %s reset\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths"
	MsgErrLoadConfig   = "failed to load configuration"
	MsgErrBadFormat    = "invalid output format %q"
	MsgErrBadShell     = "invalid shell %q"
	MsgErrBadCompare   = "invalid compare mode %q"
	MsgErrNoCommand    = "no command specified"
	MsgErrHelpNotFound = "help command not found"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (--verbose INFO, twice DEBUG, three times TRACE)"
	MsgFlagSession = "Session id (default: $PATHVAR_SESSION_ID or the parent process)"
	MsgFlagConfig  = "Config file (default: $XDG_CONFIG_HOME/pathvar/config.toml)"
	MsgFlagVar     = "Variable to edit (default: PATH)"
	MsgFlagFormat  = "Output format (auto, term, text, json, yaml, table)"
	MsgFlagShell   = "Shell dialect (bash, zsh, sh, fish)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/append-long.txt
	msgAppendLongRaw string
	MsgAppendLong    = strings.TrimSpace(msgAppendLongRaw)

	//go:embed msgs/append-example.txt
	msgAppendExampleRaw string
	MsgAppendExample    = strings.TrimRight(msgAppendExampleRaw, "\n")

	//go:embed msgs/prepend-long.txt
	msgPrependLongRaw string
	MsgPrependLong    = strings.TrimSpace(msgPrependLongRaw)

	//go:embed msgs/prepend-example.txt
	msgPrependExampleRaw string
	MsgPrependExample    = strings.TrimRight(msgPrependExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/remove-example.txt
	msgRemoveExampleRaw string
	MsgRemoveExample    = strings.TrimRight(msgRemoveExampleRaw, "\n")

	//go:embed msgs/dedupe-long.txt
	msgDedupeLongRaw string
	MsgDedupeLong    = strings.TrimSpace(msgDedupeLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/env-long.txt
	msgEnvLongRaw string
	MsgEnvLong    = strings.TrimSpace(msgEnvLongRaw)

	//go:embed msgs/env-example.txt
	msgEnvExampleRaw string
	MsgEnvExample    = strings.TrimRight(msgEnvExampleRaw, "\n")

	//go:embed msgs/session-long.txt
	msgSessionLongRaw string
	MsgSessionLong    = strings.TrimSpace(msgSessionLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
