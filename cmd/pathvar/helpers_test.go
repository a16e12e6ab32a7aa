package pathvar

import (
	"bytes"
)

// cliResult captures one invocation of the root command
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// run executes the command tree with args
func run(args ...string) cliResult {
	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
