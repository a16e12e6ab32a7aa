package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathvar/cmd/pathvar"
	"github.com/arthur-debert/pathvar/pkg/output"
)

func main() {
	rootCmd := pathvar.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// One diagnostic line on stderr, nothing on stdout
		fmt.Fprintln(os.Stderr, output.RenderError(err, output.ColorEnabled(os.Stderr)))
		os.Exit(1)
	}
}
