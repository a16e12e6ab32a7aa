package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathvar/cmd/pathvar"
	"github.com/arthur-debert/pathvar/internal/version"
)

func main() {
	rootCmd := pathvar.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PATHVAR",
		Section: "1",
		Source:  "pathvar " + version.Version,
		Manual:  "pathvar manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
