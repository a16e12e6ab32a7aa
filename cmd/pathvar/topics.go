package pathvar

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/pathvar/pkg/cobrax/topics"
	"github.com/arthur-debert/pathvar/pkg/output"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic-aware help command on root
func initTopics(root *cobra.Command) error {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}

	opts := topics.Options{Extensions: []string{".md"}}
	if output.ColorEnabled(os.Stdout) {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	return topics.InitializeWithOptions(root, fsys, opts)
}
