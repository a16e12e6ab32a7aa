package pathvar

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pathvar/internal/version"
	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/arthur-debert/pathvar/pkg/logging"
	"github.com/arthur-debert/pathvar/pkg/output"
	"github.com/arthur-debert/pathvar/pkg/pathvar"
	"github.com/arthur-debert/pathvar/pkg/shell"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "pathvar",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags. -v is taken by --var, so verbosity is long-only.
	rootCmd.PersistentFlags().CountVar(&opts.verbosity, "verbose", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.sessionID, "session", "", MsgFlagSession)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "session",
		Title: "SESSION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newMutateCmd(opts, pathvar.OpAppend, MsgAppendShort, MsgAppendLong, MsgAppendExample))
	rootCmd.AddCommand(newMutateCmd(opts, pathvar.OpPrepend, MsgPrependShort, MsgPrependLong, MsgPrependExample))
	rootCmd.AddCommand(newMutateCmd(opts, pathvar.OpRemove, MsgRemoveShort, MsgRemoveLong, MsgRemoveExample))
	rootCmd.AddCommand(newDedupeCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newEnvCmd(opts))
	rootCmd.AddCommand(newSessionCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// newMutateCmd builds append, prepend and remove, which differ only in the
// operation they run
func newMutateCmd(opts *rootOptions, op pathvar.Operation, short, long, example string) *cobra.Command {
	var variable string

	cmd := &cobra.Command{
		Use:     op.String() + " <path>",
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}

			log.Info().
				Str("operation", op.String()).
				Str("variable", variable).
				Str("path", args[0]).
				Msg("Running pathvar operation")

			_, err = rt.engine.Run(op, pathvar.Request{
				Var:  variable,
				Path: pathvar.PathArg(args[0]),
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&variable, "var", "v", "", MsgFlagVar)

	return cmd
}

func newDedupeCmd(opts *rootOptions) *cobra.Command {
	var variable string

	cmd := &cobra.Command{
		Use:     "dedupe",
		Aliases: []string{"deduplicate"},
		Short:   MsgDedupeShort,
		Long:    MsgDedupeLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			return rt.engine.Dedupe(variable)
		},
	}

	cmd.Flags().StringVarP(&variable, "var", "v", "", MsgFlagVar)

	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		variable string
		format   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = rt.cfg.Output.Format
			}
			f, err := output.ParseFormat(format)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrBadFormat, format)
			}

			entries, err := rt.engine.List(variable)
			if err != nil {
				return err
			}

			name := variable
			if name == "" {
				name = rt.cfg.Pathvar.Variable
			}

			w := cmd.OutOrStdout()
			return output.RenderList(w, output.Resolve(f, asFile(w)), output.ListDocument{
				Variable:  name,
				Separator: string(rt.engine.Separator()),
				Entries:   entries,
			})
		},
	}

	cmd.Flags().StringVarP(&variable, "var", "v", "", MsgFlagVar)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newEnvCmd(opts *rootOptions) *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:     "env",
		Short:   MsgEnvShort,
		Long:    MsgEnvLong,
		Example: MsgEnvExample,
		Args:    cobra.NoArgs,
		GroupID: "session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("shell") {
				shellName = rt.cfg.Shell.Dialect
			}
			dialect, err := shell.ParseDialect(shellName)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrBadShell, shellName)
			}

			script := shell.Render(dialect, rt.session.Overrides(), rt.engine.Separator())
			_, err = io.WriteString(cmd.OutOrStdout(), script)
			return err
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "bash", MsgFlagShell)

	return cmd
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Short:   MsgSessionShort,
		Long:    MsgSessionLong,
		GroupID: "session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgSessionPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rt.session.Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: MsgSessionResetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			dropped := rt.session.Names()
			if err := rt.session.Reset(); err != nil {
				return err
			}
			logger := logging.GetLogger("pathvar.session")
			logger.Info().
				Str("session", rt.session.ID()).
				Strs("variables", dropped).
				Msg("session reset")
			fmt.Fprintf(cmd.ErrOrStderr(), MsgSessionResetDone, rt.session.ID())
			return nil
		},
	})

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, MsgErrHelpNotFound)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// asFile returns w as an *os.File when it is one, for terminal detection
func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
