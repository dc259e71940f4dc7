package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/filesystem"
	"github.com/jakoblorz/go-mcpc/internal/git"
	"github.com/jakoblorz/go-mcpc/internal/logger"
	"github.com/jakoblorz/go-mcpc/internal/runner"
	"github.com/jakoblorz/go-mcpc/internal/tui"
)

// errReported marks errors whose message has already been printed
var errReported = errors.New("reported")

// reported wraps err so Execute exits non-zero without printing it again
func reported(err error) error {
	return errors.Mark(err, errReported)
}

// NewRootCommand creates the root command. Running it without a subcommand
// creates a project. A nil gitClient selects the backend from configuration.
func NewRootCommand(fs filesystem.FileSystem, r runner.Runner, gitClient git.GitClient) *cobra.Command {
	return newRootCommand(&CreateCommand{
		fs:         fs,
		runner:     r,
		git:        gitClient,
		isTerminal: stdinIsTerminal,
	})
}

func newRootCommand(create *CreateCommand) *cobra.Command {
	var (
		verbosity  int
		jsonOutput bool
		configPath string
	)
	create.configPath = &configPath

	rootCmd := &cobra.Command{
		Use:   "mcpc [project-name]",
		Short: "Create Model Context Protocol server projects",
		Long: `Create a new MCP server project in Python or TypeScript.

The project directory is populated with a working weather server, its
dependencies are installed with the chosen package manager and a git
repository is initialized.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(verbosity, jsonOutput)
		},
		RunE: create.Run,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Diagnostic logging on stderr (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "log-json", false, "Write diagnostic logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/mcpc/config.yaml)")
	create.bindFlags(rootCmd)

	rootCmd.AddCommand(NewDoctorCommand(create.fs, create.runner, &configPath))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command and prints any error that was not already
// reported.
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	r := runner.NewOSRunner(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCommand(fs, r, nil)
	err := rootCmd.ExecuteContext(ctx)
	logger.Sync()

	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	if errors.Is(err, errReported) {
		return
	}
	tui.NewConsole(io.Discard, w).Error(err)
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
