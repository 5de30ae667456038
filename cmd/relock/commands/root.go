// Package commands implements the CLI commands for the relock tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/adapters/detector"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/build"
	"go.trai.ch/relock/internal/core/ports"
)

// CLI represents the command line interface for relock.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Update(ctx context.Context, opts app.UpdateOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "relock",
		Short:         "Regenerate Python lockfiles from pyproject.toml",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	// The bare invocation performs an update.
	addUpdateFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.runUpdate

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// applyJSON switches the logger to JSON output. Without an explicit flag the
// format follows the terminal: pretty on a TTY, JSON lines when piped.
func (c *CLI) applyJSON(cmd *cobra.Command) {
	jsonOut, _ := cmd.Flags().GetBool("json")
	if !cmd.Flags().Changed("json") {
		jsonOut = !detector.IsTTY()
	}
	if !jsonOut {
		return
	}
	if jl, ok := c.logger.(interface{ SetJSON(bool) }); ok {
		jl.SetJSON(true)
	}
}
