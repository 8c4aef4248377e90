// Package commands implements the CLI commands for nxkit.
package commands

import (
	"context"
	"io"

	"github.com/cpavlidis/nx-monorepo/internal/app"
	"github.com/cpavlidis/nx-monorepo/internal/build"
	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for nxkit.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nxkit",
		Short:         "Scaffold and run Quasar apps in an Nx workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("cwd", "C", "", "Workspace root (defaults to the current directory)")
	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Configuration file, relative to the workspace root")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print external commands instead of running them")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newPatchCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newRunManyCmd())
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

// SetOutput sets the writers used for command output and errors.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

// options reads the persistent flags shared by every subcommand.
func options(cmd *cobra.Command) app.RunOptions {
	root, _ := cmd.Flags().GetString("cwd")
	config, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return app.RunOptions{
		Root:       root,
		ConfigPath: config,
		DryRun:     dryRun,
	}
}
