package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <project>",
		Short: "Run a target for a single project",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd)
			opts.Target, _ = cmd.Flags().GetString("target")
			return c.app.Run(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringP("target", "t", "", "Target to run (defaults to the configured target, serve)")
	return cmd
}

func (c *CLI) newRunManyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-many <project>...",
		Short: "Run a target for several projects at once",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd)
			opts.Target, _ = cmd.Flags().GetString("target")
			return c.app.RunMany(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringP("target", "t", "", "Target to run (defaults to the configured target, serve)")
	return cmd
}
