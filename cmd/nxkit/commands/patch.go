package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch <app-name>",
		Short: "Wire Quasar into an existing Vue app",
		Long: "Re-applies the Quasar changes to main.ts and vite.config.ts of an existing app. " +
			"Files left untouched since the last patch are reported as up to date.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return c.app.Patch(cmd.Context(), options(cmd), name)
		},
	}
}
