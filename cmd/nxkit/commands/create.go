package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <app-name>",
		Short: "Generate a Vue app with Quasar wired in",
		Long: "Installs missing Quasar packages, runs the Nx Vue generator and patches " +
			"the generated main.ts and vite.config.ts so the app uses Quasar.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return c.app.Create(cmd.Context(), options(cmd), name)
		},
	}
}
