package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/shipway/cmd/shipway/handlers"
)

// Deploy returns the command that deploys a new release without touching
// the provisioned system services.
func Deploy() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy [path]",
		Short: "Deploy a new release of the application",
		Long: `Deploy a new release of the application.

Fetches the application into a fresh timestamped release directory,
reconciles the shared env file, and atomically switches the current
release link. System services are left alone; run 'shipway provision'
for first-time setup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return handlers.Deploy(cmd.Context(), target)
		},
	}
}
