package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/shipway/cmd/shipway/handlers"
)

// Provision returns the command that runs the full provisioning pipeline.
//
// The optional positional argument is the target directory holding
// shipway.yaml; it defaults to the current working directory so driving
// scripts can invoke `shipway provision /path/to/app` non-interactively.
func Provision() *cobra.Command {
	return &cobra.Command{
		Use:   "provision [path]",
		Short: "Provision the server and deploy the application",
		Long: `Provision this server for the application and deploy it.

Installs the runtime, database server, web server, TLS certificate, and
process manager, reconciles database credentials into the shared env
file, and deploys the application as a timestamped release.

Examples:
  # Provision using shipway.yaml in the current directory
  shipway provision

  # Provision a specific target directory
  shipway provision /srv/shop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return handlers.Provision(cmd.Context(), target)
		},
	}
}
