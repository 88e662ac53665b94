package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/shipway/cmd/shipway/handlers"
)

// Env returns the command that shows the reconciled connection settings.
func Env() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "env [path]",
		Short: "Show the managed connection settings",
		Long: `Show the database connection settings from the shared env file.

Secrets are masked unless --show-secrets is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return handlers.Env(cmd.Context(), target, showSecrets)
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print secret values in clear text")

	return cmd
}
