package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/shipway/cmd/shipway/handlers"
)

// Init returns the command that creates a shipway.yaml interactively.
func Init() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a configuration file interactively",
		Long: `Create a shipway.yaml configuration file.

Walks through the application, runtime, database, and TLS settings and
writes the result to the target directory (default: current directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return handlers.Init(cmd.Context(), target, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}
