// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the shipway CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipway",
		Short: "Provision a server and deploy an application onto it",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Provision())
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Env())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
