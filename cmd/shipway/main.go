// Package main is the entry point for the shipway CLI.
//
// shipway provisions a single host for a PHP application (runtime,
// database, web server, TLS certificate, process manager) and deploys
// the application as atomically-switched, timestamped releases.
//
// Commands: init, provision, deploy, env, version, completion.
//
// For detailed usage information, run:
//
//	shipway --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/shipway/cmd/shipway/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
