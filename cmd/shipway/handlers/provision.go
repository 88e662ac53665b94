// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/config/wizard"
	"github.com/imamik/shipway/internal/platform/exec"
	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/provisioning/actions"
	"github.com/imamik/shipway/internal/ui/tui"
	"github.com/imamik/shipway/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newExecRunner creates the external command runner.
	newExecRunner = func() exec.Runner { return exec.NewSystemRunner() }

	// loadConfigFile loads config from file.
	loadConfigFile = config.Load

	// findConfigFile locates the config file in the target directory.
	findConfigFile = config.FindConfigFile

	// writeConfigFile persists a config built by the wizard.
	writeConfigFile = config.Write

	// runWizard collects missing configuration interactively.
	runWizard = wizard.Run

	// isInteractive reports whether stdout is a terminal.
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runPipeline executes the step pipeline, with a TUI when interactive.
	runPipeline = executePipeline

	// getwd resolves the default target directory.
	getwd = os.Getwd

	// checkPrerequisites verifies the host tools a pipeline shells out to.
	checkPrerequisites = func(tools []prerequisites.Tool) error {
		return prerequisites.Check(tools).Err()
	}
)

// Provision runs the full provisioning pipeline against the target
// directory: system services, credentials, and the first release.
//
// The target defaults to the current working directory so a driving
// script can call `shipway provision` with no arguments. Configuration is
// read from shipway.yaml in the target; on a terminal a missing file
// falls back to the interactive wizard.
func Provision(ctx context.Context, target string) error {
	target, err := resolveTarget(target)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(ctx, target)
	if err != nil {
		return err
	}

	if err := checkPrerequisites(prerequisites.HostTools()); err != nil {
		return err
	}

	steps, err := provisionSteps(newRegistry())
	if err != nil {
		return err
	}

	return executeRun(ctx, cfg, steps, target)
}

// resolveTarget defaults an empty target to the current working directory.
func resolveTarget(target string) (string, error) {
	if target != "" {
		return target, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return cwd, nil
}

// resolveConfig loads shipway.yaml from the target, or runs the wizard
// when the file is missing and the session is interactive.
func resolveConfig(ctx context.Context, target string) (*config.Config, error) {
	path, err := findConfigFile(target)
	if err == nil {
		return loadConfigFile(path)
	}

	if !isInteractive() {
		return nil, fmt.Errorf("no config file found in %s: %w (run 'shipway init' to create one)", target, err)
	}

	cfg, err := runWizard(ctx)
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	if err := writeConfigFile(cfg, configPath(target)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRegistry wires the closed set of provisioning actions.
func newRegistry() *provisioning.Registry {
	r := provisioning.NewRegistry()
	r.MustRegister(actions.DeployKey{})
	r.MustRegister(actions.Runtime{})
	r.MustRegister(actions.DatabaseServer{})
	r.MustRegister(actions.EnvFile{})
	r.MustRegister(actions.Database{})
	r.MustRegister(actions.Release{})
	r.MustRegister(actions.WebServer{})
	r.MustRegister(actions.Certificate{})
	r.MustRegister(actions.Supervisor{})
	return r
}

// provisionSteps is the full pipeline, in dependency order. The TLS step
// is best-effort: a certificate failure (rate limit, DNS not yet routed)
// must not leave the host half-provisioned.
func provisionSteps(r *provisioning.Registry) ([]provisioning.Step, error) {
	specs := []struct {
		name     string
		kind     provisioning.Kind
		required bool
	}{
		{"Deploy key", provisioning.KindDeployKey, true},
		{"Runtime", provisioning.KindRuntime, true},
		{"Database server", provisioning.KindDatabaseServer, true},
		{"Environment file", provisioning.KindEnvFile, true},
		{"Database", provisioning.KindDatabase, true},
		{"Release", provisioning.KindRelease, true},
		{"Web server", provisioning.KindWebServer, true},
		{"TLS certificate", provisioning.KindCertificate, false},
		{"Supervisor", provisioning.KindSupervisor, true},
	}
	return buildSteps(r, specs)
}

func buildSteps(r *provisioning.Registry, specs []struct {
	name     string
	kind     provisioning.Kind
	required bool
}) ([]provisioning.Step, error) {
	steps := make([]provisioning.Step, 0, len(specs))
	for _, spec := range specs {
		step, err := r.Step(spec.name, spec.kind, spec.required)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// executeRun runs the steps and reports the outcome.
func executeRun(ctx context.Context, cfg *config.Config, steps []provisioning.Step, target string) error {
	pctx := provisioning.NewContext(ctx, cfg, newExecRunner(), target)

	run := runPipeline(pctx, steps)

	fmt.Println(tui.RenderSummary(run))
	if key := pctx.State.DeployKeyPublic; len(key) > 0 {
		fmt.Printf("Deploy key (grant it read access to %s):\n%s", cfg.App.Repository, key)
	}

	if err := run.Err(); err != nil {
		return fmt.Errorf("provisioning aborted: %w", err)
	}
	return nil
}

// executePipeline runs the pipeline, with a live progress display on a
// terminal and plain console logging otherwise.
func executePipeline(pctx *provisioning.Context, steps []provisioning.Step) *provisioning.Run {
	if !isInteractive() {
		return provisioning.NewRunner().Run(pctx, steps)
	}

	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name)
	}
	program := tea.NewProgram(tui.NewModel("shipway · "+pctx.Config.App.Name, names))

	// Log lines would garble the TUI; events flow through the forwarder only.
	pctx.Observer = &tui.Forwarder{Send: program.Send}

	done := make(chan *provisioning.Run, 1)
	go func() {
		run := provisioning.NewRunner().Run(pctx, steps)
		program.Send(tui.DoneMsg{Status: run.Status})
		done <- run
	}()

	// A launched step is never interrupted: even if the user quits the
	// display early, wait for the pipeline to finish.
	_, _ = program.Run()
	return <-done
}

func configPath(target string) string {
	return filepath.Join(target, config.DefaultConfigFilename)
}
