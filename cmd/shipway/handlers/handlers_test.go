package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/util/prerequisites"
)

// saveAndRestoreFactories snapshots the injection points and restores them
// when the test finishes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origExec := newExecRunner
	origLoad := loadConfigFile
	origFind := findConfigFile
	origWrite := writeConfigFile
	origWizard := runWizard
	origInteractive := isInteractive
	origPipeline := runPipeline
	origGetwd := getwd
	origPrereqs := checkPrerequisites

	// Host tool availability must not leak into tests.
	checkPrerequisites = func([]prerequisites.Tool) error { return nil }

	t.Cleanup(func() {
		newExecRunner = origExec
		loadConfigFile = origLoad
		findConfigFile = origFind
		writeConfigFile = origWrite
		runWizard = origWizard
		isInteractive = origInteractive
		runPipeline = origPipeline
		getwd = origGetwd
		checkPrerequisites = origPrereqs
	})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{
			Name:       "shop",
			Repository: "git@example.com:acme/shop.git",
			Domain:     "shop.example.com",
			BasePath:   filepath.Join(t.TempDir(), "srv", "shop"),
		},
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
	return cfg
}

func writeTestConfig(t *testing.T, dir string) {
	t.Helper()
	cfg := testConfig(t)
	require.NoError(t, config.Write(cfg, filepath.Join(dir, config.DefaultConfigFilename)))
}

// completedRun fabricates a successful run for the given steps.
func completedRun(steps []provisioning.Step) *provisioning.Run {
	run := &provisioning.Run{Steps: steps, Status: provisioning.StatusCompleted}
	for _, step := range steps {
		run.Results = append(run.Results, provisioning.StepResult{
			StepName: step.Name,
			Outcome:  provisioning.OutcomeSucceeded,
		})
	}
	return run
}

func TestResolveTarget_DefaultsToWorkingDirectory(t *testing.T) {
	saveAndRestoreFactories(t)
	getwd = func() (string, error) { return "/work/dir", nil }

	target, err := resolveTarget("")
	require.NoError(t, err)
	assert.Equal(t, "/work/dir", target)
}

func TestResolveTarget_ExplicitWins(t *testing.T) {
	saveAndRestoreFactories(t)
	getwd = func() (string, error) { return "", errors.New("must not be called") }

	target, err := resolveTarget("/srv/shop")
	require.NoError(t, err)
	assert.Equal(t, "/srv/shop", target)
}

func TestResolveConfig_LoadsExistingFile(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)

	cfg, err := resolveConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "shop", cfg.App.Name)
}

func TestResolveConfig_NonInteractiveMissingFile(t *testing.T) {
	saveAndRestoreFactories(t)
	isInteractive = func() bool { return false }

	_, err := resolveConfig(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipway init")
}

func TestResolveConfig_WizardFallback(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	isInteractive = func() bool { return true }

	wizardCfg := testConfig(t)
	runWizard = func(context.Context) (*config.Config, error) { return wizardCfg, nil }

	cfg, err := resolveConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, wizardCfg, cfg)

	// The wizard result is persisted for the next invocation.
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigFilename))
}

func TestProvision_ExecutesFullStepList(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)
	isInteractive = func() bool { return false }

	var captured []provisioning.Step
	runPipeline = func(_ *provisioning.Context, steps []provisioning.Step) *provisioning.Run {
		captured = steps
		return completedRun(steps)
	}

	require.NoError(t, Provision(context.Background(), dir))

	names := make([]string, 0, len(captured))
	for _, step := range captured {
		names = append(names, step.Name)
	}
	assert.Equal(t, []string{
		"Deploy key",
		"Runtime",
		"Database server",
		"Environment file",
		"Database",
		"Release",
		"Web server",
		"TLS certificate",
		"Supervisor",
	}, names)

	// Only the certificate step is best-effort.
	for _, step := range captured {
		assert.Equal(t, step.Name != "TLS certificate", step.Required, "step %s", step.Name)
	}
}

func TestProvision_AbortedRunSurfacesFailure(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)
	isInteractive = func() bool { return false }

	boom := fmt.Errorf("Release step failed: fetch denied")
	runPipeline = func(_ *provisioning.Context, steps []provisioning.Step) *provisioning.Run {
		return &provisioning.Run{
			Steps:  steps,
			Status: provisioning.StatusAborted,
			Results: []provisioning.StepResult{
				{StepName: "Release", Outcome: provisioning.OutcomeFailed, Err: boom},
			},
		}
	}

	err := Provision(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "provisioning aborted")
}

func TestProvision_MissingHostToolsBlockTheRun(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)
	isInteractive = func() bool { return false }
	checkPrerequisites = func([]prerequisites.Tool) error {
		return errors.New("missing required tools: apt-get")
	}
	runPipeline = func(_ *provisioning.Context, steps []provisioning.Step) *provisioning.Run {
		t.Fatal("pipeline must not run when prerequisites are missing")
		return nil
	}

	err := Provision(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apt-get")
}

func TestDeploy_ExecutesShortStepList(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)
	isInteractive = func() bool { return false }

	var captured []provisioning.Step
	runPipeline = func(_ *provisioning.Context, steps []provisioning.Step) *provisioning.Run {
		captured = steps
		return completedRun(steps)
	}

	require.NoError(t, Deploy(context.Background(), dir))

	require.Len(t, captured, 2)
	assert.Equal(t, "Environment file", captured[0].Name)
	assert.Equal(t, "Release", captured[1].Name)
	assert.True(t, captured[0].Required)
	assert.True(t, captured[1].Required)
}

func TestNewRegistry_CoversAllKinds(t *testing.T) {
	t.Parallel()
	r := newRegistry()

	kinds := []provisioning.Kind{
		provisioning.KindDeployKey,
		provisioning.KindRuntime,
		provisioning.KindDatabaseServer,
		provisioning.KindEnvFile,
		provisioning.KindDatabase,
		provisioning.KindRelease,
		provisioning.KindWebServer,
		provisioning.KindCertificate,
		provisioning.KindSupervisor,
	}
	for _, kind := range kinds {
		_, err := r.Get(kind)
		assert.NoError(t, err, "kind %s", kind)
	}
}

func TestEnv_ErrorsBeforeFirstProvision(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)

	err := Env(context.Background(), dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipway provision")
}

func TestEnv_ReadsReconciledFile(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	cfg := testConfig(t)
	require.NoError(t, config.Write(cfg, filepath.Join(dir, config.DefaultConfigFilename)))

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.EnvFilePath()), 0o755))
	env := "DB_CONNECTION=mysql\nDB_USERNAME=shop\nDB_PASSWORD=hunter2\nDB_DATABASE=shop\n"
	require.NoError(t, os.WriteFile(cfg.EnvFilePath(), []byte(env), 0o600))

	require.NoError(t, Env(context.Background(), dir, false))
	require.NoError(t, Env(context.Background(), dir, true))
}

func TestInit_RequiresTerminal(t *testing.T) {
	saveAndRestoreFactories(t)
	isInteractive = func() bool { return false }

	err := Init(context.Background(), t.TempDir(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	writeTestConfig(t, dir)
	isInteractive = func() bool { return true }

	err := Init(context.Background(), dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_WritesWizardResult(t *testing.T) {
	saveAndRestoreFactories(t)
	dir := t.TempDir()
	isInteractive = func() bool { return true }
	runWizard = func(context.Context) (*config.Config, error) { return testConfig(t), nil }

	require.NoError(t, Init(context.Background(), dir, false))
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigFilename))
}
