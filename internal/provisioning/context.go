package provisioning

import (
	"context"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/envfile"
	"github.com/imamik/shipway/internal/platform/exec"
	"github.com/imamik/shipway/internal/release"
)

// State holds the shared results of pipeline steps. It is progressively
// populated as steps complete and read by later steps that depend on
// earlier results.
type State struct {
	// Credentials are the database credentials in effect for this run,
	// extracted from the existing env file or freshly generated.
	Credentials *envfile.Credentials

	// Release is the release produced by the deploy step.
	Release *release.Release

	// DeployKeyPublic is the OpenSSH-format public half of the generated
	// deploy key, for display after the run.
	DeployKeyPublic []byte
}

// Context wraps all dependencies and state needed by pipeline steps.
// The working directory is carried explicitly; actions never rely on
// ambient process state.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Exec     exec.Runner
	Observer Observer

	// WorkDir is the target path the CLI was invoked for. External
	// commands run relative to it unless an action chooses otherwise.
	WorkDir string
}

// NewContext creates a pipeline context with a console observer.
func NewContext(ctx context.Context, cfg *config.Config, runner exec.Runner, workDir string) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    &State{},
		Exec:     runner,
		Observer: NewConsoleObserver(),
		WorkDir:  workDir,
	}
}
