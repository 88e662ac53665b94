package exec

import (
	"context"
	"fmt"
	osexec "os/exec"
	"strings"
)

// Runner executes external commands. The working directory is a parameter
// on every call; implementations must not depend on the process's ambient
// current directory.
type Runner interface {
	// Run executes name with args in dir (empty dir means the process
	// default) and returns combined stdout+stderr output.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// SystemRunner runs commands via os/exec.
type SystemRunner struct{}

// NewSystemRunner creates a runner backed by the host system.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{}
}

// Run implements Runner. Command failures carry the command line and its
// output so pipeline logs can surface exactly what went wrong.
func (r *SystemRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("command %q failed: %w\nOutput: %s",
			name+" "+strings.Join(args, " "), err, string(output))
	}
	return string(output), nil
}
