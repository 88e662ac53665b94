package actions

import (
	"fmt"

	"github.com/imamik/shipway/internal/provisioning"
)

// runtimePackages are the PHP packages installed for a version, in apt
// naming. The fpm package carries the service the web server proxies to.
var runtimePackages = []string{"fpm", "cli", "mysql", "mbstring", "xml", "curl", "zip"}

// Runtime installs the application runtime via the system package manager.
type Runtime struct{}

// Kind implements provisioning.Action.
func (Runtime) Kind() provisioning.Kind { return provisioning.KindRuntime }

// Run installs the configured PHP version and its extensions.
func (Runtime) Run(ctx *provisioning.Context) error {
	version := ctx.Config.Runtime.Version

	args := []string{"install", "-y"}
	for _, pkg := range runtimePackages {
		args = append(args, fmt.Sprintf("php%s-%s", version, pkg))
	}

	if _, err := ctx.Exec.Run(ctx, "", "apt-get", "update"); err != nil {
		return fmt.Errorf("package index update failed: %w", err)
	}
	if _, err := ctx.Exec.Run(ctx, "", "apt-get", args...); err != nil {
		return fmt.Errorf("runtime install failed: %w", err)
	}
	return nil
}
