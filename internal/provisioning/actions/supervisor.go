package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/release"
)

// programTemplate is the supervisor program stanza for the application's
// queue worker. The command runs through the current-release link so a
// deploy only needs a supervisor restart, not a rewrite.
const programTemplate = `[program:{{name}}-worker]
command=php {{root}}/artisan queue:work --tries=3
directory={{root}}
autostart=true
autorestart=true
user=www-data
stdout_logfile=/var/log/{{name}}-worker.log
redirect_stderr=true
`

// Supervisor registers the application's worker with the process manager.
type Supervisor struct {
	// ConfDir is where program files are written. Defaults to the Debian
	// supervisor layout; tests point it at a temp dir.
	ConfDir string
}

// Kind implements provisioning.Action.
func (Supervisor) Kind() provisioning.Kind { return provisioning.KindSupervisor }

// Run implements provisioning.Action.
func (s Supervisor) Run(ctx *provisioning.Context) error {
	if _, err := ctx.Exec.Run(ctx, "", "apt-get", "install", "-y", "supervisor"); err != nil {
		return fmt.Errorf("supervisor install failed: %w", err)
	}

	confDir := s.ConfDir
	if confDir == "" {
		confDir = "/etc/supervisor/conf.d"
	}

	name := ctx.Config.App.Name
	root := filepath.Join(ctx.Config.App.BasePath, release.CurrentLinkName)
	program := strings.NewReplacer("{{name}}", name, "{{root}}", root).Replace(programTemplate)

	path := filepath.Join(confDir, name+"-worker.conf")
	if err := os.WriteFile(path, []byte(program), 0o644); err != nil {
		return fmt.Errorf("failed to write supervisor program: %w", err)
	}

	if _, err := ctx.Exec.Run(ctx, "", "supervisorctl", "reread"); err != nil {
		return fmt.Errorf("supervisor reread failed: %w", err)
	}
	if _, err := ctx.Exec.Run(ctx, "", "supervisorctl", "update"); err != nil {
		return fmt.Errorf("supervisor update failed: %w", err)
	}
	return nil
}
