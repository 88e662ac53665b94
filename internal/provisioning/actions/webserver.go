package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/release"
)

// vhostTemplate is the nginx server block rendered per application.
// The root points through the stable current-release link, so a release
// switch is picked up without a reload.
const vhostTemplate = `server {
    listen {{port}};
    server_name {{domain}};
    root {{root}}/public;

    index index.php index.html;

    location / {
        try_files $uri $uri/ /index.php?$query_string;
    }

    location ~ \.php$ {
        include snippets/fastcgi-php.conf;
        fastcgi_pass unix:/run/php/php{{runtime}}-fpm.sock;
    }
}
`

// WebServer installs nginx, writes the application's virtual host, and
// reloads the server.
type WebServer struct {
	// SitesDir is where vhost files are written. Defaults to the Debian
	// nginx layout; tests point it at a temp dir.
	SitesDir string
}

// Kind implements provisioning.Action.
func (WebServer) Kind() provisioning.Kind { return provisioning.KindWebServer }

// Run implements provisioning.Action.
func (w WebServer) Run(ctx *provisioning.Context) error {
	if _, err := ctx.Exec.Run(ctx, "", "apt-get", "install", "-y", "nginx"); err != nil {
		return fmt.Errorf("web server install failed: %w", err)
	}

	sitesDir := w.SitesDir
	if sitesDir == "" {
		sitesDir = "/etc/nginx/sites-enabled"
	}

	vhost := renderVHost(ctx)
	path := filepath.Join(sitesDir, ctx.Config.App.Domain+".conf")
	if err := os.WriteFile(path, []byte(vhost), 0o644); err != nil {
		return fmt.Errorf("failed to write vhost config: %w", err)
	}

	if _, err := ctx.Exec.Run(ctx, "", "nginx", "-t"); err != nil {
		return fmt.Errorf("vhost config rejected: %w", err)
	}
	if _, err := ctx.Exec.Run(ctx, "", "systemctl", "reload", "nginx"); err != nil {
		return fmt.Errorf("web server reload failed: %w", err)
	}
	return nil
}

func renderVHost(ctx *provisioning.Context) string {
	root := filepath.Join(ctx.Config.App.BasePath, release.CurrentLinkName)
	r := strings.NewReplacer(
		"{{port}}", fmt.Sprintf("%d", ctx.Config.Web.Port),
		"{{domain}}", ctx.Config.App.Domain,
		"{{root}}", root,
		"{{runtime}}", ctx.Config.Runtime.Version,
	)
	return r.Replace(vhostTemplate)
}
