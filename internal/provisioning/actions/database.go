package actions

import (
	"fmt"

	"github.com/imamik/shipway/internal/provisioning"
)

// DatabaseServer installs the database server package.
type DatabaseServer struct{}

// Kind implements provisioning.Action.
func (DatabaseServer) Kind() provisioning.Kind { return provisioning.KindDatabaseServer }

// Run installs and starts the MariaDB server.
func (DatabaseServer) Run(ctx *provisioning.Context) error {
	if _, err := ctx.Exec.Run(ctx, "", "apt-get", "install", "-y", "mariadb-server"); err != nil {
		return fmt.Errorf("database server install failed: %w", err)
	}
	if _, err := ctx.Exec.Run(ctx, "", "systemctl", "enable", "--now", "mariadb"); err != nil {
		return fmt.Errorf("database server start failed: %w", err)
	}
	return nil
}

// Database provisions the application database and grants its user.
// It reads the credentials resolved earlier in the run from shared state.
type Database struct{}

// Kind implements provisioning.Action.
func (Database) Kind() provisioning.Kind { return provisioning.KindDatabase }

// Run creates the database and user idempotently (IF NOT EXISTS), so
// re-running the pipeline against an already-provisioned host is safe.
func (Database) Run(ctx *provisioning.Context) error {
	creds := ctx.State.Credentials
	if creds == nil {
		return fmt.Errorf("no database credentials in pipeline state; env-file step must run first")
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci;", creds.Database),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'localhost' IDENTIFIED BY '%s';", creds.Username, creds.Password),
		fmt.Sprintf("ALTER USER '%s'@'localhost' IDENTIFIED BY '%s';", creds.Username, creds.Password),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON `%s`.* TO '%s'@'localhost';", creds.Database, creds.Username),
		"FLUSH PRIVILEGES;",
	}

	for _, stmt := range statements {
		if _, err := ctx.Exec.Run(ctx, "", "mysql", "-e", stmt); err != nil {
			return fmt.Errorf("database provisioning failed: %w", err)
		}
	}
	return nil
}
