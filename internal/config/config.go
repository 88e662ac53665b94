package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// appNameRegex validates app name format: 1-32 lowercase alphanumeric with hyphens.
var appNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// Config is the resolved shipway configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
	Database DatabaseConfig `yaml:"database"`
	Web      WebConfig      `yaml:"web"`
	TLS      TLSConfig      `yaml:"tls"`
}

// AppConfig identifies the application being provisioned and deployed.
type AppConfig struct {
	// Name is used for the database, system user, and supervisor program names.
	Name string `yaml:"name"`

	// Repository is the locator handed to the fetch action unmodified.
	Repository string `yaml:"repository"`

	// Domain is the public hostname served by the web server.
	Domain string `yaml:"domain"`

	// BasePath is the deployment root holding releases and the current link.
	// Defaults to /srv/<name>.
	BasePath string `yaml:"base_path"`
}

// RuntimeConfig selects the application runtime to install.
type RuntimeConfig struct {
	// Version of the PHP runtime, e.g. "8.3".
	Version string `yaml:"version"`
}

// DatabaseConfig names the application database and its user.
type DatabaseConfig struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
}

// WebConfig holds web server settings.
type WebConfig struct {
	Port int `yaml:"port"`
}

// TLSConfig controls certificate issuance.
type TLSConfig struct {
	Enabled bool   `yaml:"enabled"`
	Email   string `yaml:"email"`
}

// ApplyDefaults fills unset fields with their defaults. Name-derived
// defaults need App.Name, so validation order is Name first.
func (c *Config) ApplyDefaults() {
	if c.App.BasePath == "" && c.App.Name != "" {
		c.App.BasePath = filepath.Join("/srv", c.App.Name)
	}
	if c.Runtime.Version == "" {
		c.Runtime.Version = "8.3"
	}
	if c.Database.Name == "" {
		c.Database.Name = sanitizeIdentifier(c.App.Name)
	}
	if c.Database.Username == "" {
		c.Database.Username = c.Database.Name
	}
	if c.Web.Port == 0 {
		c.Web.Port = 80
	}
}

// Validate checks the configuration for completeness and format.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if !appNameRegex.MatchString(c.App.Name) {
		return fmt.Errorf("app.name %q must be 1-32 lowercase alphanumeric characters or hyphens", c.App.Name)
	}
	if c.App.Repository == "" {
		return fmt.Errorf("app.repository is required")
	}
	if c.App.Domain == "" {
		return fmt.Errorf("app.domain is required")
	}
	if c.App.BasePath == "" {
		return fmt.Errorf("app.base_path is required")
	}
	if c.Web.Port < 1 || c.Web.Port > 65535 {
		return fmt.Errorf("web.port %d out of range", c.Web.Port)
	}
	if c.TLS.Enabled && c.TLS.Email == "" {
		return fmt.Errorf("tls.email is required when tls is enabled")
	}
	return nil
}

// EnvFilePath returns the path of the shared env file all releases read.
func (c *Config) EnvFilePath() string {
	return filepath.Join(c.App.BasePath, "shared", ".env")
}

// DeployKeyPath returns the path the deploy private key is written to.
func (c *Config) DeployKeyPath() string {
	return filepath.Join(c.App.BasePath, "deploy_key")
}

// sanitizeIdentifier turns an app name into a safe database identifier.
func sanitizeIdentifier(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
