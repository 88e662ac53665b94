package wizard

import (
	"context"

	"github.com/imamik/shipway/internal/config"
)

// Result holds the wizard's answers before they are folded into a Config.
type Result struct {
	AppName    string
	Repository string
	Domain     string
	BasePath   string

	RuntimeVersion string

	DatabaseName     string
	DatabaseUsername string

	TLSEnabled bool
	TLSEmail   string
}

// Run executes the full wizard flow and returns the resolved configuration.
func Run(ctx context.Context) (*config.Config, error) {
	result := &Result{}

	if err := runApplicationGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runRuntimeGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runDatabaseGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runTLSGroup(ctx, result); err != nil {
		return nil, err
	}

	return BuildConfig(result), nil
}

// BuildConfig creates a Config from the wizard result. Empty answers fall
// through to the config defaults.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		App: config.AppConfig{
			Name:       result.AppName,
			Repository: result.Repository,
			Domain:     result.Domain,
			BasePath:   result.BasePath,
		},
		Runtime: config.RuntimeConfig{
			Version: result.RuntimeVersion,
		},
		Database: config.DatabaseConfig{
			Name:     result.DatabaseName,
			Username: result.DatabaseUsername,
		},
		TLS: config.TLSConfig{
			Enabled: result.TLSEnabled,
			Email:   result.TLSEmail,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}
