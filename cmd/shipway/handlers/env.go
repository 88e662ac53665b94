package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/shipway/internal/envfile"
)

// Env prints the managed connection settings from the shared env file.
// Secret values are masked unless showSecrets is set.
func Env(_ context.Context, target string, showSecrets bool) error {
	target, err := resolveTarget(target)
	if err != nil {
		return err
	}

	path, err := findConfigFile(target)
	if err != nil {
		return err
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	file, err := envfile.Load(cfg.EnvFilePath())
	if err != nil {
		return fmt.Errorf("no reconciled env file yet (run 'shipway provision' first): %w", err)
	}

	for _, key := range envfile.ManagedKeys() {
		value, ok := file.Lookup(key)
		if !ok {
			continue
		}
		if envfile.IsSecretKey(key) && !showSecrets {
			value = "********"
		}
		fmt.Printf("%s=%s\n", key, value)
	}
	return nil
}
