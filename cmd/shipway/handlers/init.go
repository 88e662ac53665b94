package handlers

import (
	"context"
	"fmt"
	"os"
)

// Init creates a shipway.yaml in the target directory via the wizard.
func Init(ctx context.Context, target string, force bool) error {
	if !isInteractive() {
		return fmt.Errorf("init requires a terminal; write %s by hand for scripted setups", "shipway.yaml")
	}

	target, err := resolveTarget(target)
	if err != nil {
		return err
	}

	path := configPath(target)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	cfg, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	if err := writeConfigFile(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Next: run 'shipway provision' to provision this server.")
	return nil
}
