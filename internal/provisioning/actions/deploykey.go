package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/util/keygen"
)

// DeployKey generates the SSH deploy key pair the fetch step authenticates
// with. An existing key is kept; the step then reports skipped.
type DeployKey struct{}

// Kind implements provisioning.Action.
func (DeployKey) Kind() provisioning.Kind { return provisioning.KindDeployKey }

// Run implements provisioning.Action.
func (DeployKey) Run(ctx *provisioning.Context) error {
	path := ctx.Config.DeployKeyPath()

	if existing, err := os.ReadFile(path + ".pub"); err == nil {
		ctx.State.DeployKeyPublic = existing
		return fmt.Errorf("deploy key already exists at %s: %w", path, provisioning.ErrSkipped)
	}

	pair, err := keygen.GenerateDeployKey("deploy@" + ctx.Config.App.Domain)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(path, pair.PrivateKey, 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(path+".pub", pair.PublicKey, 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	ctx.State.DeployKeyPublic = pair.PublicKey
	return nil
}
