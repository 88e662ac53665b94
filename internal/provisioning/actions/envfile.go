package actions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/shipway/internal/envfile"
	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/util/secret"
)

// EnvFile reconciles database credentials into the shared env file.
//
// Credentials already present in the file (under any known alias) are kept;
// otherwise a fresh set is generated from the configuration plus a random
// password. Either way the managed namespace is rewritten canonically and
// everything else in the file is preserved.
type EnvFile struct{}

// Kind implements provisioning.Action.
func (EnvFile) Kind() provisioning.Kind { return provisioning.KindEnvFile }

// Run implements provisioning.Action.
func (EnvFile) Run(ctx *provisioning.Context) error {
	path := ctx.Config.EnvFilePath()

	creds, err := envfile.ExtractFromPath(path)
	switch {
	case err == nil:
		ctx.Observer.Printf("Reusing database credentials from %s", path)
	case errors.Is(err, envfile.ErrNoCredentials):
		creds, err = generateCredentials(ctx)
		if err != nil {
			return err
		}
		ctx.Observer.Printf("Generated new database credentials for %s", creds.Database)
	default:
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create shared directory: %w", err)
	}
	if err := envfile.Reconcile(path, creds); err != nil {
		return err
	}

	ctx.State.Credentials = creds
	return nil
}

func generateCredentials(ctx *provisioning.Context) (*envfile.Credentials, error) {
	password, err := secret.GeneratePassword(secret.DefaultPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate database password: %w", err)
	}
	return &envfile.Credentials{
		Username: ctx.Config.Database.Username,
		Password: password,
		Database: ctx.Config.Database.Name,
	}, nil
}
