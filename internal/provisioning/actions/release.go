package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/release"
)

// Release fetches the application into a fresh timestamped directory and
// atomically switches the current-release link.
type Release struct{}

// Kind implements provisioning.Action.
func (Release) Kind() provisioning.Kind { return provisioning.KindRelease }

// Run implements provisioning.Action.
func (Release) Run(ctx *provisioning.Context) error {
	manager := release.NewManager(ctx.Config.App.BasePath)

	fetch := func(fetchCtx context.Context, locator, targetPath string) error {
		if _, err := ctx.Exec.Run(fetchCtx, "", "git", "clone", "--depth", "1", locator, targetPath); err != nil {
			return err
		}
		// The release reads its settings through the shared env file.
		return linkSharedEnv(targetPath)
	}

	rel, err := manager.Deploy(ctx, ctx.Config.App.Repository, fetch)
	if err != nil {
		return err
	}

	ctx.State.Release = rel
	ctx.Observer.Printf("Release %s is now current", rel.VersionID)
	return nil
}

// linkSharedEnv points <release>/.env at ../shared/.env so every release
// reads the same reconciled settings.
func linkSharedEnv(targetPath string) error {
	link := filepath.Join(targetPath, ".env")
	// A checked-in .env would shadow the shared one; replace it.
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear release env file: %w", err)
	}
	if err := os.Symlink(filepath.Join("..", "shared", ".env"), link); err != nil {
		return fmt.Errorf("failed to link shared env file: %w", err)
	}
	return nil
}
