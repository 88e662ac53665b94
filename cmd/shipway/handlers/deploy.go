package handlers

import (
	"context"

	"github.com/imamik/shipway/internal/provisioning"
	"github.com/imamik/shipway/internal/util/prerequisites"
)

// Deploy runs the release-only pipeline: reconcile the shared env file,
// fetch a fresh release, and switch the current link. System services are
// assumed provisioned.
func Deploy(ctx context.Context, target string) error {
	target, err := resolveTarget(target)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(ctx, target)
	if err != nil {
		return err
	}

	if err := checkPrerequisites(prerequisites.DeployTools()); err != nil {
		return err
	}

	steps, err := deploySteps(newRegistry())
	if err != nil {
		return err
	}

	return executeRun(ctx, cfg, steps, target)
}

// deploySteps is the short pipeline used for repeat deployments.
func deploySteps(r *provisioning.Registry) ([]provisioning.Step, error) {
	specs := []struct {
		name     string
		kind     provisioning.Kind
		required bool
	}{
		{"Environment file", provisioning.KindEnvFile, true},
		{"Release", provisioning.KindRelease, true},
	}
	return buildSteps(r, specs)
}
