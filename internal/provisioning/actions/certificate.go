package actions

import (
	"fmt"

	"github.com/imamik/shipway/internal/provisioning"
)

// Certificate requests a TLS certificate for the configured domain via the
// ACME client. When TLS is disabled the step reports skipped.
type Certificate struct{}

// Kind implements provisioning.Action.
func (Certificate) Kind() provisioning.Kind { return provisioning.KindCertificate }

// Run implements provisioning.Action.
func (Certificate) Run(ctx *provisioning.Context) error {
	if !ctx.Config.TLS.Enabled {
		return fmt.Errorf("tls disabled in configuration: %w", provisioning.ErrSkipped)
	}

	_, err := ctx.Exec.Run(ctx, "", "certbot",
		"--nginx",
		"--non-interactive",
		"--agree-tos",
		"-m", ctx.Config.TLS.Email,
		"-d", ctx.Config.App.Domain,
	)
	if err != nil {
		return fmt.Errorf("certificate request failed: %w", err)
	}
	return nil
}
