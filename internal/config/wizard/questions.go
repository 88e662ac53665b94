package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// appNameRegex mirrors the config validation rule so bad names are caught
// at prompt time instead of after the wizard completes.
var appNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

var domainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// RuntimeVersions are the installable runtime versions, newest first.
var RuntimeVersions = []string{"8.4", "8.3", "8.2", "8.1"}

// runApplicationGroup prompts for app identity and source repository.
func runApplicationGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Application Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("my-app").
				Value(&result.AppName).
				Validate(validateAppName),
			huh.NewInput().
				Title("Repository").
				Description("Git URL the application is fetched from").
				Placeholder("git@github.com:acme/my-app.git").
				Value(&result.Repository).
				Validate(validateNotEmpty("repository")),
			huh.NewInput().
				Title("Domain").
				Description("Public hostname the web server will answer for").
				Placeholder("app.example.com").
				Value(&result.Domain).
				Validate(validateDomain),
			huh.NewInput().
				Title("Deployment Path (Optional)").
				Description("Base directory for releases. Leave empty for /srv/<name>.").
				Value(&result.BasePath),
		).Title("Application"),
	).RunWithContext(ctx)
}

// runRuntimeGroup prompts for the runtime version.
func runRuntimeGroup(ctx context.Context, result *Result) error {
	result.RuntimeVersion = RuntimeVersions[0] // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("PHP Version").
				Description("Runtime installed via the system package manager").
				Options(runtimeOptions()...).
				Value(&result.RuntimeVersion),
		).Title("Runtime"),
	).RunWithContext(ctx)
}

// runDatabaseGroup prompts for database name and user (optional).
func runDatabaseGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Database Name (Optional)").
				Description("Leave empty to derive from the application name").
				Value(&result.DatabaseName),
			huh.NewInput().
				Title("Database User (Optional)").
				Description("Leave empty to match the database name").
				Value(&result.DatabaseUsername),
		).Title("Database"),
	).RunWithContext(ctx)
}

// runTLSGroup prompts for certificate issuance.
func runTLSGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Request TLS Certificate?").
				Description("Issues a certificate for the domain via the ACME client").
				Value(&result.TLSEnabled),
		).Title("TLS"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if !result.TLSEnabled {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Certificate Contact Email").
				Placeholder("ops@example.com").
				Value(&result.TLSEmail).
				Validate(validateNotEmpty("email")),
		).Title("TLS"),
	).RunWithContext(ctx)
}

func runtimeOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(RuntimeVersions))
	for _, v := range RuntimeVersions {
		options = append(options, huh.NewOption("PHP "+v, v))
	}
	return options
}

func validateAppName(name string) error {
	if !appNameRegex.MatchString(name) {
		return fmt.Errorf("must be 1-32 lowercase alphanumeric characters or hyphens")
	}
	return nil
}

func validateDomain(domain string) error {
	if !domainRegex.MatchString(strings.ToLower(domain)) {
		return fmt.Errorf("not a valid domain name")
	}
	return nil
}

func validateNotEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
