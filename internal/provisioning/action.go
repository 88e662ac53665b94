package provisioning

import "errors"

// ErrSkipped signals that an action found nothing to do. The runner records
// the step as skipped and continues with the next step.
var ErrSkipped = errors.New("step skipped")

// Kind identifies a provisioning action. The set of kinds is closed;
// dispatch is by typed constant, never by free-form string.
type Kind string

const (
	// KindRuntime installs the application runtime via the package manager.
	KindRuntime Kind = "runtime"
	// KindDatabaseServer installs and secures the database server.
	KindDatabaseServer Kind = "database-server"
	// KindDatabase provisions the application database and its user.
	KindDatabase Kind = "database"
	// KindWebServer writes the virtual-host configuration and reloads the web server.
	KindWebServer Kind = "web-server"
	// KindCertificate requests a TLS certificate for the configured domain.
	KindCertificate Kind = "certificate"
	// KindSupervisor registers the application with the process manager.
	KindSupervisor Kind = "supervisor"
	// KindDeployKey generates the SSH deploy key pair.
	KindDeployKey Kind = "deploy-key"
	// KindRelease fetches the application and switches the current release.
	KindRelease Kind = "release"
	// KindEnvFile reconciles credentials into the application env file.
	KindEnvFile Kind = "env-file"
)

// Action is one externally-effectful unit of provisioning work. Actions
// report success or failure only; the runner treats error text as opaque.
type Action interface {
	// Kind returns the action's registry identity.
	Kind() Kind

	// Run executes the action. Returning ErrSkipped (possibly wrapped)
	// records the step as skipped instead of failed.
	Run(ctx *Context) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc struct {
	K Kind
	F func(ctx *Context) error
}

// Kind implements Action.
func (a ActionFunc) Kind() Kind { return a.K }

// Run implements Action.
func (a ActionFunc) Run(ctx *Context) error { return a.F(ctx) }
