// Package provisioning provides the step pipeline that drives server
// provisioning and application deployment.
//
// The pipeline is strictly sequential: steps execute in declaration order,
// each step wraps a single named Action, and the first failure of a
// required step aborts the remainder of the run. Optional steps are
// best-effort; their failures are recorded and execution continues.
//
// # Workflow
//
// A handler builds an ordered []Step from the resolved configuration and
// the action Registry, then hands it to a Runner:
//
//	runner := provisioning.NewRunner()
//	run := runner.Run(pctx, steps)
//	if run.Status == provisioning.StatusAborted { ... }
//
// The Runner only sequences, times, and reports; every external effect
// (package installation, certificate requests, release switching) lives in
// the Action implementations under the actions subpackage.
package provisioning
