// Package prerequisites checks that the host carries the system tools the
// provisioning pipeline shells out to.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool is a host binary the pipeline may depend on.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates whether provisioning can proceed without it.
	Required bool

	// Description explains what the tool is used for.
	Description string
}

// HostTools returns the binaries the full provisioning pipeline shells
// out to. git and certbot are installed on demand, so they are advisory.
func HostTools() []Tool {
	return []Tool{
		{Name: "apt-get", Required: true, Description: "installs the runtime, database server, and web server packages"},
		{Name: "systemctl", Required: true, Description: "enables and reloads system services"},
		{Name: "git", Required: false, Description: "fetches releases from the configured repository"},
	}
}

// DeployTools returns the binaries the deploy-only pipeline needs.
func DeployTools() []Tool {
	return []Tool{
		{Name: "git", Required: true, Description: "fetches releases from the configured repository"},
	}
}

// CheckResult is the outcome of probing one tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults aggregates the probes for a tool set.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// Err returns an error naming the missing required tools, or nil.
func (r *CheckResults) Err() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.Description))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check probes PATH for each tool.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}
	for _, tool := range tools {
		result := CheckResult{Tool: tool}
		if path, err := exec.LookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}
		results.Results = append(results.Results, result)
	}
	return results
}
