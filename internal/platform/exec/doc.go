// Package exec is the boundary to external system tools. Every shell-out
// in the codebase goes through the Runner interface so provisioning logic
// stays testable and the working directory is always explicit.
package exec
