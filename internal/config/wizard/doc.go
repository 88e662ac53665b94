// Package wizard collects missing configuration interactively.
//
// It runs charmbracelet/huh form groups for the settings a shipway.yaml
// omits and builds a config.Config from the answers. The wizard is only
// invoked on a TTY; scripted invocations must supply a complete config
// file instead.
package wizard
