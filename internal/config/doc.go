// Package config defines the shipway configuration schema and loader.
//
// Configuration lives in a shipway.yaml file in the target directory.
// Loading applies defaults and validates; fields the file omits can be
// filled interactively by the wizard subpackage before validation.
package config
