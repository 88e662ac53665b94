// Package actions implements the provisioning actions the pipeline runs.
//
// Every action performs exactly one external effect through the exec
// boundary (install a package, write a config file, request a certificate,
// register a process) and reports success or failure. Actions carry no
// sequencing logic; ordering and failure policy live in the pipeline.
package actions
