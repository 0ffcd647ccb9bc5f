// Package config defines the CLI configuration structure.
//
// Configuration layers, later overriding earlier: built-in defaults,
// the YAML file at ~/.triedis/cli.yaml (or --config), TRIEDIS_*
// environment variables, then command-line flags applied by the
// command layer.
//
// Files:
//   - spec.go: CLIConfig structure and defaults
//   - loader.go: file and environment loading via confloader
package config
