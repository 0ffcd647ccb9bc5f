// Package command provides CLI command definitions for triedis-cli.
//
// It uses urfave/cli/v2 for flag parsing. The client has no
// subcommands: --execute runs a single command and exits, otherwise
// the process drops into the interactive REPL.
//
// Files:
//   - root.go: application, global flags, config resolution, entry action
package command
