// Package main provides the entry point for triedis-cli.
//
// triedis-cli is the interactive command-line client for the triedis
// server, supporting both single-command mode and a REPL session.
package main

import (
	"fmt"
	"os"

	"github.com/tannerklineintz/triedis-cli/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
