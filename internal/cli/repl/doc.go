// Package repl provides the interactive mode for triedis-cli.
//
// This package implements the Read-Eval-Print Loop:
//
//   - repl.go: main loop, dispatch and reply printing
//   - tokenizer.go: shell-style splitting of input lines
//   - completer.go: prefix completion over the triedis command set
//   - history.go: best-effort command history persistence
//
// Interactive terminals get line editing and completion via readline;
// piped input falls back to a plain line reader with identical dispatch
// behavior.
package repl
