// Package shutdown provides signal-driven cleanup for the CLI.
//
// The command layer registers hooks (save history, close the server
// connection) and the handler runs them exactly once, whether the
// session ends by quit, EOF or a delivered signal.
//
// Files:
//   - shutdown.go: Handler with hook registration and signal watching
package shutdown
