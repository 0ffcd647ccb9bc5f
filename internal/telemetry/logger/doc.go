// Package logger provides structured logging for triedis-cli.
//
// It wraps the standard library log/slog behind a small interface so
// packages can log without depending on a concrete handler. The client
// defaults to text output on stderr at warn level; --verbose drops the
// floor to debug.
//
// Files:
//   - logger.go: Logger interface, slog wrapper, level parsing, global default
package logger
