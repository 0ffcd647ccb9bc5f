// Package main provides the entry point for triedis-cli.
//
// The client connects to a triedis server over RESP and provides:
//
//   - An interactive REPL with line editing, completion and history
//   - Single-command execution via --execute for scripting
//   - Configuration via flags, TRIEDIS_* environment variables and
//     ~/.triedis/cli.yaml
//
// Usage:
//
//	triedis-cli [flags]
//	triedis-cli -H 127.0.0.1 -p 6379
//	triedis-cli -e "GET key"
package main
