// Package connection manages the server connection for triedis-cli.
//
// It wraps the redigo RESP client behind a single request/response
// operation and decodes library replies into the reply.Value union.
// Protocol framing is entirely the library's concern; this package only
// dials, probes, executes and decodes.
package connection
