// Package output renders decoded server replies for triedis-cli.
//
// The rendering follows the conventions of line-oriented protocol
// inspection tools: nil as "(nil)", integers as "(integer) n", strings
// quoted, and multi-bulk replies numbered element by element, nested
// replies numbering their own elements in turn. The exact shape is a
// user-facing contract; see Format.
package output
