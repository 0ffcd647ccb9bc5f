// Package reply defines the decoded server reply value for triedis-cli.
//
// A Value is a tagged union over the reply kinds the RESP2 wire can carry
// back to a client: nil, text (status and bulk strings), integers and
// arbitrarily nested arrays. The union carries one extra Raw arm as a
// fallback for reply kinds the decoder does not model.
package reply
