package reply

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNil is the absence of a value ($-1 on the wire).
	KindNil Kind = iota

	// KindText is a string reply, covering both status replies ("OK",
	// "PONG") and bulk strings. Binary-safe, treated as text for display.
	KindText

	// KindInteger is a signed 64-bit integer reply.
	KindInteger

	// KindSequence is an ordered multi-bulk reply; elements may themselves
	// be sequences, nesting to arbitrary depth.
	KindSequence

	// KindRaw is the fallback arm for reply kinds the decoder does not
	// model. Str holds the plain textual representation.
	KindRaw
)

// Value is a decoded server reply. It has no identity beyond its structural
// content; a Value is produced for one command/response cycle and discarded
// after printing.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Elems []Value
}

// Nil returns the nil reply.
func Nil() Value {
	return Value{Kind: KindNil}
}

// Text returns a string reply.
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Integer returns an integer reply.
func Integer(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

// Sequence returns a multi-bulk reply with the given elements.
func Sequence(elems ...Value) Value {
	return Value{Kind: KindSequence, Elems: elems}
}

// Raw returns a fallback reply carrying a plain textual representation.
func Raw(s string) Value {
	return Value{Kind: KindRaw, Str: s}
}

// String returns a compact single-line representation for logging.
// It is not the display rendering; see the output package for that.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindText:
		return strconv.Quote(v.Str)
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindSequence:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprintf("raw(%s)", v.Str)
	}
}
