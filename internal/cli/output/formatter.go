package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tannerklineintz/triedis-cli/internal/reply"
)

// nestedStep is the extra indentation applied to each nesting level.
const nestedStep = 2

// Format renders a decoded reply as display text at the given indentation
// level. It is pure and total: every Value kind renders, nothing panics.
//
// Rendering rules:
//
//   - nil renders as "(nil)".
//   - Text beginning with "OK" passes through verbatim; any other text is
//     wrapped in double quotes. Embedded quotes are not escaped; this is a
//     best-effort display, not a full quoting scheme.
//   - Integers render as "(integer) n".
//   - Scalars carry the current indentation as a leading pad.
//   - A sequence at the top level numbers its elements "1) ", "2) ", ...
//     and recurses at the top level, so a nested sequence numbers its own
//     elements in turn.
//   - A sequence below the top level indents each element line by the
//     current level instead of numbering it, recursing one step deeper.
//   - Sequence prefixes replace the recursive rendering's own leading pad;
//     the pad is stripped before the prefix is applied.
//   - Sequence lines join with a single newline, no trailing newline, so
//     an empty sequence renders as the empty string.
//   - Unknown kinds fall back to their plain textual representation behind
//     the current indentation.
func Format(v reply.Value, indent int) string {
	pad := strings.Repeat(" ", indent)

	switch v.Kind {
	case reply.KindNil:
		return pad + "(nil)"

	case reply.KindText:
		if strings.HasPrefix(v.Str, "OK") {
			return pad + v.Str
		}
		return pad + `"` + v.Str + `"`

	case reply.KindInteger:
		return pad + "(integer) " + strconv.FormatInt(v.Int, 10)

	case reply.KindSequence:
		lines := make([]string, 0, len(v.Elems))
		for i, e := range v.Elems {
			if indent == 0 {
				s := Format(e, 0)
				lines = append(lines, fmt.Sprintf("%d) %s", i+1, strings.TrimLeft(s, " ")))
			} else {
				s := Format(e, indent+nestedStep)
				lines = append(lines, pad+strings.TrimLeft(s, " "))
			}
		}
		return strings.Join(lines, "\n")

	default:
		return pad + v.Str
	}
}
