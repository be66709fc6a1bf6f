package rewrite

import "strings"

// isIdentChar reports whether c can be part of a matched token. The dot is
// deliberately an identifier character so that header names like
// cuda_runtime.h match as one token and cudaMalloc does not match after a
// member access dot.
func isIdentChar(c byte) bool {
	return c == '_' || c == '.' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9'
}

// boundaryAt reports whether position i in s is a token boundary. Positions
// outside the text count as boundaries.
func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}

	return !isIdentChar(s[i])
}

// replaceToken replaces every whole-token occurrence of sym in s with repl.
// The scan advances through the input only and never rescans emitted output,
// so a replacement whose text contains sym (or any other mapped symbol)
// cannot cascade within the same pass.
func replaceToken(s, sym, repl string) string {
	var b strings.Builder

	last := 0
	from := 0

	for {
		idx := strings.Index(s[from:], sym)
		if idx < 0 {
			break
		}

		at := from + idx
		end := at + len(sym)

		if !boundaryAt(s, at-1) || !boundaryAt(s, end) {
			// Substring hit inside a longer token; keep scanning.
			from = at + 1
			continue
		}

		b.WriteString(s[last:at])
		b.WriteString(repl)

		last = end
		from = end
	}

	if last == 0 {
		return s
	}

	b.WriteString(s[last:])

	return b.String()
}
