package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// launchFunc is the HIP launch call emitted in place of the triple-chevron
// syntax.
const launchFunc = "hipLaunchKernelGGL"

// launchRE matches a kernel launch: an identifier, optional template
// arguments, an optional run of whitespace or line continuations, the <<<...>>>
// launch configuration, and the opening parenthesis of the argument list.
// The parenthesis is part of the match on purpose: the emitted call reuses the
// original argument list as its own tail.
var launchRE = regexp.MustCompile(`(\w+)(<[^<>]*>)?[\n\\ \t]*<<<(.*?)>>>\(`)

// spaceRunRE collapses space runs in emitted launch prefixes.
var spaceRunRE = regexp.MustCompile(` +`)

// MalformedLaunchError reports a launch marker whose configuration cannot be
// normalized to grid/block/shared-mem/stream form.
type MalformedLaunchError struct {
	// Construct is the matched launch text, up to the opening parenthesis.
	Construct string
}

func (e *MalformedLaunchError) Error() string {
	return fmt.Sprintf("malformed kernel launch %q: fewer than 2 launch parameters", e.Construct)
}

// RewriteLaunches replaces CUDA-style kernel launches in src with HIP-style
// launch calls. It returns the rewritten text and every emitted launch prefix,
// in order of appearance.
//
// Per match, the launch configuration is split on commas, the grid and block
// expressions are wrapped in dim3 constructors, and the list is zero-padded to
// exactly four elements (shared-memory bytes and stream default to 0). The
// emitted prefix ends just before the original argument list, which continues
// the new call unchanged. A configuration with fewer than two comma-separated
// expressions fails loudly rather than emit structurally invalid output.
func RewriteLaunches(src string) (string, []string, error) {
	matches := launchRE.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, nil, nil
	}

	var b strings.Builder

	var emitted []string

	last := 0

	for _, m := range matches {
		name := src[m[2]:m[3]]

		template := ""
		if m[4] >= 0 {
			template = src[m[4]:m[5]]
		}

		params := strings.Split(src[m[6]:m[7]], ",")
		if len(params) < 2 {
			return "", nil, &MalformedLaunchError{Construct: strings.TrimSuffix(src[m[0]:m[1]], "(")}
		}

		for i := range params {
			params[i] = strings.TrimSpace(params[i])
		}

		// Grid and block become 3D dimension constructors.
		params[0] = "dim3(" + params[0] + ")"
		params[1] = "dim3(" + params[1] + ")"

		// Optional shared-memory bytes and stream handle default to 0.
		for len(params) < 4 {
			params = append(params, "0")
		}

		prefix := fmt.Sprintf("%s((%s%s), %s, ", launchFunc, name, template, strings.Join(params, ", "))
		prefix = spaceRunRE.ReplaceAllString(prefix, " ")

		emitted = append(emitted, prefix)

		b.WriteString(src[last:m[0]])
		b.WriteString(prefix)

		last = m[1]
	}

	b.WriteString(src[last:])

	return b.String(), emitted, nil
}
