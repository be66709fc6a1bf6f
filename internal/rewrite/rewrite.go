package rewrite

import "hipify/internal/mapping"

// Result is the outcome of running the full pipeline over one text.
type Result struct {
	// Text is the rewritten source.
	Text string

	// Unsupported lists the unsupported CUDA symbols present in the input,
	// once each, in table order.
	Unsupported []string

	// Launches lists the emitted kernel-launch prefixes, in order of
	// appearance.
	Launches []string
}

// Apply runs identifier substitution, kernel-launch rewriting, and assert
// neutralization over src, in that order, against the given table. On error
// the input is considered unprocessable and no partial output is returned.
func Apply(src string, table *mapping.Table) (Result, error) {
	out, unsupported := Substitute(src, table)

	out, launches, err := RewriteLaunches(out)
	if err != nil {
		return Result{}, err
	}

	out = DisableAsserts(out)

	return Result{
		Text:        out,
		Unsupported: unsupported,
		Launches:    launches,
	}, nil
}
