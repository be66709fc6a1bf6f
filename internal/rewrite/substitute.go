package rewrite

import (
	"strings"

	"hipify/internal/mapping"
)

// Substitute applies every category of the mapping table to src, in table
// order, replacing whole-token occurrences of each source symbol with its
// target. It returns the rewritten text and the unsupported symbols that were
// textually present, once each, in table order.
//
// Unsupported detection is based on substring presence before the symbol's
// own substitution runs, independent of whether that substitution changes
// anything; an unsupported entry may map a symbol to itself purely to make
// its presence discoverable.
func Substitute(src string, table *mapping.Table) (string, []string) {
	out := src

	var unsupported []string

	for _, cat := range table.Categories {
		for _, e := range cat.Entries {
			// Cheap presence check before the token scan.
			if !strings.Contains(out, e.Source) {
				continue
			}

			if e.Unsupported() {
				unsupported = append(unsupported, e.Source)
			}

			out = replaceToken(out, e.Source, e.Target)
		}
	}

	return out, unsupported
}
