package mapping

import "slices"

// TagUnsupported marks an entry whose CUDA symbol has no direct HIP
// equivalent. The entry is still substituted; the tag only flags the usage
// for manual follow-up.
const TagUnsupported = "unsupported"

// Table represents the root of a YAML mapping definition file.
// This is the authoritative, versioned mapping configuration.
type Table struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Categories is the ordered list of mapping categories. Order is
	// application order.
	Categories []Category `yaml:"categories"`
}

// Category groups related entries (includes, types, runtime API, ...).
type Category struct {
	// Name identifies the category in diagnostics.
	Name string `yaml:"name"`

	// Entries maps CUDA source symbols to HIP replacements.
	Entries []Entry `yaml:"entries"`
}

// Entry defines how to rewrite one CUDA symbol.
type Entry struct {
	// Source is the CUDA symbol, matched at whole-token boundaries only.
	Source string `yaml:"source"`

	// Target is the HIP replacement text.
	Target string `yaml:"target"`

	// Tags carries optional metadata such as "unsupported".
	Tags []string `yaml:"tags,omitempty"`
}

// Unsupported reports whether the entry is tagged as having no direct HIP
// equivalent.
func (e Entry) Unsupported() bool {
	return slices.Contains(e.Tags, TagUnsupported)
}

// Len returns the total number of entries across all categories.
func (t *Table) Len() int {
	n := 0
	for i := range t.Categories {
		n += len(t.Categories[i].Entries)
	}

	return n
}
