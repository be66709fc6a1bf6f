package mapping

import (
	"fmt"

	"hipify/internal/diagnostic"
)

// Validate validates a mapping table before any source file is processed.
// This is a structural validation step only; it does not try to judge whether
// a replacement is semantically sensible, only that the table is unambiguous.
func Validate(t *Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "mapping table is nil", "", "")
		return res
	}

	if len(t.Categories) == 0 {
		res.AddWarning("table_empty", "mapping table has no categories", "", "")
		return res
	}

	// A source symbol claimed twice anywhere in the table is ambiguous:
	// which replacement wins would depend on category order, so it is
	// rejected outright.
	seen := map[string]string{}

	for i := range t.Categories {
		cat := &t.Categories[i]
		if cat.Name == "" {
			res.AddError("category_unnamed", fmt.Sprintf("category %d has no name", i), "", "")
		}

		if len(cat.Entries) == 0 {
			res.AddWarning("category_empty", "category has no entries", cat.Name, "")
		}

		for j := range cat.Entries {
			validateEntry(res, seen, cat.Name, &cat.Entries[j])
		}
	}

	return res
}

// validateEntry validates a single entry and records its source symbol in seen.
func validateEntry(res *diagnostic.Diagnostics, seen map[string]string, category string, e *Entry) {
	if e.Source == "" {
		res.AddError("source_empty", "entry has an empty source symbol", category, "")
		return
	}

	if e.Target == "" {
		res.AddError("target_empty", fmt.Sprintf("entry %q has an empty target", e.Source), category, e.Source)
	}

	if prev, ok := seen[e.Source]; ok {
		res.AddError("ambiguous_mapping",
			fmt.Sprintf("source symbol %q already mapped in category %q", e.Source, prev),
			category, e.Source)

		return
	}

	seen[e.Source] = category
}
