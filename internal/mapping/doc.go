// Package mapping provides the YAML schema, parsing, and validation for the
// CUDA-to-HIP symbol table that drives identifier substitution.
//
// The table is versioned configuration data, not code: it ships embedded as a
// default but can be replaced wholesale with a user-supplied file. It is loaded
// once per run, validated before any source file is touched, and passed
// explicitly to the rewrite passes.
//
// # Schema Overview
//
// A mapping file has the following structure:
//
//	version: "1"
//	categories:
//	  - name: runtime
//	    entries:
//	      - source: cudaMalloc
//	        target: hipMalloc
//	      - source: cudaDeviceSetSharedMemConfig
//	        target: hipDeviceSetSharedMemConfig
//	        tags: [unsupported]
//
// Categories apply in file order, and that order is behavior-determining: a
// replacement string may textually contain a later category's source symbol,
// and a single substitution pass never rescans its own output. Reordering
// categories therefore changes observable results and is treated as a schema
// change, not a cosmetic edit.
//
// # Constraints
//
// A source symbol may appear at most once across the whole table; a duplicate
// is a configuration error (an ambiguous mapping), rejected at load time.
// Entries tagged "unsupported" are still substituted, possibly to themselves,
// so their presence is discoverable without otherwise altering the output.
package mapping
