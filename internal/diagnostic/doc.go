// Package diagnostic provides structured warnings and errors produced while
// validating a CUDA-to-HIP mapping table.
//
// Key capabilities:
//   - Ambiguous mapping reports (two entries claiming one source symbol)
//   - Malformed entry reports (empty symbols, unnamed categories)
//   - Severity-tagged rendering for CLI output
package diagnostic
