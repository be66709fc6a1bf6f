// Package stats accumulates run statistics for a conversion: unsupported
// CUDA symbol usages and emitted kernel-launch rewrites. The accumulator is
// append-only and is read once at the end of a run through a snapshot.
package stats

import "github.com/samber/lo"

// UnsupportedCall records one use of an unsupported CUDA symbol in one file.
// There is at most one record per (symbol, file) pair regardless of how many
// times the symbol occurs in the file.
type UnsupportedCall struct {
	Symbol string
	File   string
}

// Run collects statistics for a single conversion run. It is created per run,
// appended to by the rewrite passes' callers, and discarded after reporting.
type Run struct {
	unsupportedCalls []UnsupportedCall
	kernelLaunches   []string
}

// RecordUnsupported appends one (symbol, file) record per given symbol.
// Callers pass each symbol at most once per file; the rewrite pass already
// deduplicates within a file.
func (r *Run) RecordUnsupported(file string, symbols []string) {
	for _, sym := range symbols {
		r.unsupportedCalls = append(r.unsupportedCalls, UnsupportedCall{Symbol: sym, File: file})
	}
}

// RecordLaunches appends the emitted kernel-launch prefixes.
func (r *Run) RecordLaunches(prefixes []string) {
	r.kernelLaunches = append(r.kernelLaunches, prefixes...)
}

// Summary is a read-only snapshot of a run's statistics.
type Summary struct {
	// UnsupportedCalls lists every (symbol, file) pair, in discovery order.
	UnsupportedCalls []UnsupportedCall

	// DistinctUnsupported lists unsupported symbols once each, in first-seen
	// order.
	DistinctUnsupported []string

	// KernelLaunches lists every emitted launch prefix, in discovery order.
	KernelLaunches []string
}

// Snapshot computes the summary for reporting.
func (r *Run) Snapshot() Summary {
	symbols := lo.Map(r.unsupportedCalls, func(c UnsupportedCall, _ int) string {
		return c.Symbol
	})

	return Summary{
		UnsupportedCalls:    append([]UnsupportedCall(nil), r.unsupportedCalls...),
		DistinctUnsupported: lo.Uniq(symbols),
		KernelLaunches:      append([]string(nil), r.kernelLaunches...),
	}
}
