package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"hipify/internal/stats"
)

// Report writes the end-of-run summary: the distinct unsupported symbol count
// and listing, and the kernel-launch rewrite count. Detailed mode additionally
// lists every rewritten launch and every (symbol, file) unsupported usage.
// Debug mode dumps the raw snapshot.
func Report(w io.Writer, run *stats.Run, detailed, debug bool) {
	s := run.Snapshot()

	fmt.Fprintf(w, "Total number of unsupported CUDA function calls: %d\n", len(s.DistinctUnsupported))
	fmt.Fprintln(w, strings.Join(s.DistinctUnsupported, ", "))
	fmt.Fprintf(w, "\nTotal number of replaced kernel launches: %d\n", len(s.KernelLaunches))

	if detailed {
		for _, launch := range s.KernelLaunches {
			fmt.Fprintln(w, launch)
		}

		for _, call := range s.UnsupportedCalls {
			fmt.Fprintf(w, "Detected an unsupported function %s in file %s\n", call.Symbol, call.File)
		}
	}

	if debug {
		spew.Fdump(w, s)
	}
}
