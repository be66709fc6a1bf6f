package convert

import (
	"fmt"
	"io"
	"os"

	"hipify/internal/rewrite"
	"hipify/internal/stats"
)

// File permission constant for extracted files.
const filePerm = 0o644

// ProcessFile rewrites one file in place and merges its findings into run.
// The file is read whole, transformed in memory, then truncated and
// rewritten; a crash mid-write can leave it partially rewritten, with no
// backup retained.
func (c *Converter) ProcessFile(path string, run *stats.Run) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	res, err := rewrite.Apply(string(data), c.table)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	run.RecordUnsupported(path, res.Unsupported)
	run.RecordLaunches(res.Launches)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding %s: %w", path, err)
	}

	if _, err := f.WriteString(res.Text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Truncate(int64(len(res.Text))); err != nil {
		return fmt.Errorf("truncating %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return nil
}
