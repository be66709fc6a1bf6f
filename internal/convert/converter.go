package convert

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"hipify/internal/mapping"
	"hipify/internal/stats"
)

// hipSuffix marks files that are already converted; they are extracted
// (copied with the suffix stripped) instead of processed.
const hipSuffix = ".hip"

// Config controls a conversion run.
type Config struct {
	// Extensions selects which files are processed, without leading dots.
	Extensions []string

	// Out receives per-file progress output. Defaults to os.Stdout.
	Out io.Writer
}

// DefaultConfig returns the conventional CUDA project configuration.
func DefaultConfig() Config {
	return Config{
		Extensions: []string{"cu", "cuh", "c", "cpp", "h", "in"},
		Out:        os.Stdout,
	}
}

// FileError records a failure to process a single file. The batch continues;
// the caller decides what to do with the collected failures.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Converter rewrites a project tree using a validated mapping table.
type Converter struct {
	table *mapping.Table
	cfg   Config
}

// NewConverter creates a Converter. The table must already be validated.
func NewConverter(table *mapping.Table, cfg Config) *Converter {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	return &Converter{table: table, cfg: cfg}
}

// Run walks root and processes every matching file in place. It returns the
// run statistics and the per-file failures; only a failure of the walk itself
// is returned as a hard error.
func (c *Converter) Run(root string) (*stats.Run, []FileError, error) {
	total, err := c.countEligible(root)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	run := &stats.Run{}

	var failures []FileError

	cur := 0

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Pre-converted files are extracted as-is.
		if strings.HasSuffix(path, hipSuffix) {
			if err := extractHip(path); err != nil {
				failures = append(failures, FileError{Path: path, Err: err})
			}

			return nil
		}

		if !c.matchesExtension(path) {
			return nil
		}

		if err := c.ProcessFile(path, run); err != nil {
			failures = append(failures, FileError{Path: path, Err: err})
		}

		fmt.Fprintln(c.cfg.Out, path)
		progressBar(c.cfg.Out, total, cur)

		cur++

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking %s: %w", root, err)
	}

	progressBar(c.cfg.Out, total, total)
	fmt.Fprintln(c.cfg.Out, "Finished")

	return run, failures, nil
}

// countEligible counts the files Run will process, for the progress bar.
func (c *Converter) countEligible(root string) (int, error) {
	total := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && c.matchesExtension(path) && !strings.HasSuffix(path, hipSuffix) {
			total++
		}

		return nil
	})

	return total, err
}

// matchesExtension reports whether path carries one of the configured
// extensions.
func (c *Converter) matchesExtension(path string) bool {
	for _, ext := range c.cfg.Extensions {
		if strings.HasSuffix(path, "."+ext) {
			return true
		}
	}

	return false
}

// extractHip copies a .hip file alongside itself with the suffix stripped.
func extractHip(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dest := strings.TrimSuffix(path, hipSuffix)

	if err := os.WriteFile(dest, data, filePerm); err != nil {
		return fmt.Errorf("extracting %s: %w", path, err)
	}

	return nil
}
