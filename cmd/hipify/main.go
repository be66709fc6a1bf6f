// Command hipify translates a CUDA source tree into HIP.
//
// Usage:
//
//	hipify --project-directory /home/myproject
//	hipify --project-directory /home/myproject --output-directory /home/gains \
//	       --extensions cu,cuh,h,cpp --show-detailed
//
// The project tree is copied to the output directory (default
// <project>_amd), then every file with a matching extension is rewritten in
// place inside the copy: CUDA identifiers are substituted from the mapping
// table, triple-chevron kernel launches become hipLaunchKernelGGL calls, and
// asserts are commented out. Files ending in .hip are assumed pre-converted
// and are extracted with the suffix stripped instead of being processed.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hipify/internal/convert"
	"hipify/internal/mapping"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	projectDir   string
	outputDir    string
	mappingsFile string
	extensions   []string
	showDetailed bool
	debug        bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "hipify",
		Short:        "Translate a CUDA source tree into HIP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.projectDir, "project-directory", "", "root of the project to convert (required)")
	cmd.Flags().StringVar(&opts.outputDir, "output-directory", "", "where to store the converted project (default <project>_amd)")
	cmd.Flags().StringVar(&opts.mappingsFile, "mappings", "", "custom mapping table YAML (default: embedded table)")
	cmd.Flags().StringSliceVar(&opts.extensions, "extensions", []string{"cu", "cuh", "c", "cpp", "h", "in"}, "file extensions to convert")
	cmd.Flags().BoolVar(&opts.showDetailed, "show-detailed", false, "show a detailed summary of the conversion")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "dump raw run statistics")

	_ = cmd.MarkFlagRequired("project-directory")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	info, err := os.Stat(opts.projectDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("project directory %s does not exist", opts.projectDir)
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = strings.TrimSuffix(opts.projectDir, "/") + "_amd"
	}

	// Refuse to clobber an existing tree.
	if _, err := os.Stat(outputDir); err == nil {
		return fmt.Errorf("output directory %s already exists; move or delete it first", outputDir)
	}

	table, err := loadTable(opts.mappingsFile)
	if err != nil {
		return err
	}

	if err := os.CopyFS(outputDir, os.DirFS(opts.projectDir)); err != nil {
		return fmt.Errorf("copying project to %s: %w", outputDir, err)
	}

	cfg := convert.DefaultConfig()
	cfg.Extensions = normalizeExtensions(opts.extensions)
	cfg.Out = cmd.OutOrStdout()

	converter := convert.NewConverter(table, cfg)

	runStats, failures, err := converter.Run(outputDir)
	if err != nil {
		return err
	}

	convert.Report(cmd.OutOrStdout(), runStats, opts.showDetailed, opts.debug)

	for _, f := range failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to convert %s\n", f.Error())
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d file(s) failed to convert", len(failures))
	}

	return nil
}

// loadTable loads and validates the mapping table, embedded or user-supplied.
func loadTable(path string) (*mapping.Table, error) {
	var (
		table *mapping.Table
		err   error
	)

	if path == "" {
		table, err = mapping.Default()
	} else {
		table, err = mapping.LoadFile(path)
	}

	if err != nil {
		return nil, err
	}

	if err := mapping.Validate(table).Error(); err != nil {
		return nil, fmt.Errorf("invalid mapping table: %w", err)
	}

	return table, nil
}

// normalizeExtensions strips leading dots so both "cu" and ".cu" are accepted.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			out = append(out, ext)
		}
	}

	return out
}
