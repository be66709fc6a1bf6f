package mapping

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&t)

	return &t, nil
}

// Default returns the embedded CUDA-to-HIP table shipped with the binary.
func Default() (*Table, error) {
	return Parse(builtinYAML)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	if t.Version == "" {
		t.Version = "1"
	}
}

// Marshal serializes a Table to YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}
