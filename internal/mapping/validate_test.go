package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidTable(t *testing.T) {
	yaml := `
categories:
  - name: runtime
    entries:
      - source: cudaMalloc
        target: hipMalloc
      - source: cudaFree
        target: hipFree
  - name: type
    entries:
      - source: cudaError_t
        target: hipError_t
`

	tbl, err := Parse([]byte(yaml))
	require.NoError(t, err)

	diags := Validate(tbl)
	assert.True(t, diags.IsValid())
	assert.NoError(t, diags.Error())
}

func TestValidate_NilTable(t *testing.T) {
	diags := Validate(nil)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "table_is_nil", diags.Errors[0].Code)
}

func TestValidate_DuplicateWithinCategory(t *testing.T) {
	yaml := `
categories:
  - name: runtime
    entries:
      - source: cudaMalloc
        target: hipMalloc
      - source: cudaMalloc
        target: hipHostMalloc
`

	tbl, err := Parse([]byte(yaml))
	require.NoError(t, err)

	diags := Validate(tbl)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "ambiguous_mapping", diags.Errors[0].Code)
	assert.Equal(t, "cudaMalloc", diags.Errors[0].Symbol)
}

func TestValidate_DuplicateAcrossCategories(t *testing.T) {
	yaml := `
categories:
  - name: runtime
    entries:
      - source: cudaMalloc
        target: hipMalloc
  - name: legacy
    entries:
      - source: cudaMalloc
        target: hipMallocLegacy
`

	tbl, err := Parse([]byte(yaml))
	require.NoError(t, err)

	diags := Validate(tbl)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "ambiguous_mapping", diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "runtime")
}

func TestValidate_EmptySymbols(t *testing.T) {
	yaml := `
categories:
  - name: runtime
    entries:
      - source: ""
        target: hipMalloc
      - source: cudaFree
        target: ""
`

	tbl, err := Parse([]byte(yaml))
	require.NoError(t, err)

	diags := Validate(tbl)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "source_empty", diags.Errors[0].Code)
	assert.Equal(t, "target_empty", diags.Errors[1].Code)
}

func TestValidate_UnnamedCategory(t *testing.T) {
	tbl := &Table{Categories: []Category{
		{Entries: []Entry{{Source: "a", Target: "b"}}},
	}}

	diags := Validate(tbl)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "category_unnamed", diags.Errors[0].Code)
}

func TestValidate_EmptyTableWarns(t *testing.T) {
	diags := Validate(&Table{})
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "table_empty", diags.Warnings[0].Code)
}
