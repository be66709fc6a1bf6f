package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
categories:
  - name: runtime
    entries:
      - source: cudaMalloc
        target: hipMalloc
      - source: cudaDeviceSetCacheConfig
        target: hipDeviceSetCacheConfig
        tags: [unsupported]
  - name: type
    entries:
      - source: cudaStream_t
        target: hipStream_t
`

	tbl, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, tbl)

	assert.Equal(t, "1", tbl.Version)
	require.Len(t, tbl.Categories, 2)
	assert.Equal(t, 3, tbl.Len())

	// Category order is preserved from the file.
	assert.Equal(t, "runtime", tbl.Categories[0].Name)
	assert.Equal(t, "type", tbl.Categories[1].Name)

	rt := tbl.Categories[0]
	require.Len(t, rt.Entries, 2)
	assert.Equal(t, "cudaMalloc", rt.Entries[0].Source)
	assert.Equal(t, "hipMalloc", rt.Entries[0].Target)
	assert.False(t, rt.Entries[0].Unsupported())

	assert.Equal(t, "cudaDeviceSetCacheConfig", rt.Entries[1].Source)
	assert.True(t, rt.Entries[1].Unsupported())
}

func TestParseMinimal(t *testing.T) {
	yaml := `
categories:
  - name: a
    entries:
      - source: cudaFree
        target: hipFree
`

	tbl, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", tbl.Version) // Default version
	require.Len(t, tbl.Categories, 1)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("categories: [unclosed"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	require.NotNil(t, tbl)

	// The shipped table must itself pass validation.
	diags := Validate(tbl)
	require.NoError(t, diags.Error())

	// Spot-check the canonical entries and the category ordering.
	require.NotEmpty(t, tbl.Categories)
	assert.Equal(t, "include", tbl.Categories[0].Name)

	found := map[string]Entry{}
	for _, cat := range tbl.Categories {
		for _, e := range cat.Entries {
			found[e.Source] = e
		}
	}

	assert.Equal(t, "hipMalloc", found["cudaMalloc"].Target)
	assert.Equal(t, "hipMemcpy", found["cudaMemcpy"].Target)
	assert.Equal(t, "hipStream_t", found["cudaStream_t"].Target)

	// Unsupported entries may map to themselves; presence is the point.
	ldg, ok := found["__ldg"]
	require.True(t, ok)
	assert.True(t, ldg.Unsupported())
	assert.Equal(t, "__ldg", ldg.Target)
}

func TestMarshalRoundTrip(t *testing.T) {
	tbl := &Table{
		Version: "1",
		Categories: []Category{
			{Name: "runtime", Entries: []Entry{
				{Source: "cudaMalloc", Target: "hipMalloc"},
			}},
		},
	}

	data, err := Marshal(tbl)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, tbl, back)
}
