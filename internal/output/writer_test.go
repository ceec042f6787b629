package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keystation/keyatlas/pkg/registry"
)

func TestMarshal(t *testing.T) {
	descriptors := []registry.Descriptor{
		{
			Description: "Letter A",
			Code:        4,
			Label:       "A",
			Name:        registry.Name{Long: "KC_A", Short: "KC_A"},
			Keywords:    []string{"a"},
			Ascii:       "a",
		},
		{
			Description: "Zzz",
			Code:        5,
			Label:       "Zzz",
			Name:        registry.Name{Long: "KC_ZZZ", Short: "KC_ZZZ"},
			Keywords:    []string{"Zzz"},
		},
	}

	data, err := Marshal(descriptors)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "  {\n") // 2-space indentation
	assert.Contains(t, out, `"ascii": "a"`)
	// Ascii is never synthesized, so the second record must omit it.
	assert.Equal(t, 1, strings.Count(out, `"ascii"`))

	var roundTrip []registry.Descriptor
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, descriptors, roundTrip)
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", "keycodes.json")

	err := Write(path, []registry.Descriptor{
		{Code: 4, Label: "A", Name: registry.Name{Long: "KC_A", Short: "KC_A"}, Keywords: []string{"A"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"code": 4`)
}
