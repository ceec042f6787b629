package keycodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keystation/keyatlas/pkg/keycodes"
)

func TestMergeEmptyCorpus(t *testing.T) {
	table := keycodes.Merge(keycodes.Corpus{})
	assert.Empty(t, table)

	table = keycodes.Merge(nil)
	assert.Empty(t, table)
}

func TestMergeVersionOrdering(t *testing.T) {
	corpus := keycodes.Corpus{
		keycodes.DefaultCategory: {
			"0.2.0": {
				"0x01": {Key: "KC_A_NEW"},
			},
			"0.1.0": {
				"0x01": {Key: "KC_A"},
				"0x02": {Key: "KC_B"},
			},
		},
	}

	table := keycodes.Merge(corpus)
	require.Len(t, table, 2)
	assert.Equal(t, "KC_A_NEW", table["0x01"].Key)
	assert.Equal(t, "KC_B", table["0x02"].Key)
}

func TestMergeReset(t *testing.T) {
	// Scenario: version 0.2.0 resets the category and then contributes
	// its own keys. Nothing from 0.1.0 survives.
	corpus := keycodes.Corpus{
		keycodes.DefaultCategory: {
			"0.1.0": {
				"0x01": {Key: "KC_A"},
			},
			"0.2.0": {
				keycodes.ResetKey: {},
				"0x02":            {Key: "KC_B"},
			},
		},
	}

	table := keycodes.Merge(corpus)
	require.Len(t, table, 1)
	assert.Equal(t, "KC_B", table["0x02"].Key)
	assert.NotContains(t, table, "0x01")
	assert.NotContains(t, table, keycodes.ResetKey)
}

func TestMergeResetScopedToCategory(t *testing.T) {
	// A reset in one category must not disturb keys accumulated by
	// another category.
	corpus := keycodes.Corpus{
		"lighting": {
			"0.1.0": {
				"0x10": {Key: "QK_BACKLIGHT_ON"},
			},
			"0.2.0": {
				keycodes.ResetKey: {},
				"0x11":            {Key: "QK_BACKLIGHT_TOGGLE"},
			},
		},
		"audio": {
			"0.1.0": {
				"0x20": {Key: "QK_AUDIO_ON"},
			},
		},
	}

	table := keycodes.Merge(corpus)
	require.Len(t, table, 2)
	assert.Equal(t, "QK_AUDIO_ON", table["0x20"].Key)
	assert.Equal(t, "QK_BACKLIGHT_TOGGLE", table["0x11"].Key)
	assert.NotContains(t, table, "0x10")
}

func TestMergeResetThenOverride(t *testing.T) {
	// The reset layer's own keys merge in after the wipe, and later
	// versions keep layering on top of them.
	corpus := keycodes.Corpus{
		keycodes.DefaultCategory: {
			"0.1.0": {
				"0x01": {Key: "KC_OLD"},
				"0x02": {Key: "KC_KEEP"},
			},
			"0.2.0": {
				keycodes.ResetKey: {},
				"0x01":            {Key: "KC_FRESH"},
			},
			"0.3.0": {
				"0x03": {Key: "KC_LATE"},
			},
		},
	}

	table := keycodes.Merge(corpus)
	require.Len(t, table, 2)
	assert.Equal(t, "KC_FRESH", table["0x01"].Key)
	assert.Equal(t, "KC_LATE", table["0x03"].Key)
	assert.NotContains(t, table, "0x02")
}

func TestMergeCategoryLastWriterWins(t *testing.T) {
	// Both categories define 0x30; the lexicographically later category
	// owns the final entry.
	corpus := keycodes.Corpus{
		"audio": {
			"0.1.0": {
				"0x30": {Key: "QK_AUDIO_CLICKY"},
			},
		},
		"midi": {
			"0.1.0": {
				"0x30": {Key: "QK_MIDI_ON"},
			},
		},
	}

	table := keycodes.Merge(corpus)
	require.Len(t, table, 1)
	assert.Equal(t, "QK_MIDI_ON", table["0x30"].Key)
}

func TestMergeNilLayerSkipped(t *testing.T) {
	// A version file with no keycode section contributes nothing and
	// does not affect reset state.
	corpus := keycodes.Corpus{
		keycodes.DefaultCategory: {
			"0.1.0": {
				"0x01": {Key: "KC_A"},
			},
			"0.2.0": nil,
			"0.3.0": {
				"0x02": {Key: "KC_B"},
			},
		},
	}

	table := keycodes.Merge(corpus)
	require.Len(t, table, 2)
	assert.Equal(t, "KC_A", table["0x01"].Key)
}

func TestMergeDeterministic(t *testing.T) {
	corpus := keycodes.Corpus{
		keycodes.DefaultCategory: {
			"0.1.0": {"0x01": {Key: "KC_A"}, "0x02": {Key: "KC_B"}},
			"0.2.0": {keycodes.ResetKey: {}, "0x03": {Key: "KC_C"}},
		},
		"audio": {
			"0.1.0": {"0x03": {Key: "QK_AUDIO_ON"}, "0x04": {Key: "QK_AUDIO_OFF"}},
		},
	}

	first := keycodes.Merge(corpus)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, keycodes.Merge(corpus))
	}
}

func TestMergeDefinitionFieldsPreserved(t *testing.T) {
	corpus := keycodes.Corpus{
		keycodes.DefaultCategory: {
			"0.1.0": {
				"0x04": {
					Key:     "KC_A",
					Group:   "basic",
					Aliases: []string{"KC_A_ALIAS"},
					Label:   "A",
				},
			},
		},
	}

	table := keycodes.Merge(corpus)
	def := table["0x04"]
	assert.Equal(t, "KC_A", def.Key)
	assert.Equal(t, "basic", def.Group)
	assert.Equal(t, []string{"KC_A_ALIAS"}, def.Aliases)
	assert.Equal(t, "A", def.Label)
}

func TestMergeRanges(t *testing.T) {
	corpus := keycodes.RangeCorpus{
		keycodes.DefaultCategory: {
			"0.1.0": {
				"QK_BASIC": {Define: "QK_BASIC"},
			},
			"0.2.0": {
				"QK_BASIC": {Define: "QK_BASIC_RENAMED"},
			},
		},
		"audio": {
			"0.1.0": {
				"QK_AUDIO": {Define: "QK_AUDIO"},
			},
		},
	}

	ranges := keycodes.MergeRanges(corpus)
	require.Len(t, ranges, 2)
	assert.Equal(t, "QK_BASIC_RENAMED", ranges["QK_BASIC"].Define)
	assert.Equal(t, "QK_AUDIO", ranges["QK_AUDIO"].Define)
}
