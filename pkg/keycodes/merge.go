package keycodes

import (
	"sort"

	"github.com/keystation/keyatlas/pkg/logging"
)

// Merge flattens a corpus into a single table.
//
// Categories are processed in ascending lexicographic order, each folded
// into its own working map before being overlaid onto the shared result,
// so a category's reset directive can never disturb another category's
// keys. Cross-category collisions resolve to the later category.
func Merge(corpus Corpus) Table {
	result := make(Table)

	for _, category := range sortedKeys(corpus) {
		merged := mergeCategory(category, corpus[category])
		for code, def := range merged {
			result[code] = def
		}
	}

	return result
}

// mergeCategory folds one category's version layers, in ascending version
// order, into a working map.
//
// The fold has two states per layer: if the layer carries the reset
// sentinel the working map restarts empty before the layer's remaining
// keys merge in; otherwise the layer's keys simply overlay what is
// already there. A nil layer contributes nothing and leaves reset state
// untouched. Layers are never partially applied: each one either merges
// whole or is wiped whole by a later reset.
func mergeCategory(category string, versions map[string]Layer) Layer {
	working := make(Layer)

	// Lexicographic version order. Matches the source data today, where
	// every version component is a single digit; "0.10.0" would sort
	// before "0.9.0". See the version ordering note in DESIGN.md.
	for _, version := range sortedKeys(versions) {
		layer := versions[version]
		if len(layer) == 0 {
			continue
		}

		if _, reset := layer[ResetKey]; reset {
			logging.Debug().
				Str("category", category).
				Str("version", version).
				Int("discarded", len(working)).
				Msg("Reset directive, discarding accumulated keycodes")
			working = make(Layer)
		}

		for code, def := range layer {
			if code == ResetKey {
				continue
			}
			working[code] = def
		}
	}

	return working
}

// MergeRanges flattens range declarations with the same category and
// version ordering as Merge. Ranges carry no reset semantics: a reset
// directive discards keycodes only, never range declarations.
func MergeRanges(corpus RangeCorpus) map[string]Range {
	result := make(map[string]Range)

	for _, category := range sortedKeys(corpus) {
		versions := corpus[category]
		for _, version := range sortedKeys(versions) {
			for name, r := range versions[version] {
				result[name] = r
			}
		}
	}

	return result
}

// sortedKeys returns the keys of m in ascending lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
