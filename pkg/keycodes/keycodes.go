// Package keycodes defines the in-memory model for versioned keycode
// definitions and the layering merge that flattens them into a single
// authoritative table.
//
// Definitions arrive grouped by category and release version. Within a
// category, later versions override earlier ones and may carry a reset
// directive that discards everything the category accumulated so far.
// Categories are then layered onto one shared table in ascending order,
// later categories winning on code collisions.
package keycodes

// ResetKey is the sentinel entry key in a version layer that discards all
// keycodes accumulated so far for that category. It is a pure directive
// and never a keycode itself.
const ResetKey = "!reset!"

// DefaultCategory is the reserved marker for definitions that carry no
// category token in their source filename.
const DefaultCategory = "_"

// Definition is one keycode definition as it appears in a source file,
// keyed within its layer by a hexadecimal code string.
type Definition struct {
	Key     string   `json:"key" yaml:"key"`                             // Symbolic name, e.g. "KC_A"
	Group   string   `json:"group,omitempty" yaml:"group,omitempty"`     // Firmware grouping, informational
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"` // Alternate names, first is the short name
	Label   string   `json:"label,omitempty" yaml:"label,omitempty"`     // Optional display label
}

// Layer holds one version's keycode definitions for one category,
// keyed by hexadecimal code string. A nil Layer means the version file
// carried no keycode section.
type Layer map[string]Definition

// Corpus groups raw definition layers by category and version.
// Category and version are both strings; the default category is
// represented by DefaultCategory.
type Corpus map[string]map[string]Layer

// Range is a named keycode range declaration carried alongside the
// keycode definitions in source files.
type Range struct {
	Define string `json:"define" yaml:"define"`
}

// RangeCorpus groups raw range declarations by category and version,
// mirroring Corpus.
type RangeCorpus map[string]map[string]map[string]Range

// Table is the flat result of layering: one winning Definition per
// unique hexadecimal code.
type Table map[string]Definition
