// Package reconcile derives the final human-facing descriptor records from
// a merged keycode table.
//
// The engine consults two injected read-only collaborators: the flat
// description override table and the curated registry of prior
// descriptors. Every emitted field follows a deterministic fallback
// chain, and disagreements between source data and the curated registry
// are surfaced as non-fatal diagnostics.
package reconcile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/keystation/keyatlas/pkg/errors"
	"github.com/keystation/keyatlas/pkg/keycodes"
	"github.com/keystation/keyatlas/pkg/logging"
	"github.com/keystation/keyatlas/pkg/registry"
)

// Mismatch records a symbolic-name disagreement between merged source
// data and a curated registry entry for the same code. It never alters
// the emitted record and never aborts a run.
type Mismatch struct {
	Code int    // Numeric keycode
	Want string // Long name held by the curated registry
	Got  string // Symbolic name from the merged source data
}

// Reconciler derives descriptors from a merged table using injected
// collaborators.
type Reconciler struct {
	overrides registry.Overrides
	index     *registry.Index
}

// New creates a Reconciler. Both collaborators may be nil or empty, in
// which case every descriptor field is derived from source data alone.
func New(overrides registry.Overrides, index *registry.Index) *Reconciler {
	return &Reconciler{
		overrides: overrides,
		index:     index,
	}
}

// Reconcile produces the ordered descriptor list for table, ascending by
// numeric code. A hexadecimal key that fails to parse is fatal; mismatch
// diagnostics are collected and returned alongside the descriptors.
func (r *Reconciler) Reconcile(table keycodes.Table) ([]registry.Descriptor, []Mismatch, error) {
	type entry struct {
		code int
		hex  string
	}

	entries := make([]entry, 0, len(table))
	for hex := range table {
		code, err := ParseCode(hex)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry{code: code, hex: hex})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].code < entries[j].code })

	descriptors := make([]registry.Descriptor, 0, len(entries))
	var mismatches []Mismatch

	for _, e := range entries {
		def := table[e.hex]

		existing, found := r.index.Lookup(e.code)

		label := firstNonEmpty(existing.Label, def.Label, Humanize(def.Key))
		description := firstNonEmpty(r.overrides[def.Key], existing.Description, label)

		short := def.Key
		if len(def.Aliases) > 0 && def.Aliases[0] != "" {
			short = def.Aliases[0]
		}

		keywords := []string{label}
		if found {
			keywords = append([]string(nil), existing.Keywords...)
		}

		d := registry.Descriptor{
			Description: description,
			Code:        e.code,
			Label:       label,
			Name: registry.Name{
				Long:  def.Key, // Source is authoritative for the long name
				Short: short,
			},
			Keywords: keywords,
		}
		if found {
			d.Ascii = existing.Ascii
		}

		if found && existing.Name.Long != def.Key {
			logging.Warn().
				Int("code", e.code).
				Str("want", existing.Name.Long).
				Str("got", def.Key).
				Msg("Symbolic name disagrees with curated registry")
			mismatches = append(mismatches, Mismatch{
				Code: e.code,
				Want: existing.Name.Long,
				Got:  def.Key,
			})
		}

		descriptors = append(descriptors, d)
	}

	return descriptors, mismatches, nil
}

// ParseCode parses a hexadecimal code string, with or without a "0x"
// prefix, into its numeric keycode.
func ParseCode(hex string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	code, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, errors.NewParseError("hex", "", "invalid keycode "+strconv.Quote(hex), err)
	}
	return int(code), nil
}

// firstNonEmpty returns the first of its arguments that is not the empty
// string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
