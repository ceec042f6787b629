package keyatlas

import (
	"fmt"

	"github.com/keystation/keyatlas/pkg/keycodes"
	"github.com/keystation/keyatlas/pkg/reconcile"
	"github.com/keystation/keyatlas/pkg/registry"
)

// Result is the outcome of one build run.
type Result struct {
	// Descriptors is the emitted registry, ascending by code.
	Descriptors []registry.Descriptor

	// Mismatches are the non-fatal symbolic-name diagnostics recorded
	// during reconciliation.
	Mismatches []reconcile.Mismatch

	// Ranges are the merged range declarations carried alongside the
	// keycode definitions.
	Ranges map[string]keycodes.Range

	// Categories is the number of source categories that contributed.
	Categories int
}

// Summary returns a one-line human-readable account of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d descriptors from %d categories (%d ranges, %d mismatches)",
		len(r.Descriptors), r.Categories, len(r.Ranges), len(r.Mismatches))
}
