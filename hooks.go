package keyatlas

import (
	"sync"

	"github.com/keystation/keyatlas/pkg/reconcile"
	"github.com/keystation/keyatlas/pkg/registry"
)

// Hook function types for build events
type (
	// DescriptorHook is called for every descriptor the build emits
	DescriptorHook func(descriptor registry.Descriptor)

	// MismatchHook is called for every mismatch diagnostic the build records
	MismatchHook func(mismatch reconcile.Mismatch)
)

// hooks manages event callbacks for build results
type hooks struct {
	mu           sync.RWMutex
	onDescriptor []DescriptorHook
	onMismatch   []MismatchHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// addDescriptorHook registers a descriptor callback
func (h *hooks) addDescriptorHook(fn DescriptorHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDescriptor = append(h.onDescriptor, fn)
}

// addMismatchHook registers a mismatch callback
func (h *hooks) addMismatchHook(fn MismatchHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onMismatch = append(h.onMismatch, fn)
}

// fire invokes the registered callbacks for a finished reconciliation
func (h *hooks) fire(descriptors []registry.Descriptor, mismatches []reconcile.Mismatch) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, fn := range h.onDescriptor {
		for _, d := range descriptors {
			fn(d)
		}
	}
	for _, fn := range h.onMismatch {
		for _, m := range mismatches {
			fn(m)
		}
	}
}
