// Package keyatlas builds a canonical keycode registry for keyboard
// configuration tools.
//
// The pipeline ingests versioned, categorized keycode definition files
// from a firmware project, layers them into one authoritative table, and
// reconciles that table against a curated registry and a description
// override table to produce enriched descriptor records, written out as
// a single JSON artifact.
//
// Example usage:
//
//	builder, err := keyatlas.New(
//	    keyatlas.WithSourcesDir("data/keycodes"),
//	    keyatlas.WithOverridesFile("data/descriptions.tsv"),
//	    keyatlas.WithOutputFile("build/keycodes.json"),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := builder.Build(ctx)
package keyatlas

import (
	"context"
	"os"

	"github.com/keystation/keyatlas/internal/output"
	"github.com/keystation/keyatlas/internal/sources"
	"github.com/keystation/keyatlas/pkg/keycodes"
	"github.com/keystation/keyatlas/pkg/logging"
	"github.com/keystation/keyatlas/pkg/reconcile"
	"github.com/keystation/keyatlas/pkg/registry"
)

// Builder runs the registry build pipeline: load, merge, reconcile,
// write. A run either completes and writes exactly one artifact, or
// aborts with nothing written.
type Builder interface {
	// Build runs the pipeline once and returns the outcome.
	Build(ctx context.Context) (*Result, error)

	// OnDescriptor registers a callback invoked for every emitted descriptor.
	OnDescriptor(DescriptorHook)

	// OnMismatch registers a callback invoked for every mismatch diagnostic.
	OnMismatch(MismatchHook)
}

// builder is the internal implementation of the Builder interface
type builder struct {
	config *config
	hooks  *hooks
}

// New creates a new Builder instance with the given options
func New(opts ...Option) (Builder, error) {
	b := &builder{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(b.config); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build runs the pipeline stages strictly in order, each stage fully
// consuming the previous stage's output.
func (b *builder) Build(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corpus, rangeCorpus, err := b.loadCorpus()
	if err != nil {
		return nil, err
	}

	table := keycodes.Merge(corpus)
	ranges := keycodes.MergeRanges(rangeCorpus)
	logging.Info().
		Int("categories", len(corpus)).
		Int("keycodes", len(table)).
		Int("ranges", len(ranges)).
		Msg("Merged source layers")

	overrides, err := b.loadOverrides()
	if err != nil {
		return nil, err
	}

	index, err := b.loadRegistry()
	if err != nil {
		return nil, err
	}

	descriptors, mismatches, err := reconcile.New(overrides, index).Reconcile(table)
	if err != nil {
		return nil, err
	}

	b.hooks.fire(descriptors, mismatches)

	if b.config.outputFile != "" {
		if err := output.Write(b.config.outputFile, descriptors); err != nil {
			return nil, err
		}
		logging.Info().
			Str("path", b.config.outputFile).
			Int("descriptors", len(descriptors)).
			Msg("Wrote registry artifact")
	}

	return &Result{
		Descriptors: descriptors,
		Mismatches:  mismatches,
		Ranges:      ranges,
		Categories:  len(corpus),
	}, nil
}

// OnDescriptor registers a callback invoked for every emitted descriptor.
func (b *builder) OnDescriptor(fn DescriptorHook) {
	b.hooks.addDescriptorHook(fn)
}

// OnMismatch registers a callback invoked for every mismatch diagnostic.
func (b *builder) OnMismatch(fn MismatchHook) {
	b.hooks.addMismatchHook(fn)
}

// loadCorpus returns the injected corpus if one was configured, and
// otherwise loads it from the sources directory.
func (b *builder) loadCorpus() (keycodes.Corpus, keycodes.RangeCorpus, error) {
	if b.config.corpus != nil {
		return b.config.corpus, b.config.rangeCorpus, nil
	}
	return sources.Load(b.config.sourcesDir)
}

// loadOverrides returns the injected override table if one was
// configured, and otherwise loads it from the overrides file.
func (b *builder) loadOverrides() (registry.Overrides, error) {
	if b.config.overrides != nil {
		return b.config.overrides, nil
	}
	return registry.LoadOverrides(b.config.overridesFile)
}

// loadRegistry returns the injected curated index if one was configured,
// and otherwise loads it from the registry file. A missing registry file
// is not an error: the first run of a fresh checkout has no prior
// artifact to reconcile against.
func (b *builder) loadRegistry() (*registry.Index, error) {
	if b.config.index != nil {
		return b.config.index, nil
	}

	if _, err := os.Stat(b.config.registryFile); os.IsNotExist(err) {
		logging.Warn().
			Str("path", b.config.registryFile).
			Msg("No curated registry found, deriving every field from source data")
		return nil, nil
	}
	return registry.LoadIndex(b.config.registryFile)
}
