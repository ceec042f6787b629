package keyatlas

import (
	"github.com/keystation/keyatlas/pkg/constants"
	"github.com/keystation/keyatlas/pkg/errors"
	"github.com/keystation/keyatlas/pkg/keycodes"
	"github.com/keystation/keyatlas/pkg/registry"
)

// Option is a function that configures a Builder instance
type Option func(*config) error

// config holds the resolved Builder configuration
type config struct {
	sourcesDir    string
	overridesFile string
	registryFile  string
	outputFile    string

	// Injected collaborators, bypassing the file loaders when set
	corpus      keycodes.Corpus
	rangeCorpus keycodes.RangeCorpus
	overrides   registry.Overrides
	index       *registry.Index
}

// defaultConfig returns the configuration used when no options are given
func defaultConfig() *config {
	return &config{
		sourcesDir:    constants.DefaultSourcesDir,
		overridesFile: constants.DefaultOverridesFile,
		registryFile:  constants.DefaultRegistryFile,
		outputFile:    constants.DefaultOutputFile,
	}
}

// WithSourcesDir configures the directory of versioned keycode
// definition files.
func WithSourcesDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewConfigError("sources", "sources directory cannot be empty", nil)
		}
		c.sourcesDir = dir
		return nil
	}
}

// WithOverridesFile configures the two-column description override table.
func WithOverridesFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewConfigError("overrides", "overrides file cannot be empty", nil)
		}
		c.overridesFile = path
		return nil
	}
}

// WithRegistryFile configures the curated registry artifact to reconcile
// against.
func WithRegistryFile(path string) Option {
	return func(c *config) error {
		c.registryFile = path
		return nil
	}
}

// WithOutputFile configures where the generated artifact is written.
// An empty path disables writing; the result still carries the full
// descriptor list.
func WithOutputFile(path string) Option {
	return func(c *config) error {
		c.outputFile = path
		return nil
	}
}

// WithCorpus injects an in-memory corpus, bypassing the source loader.
func WithCorpus(corpus keycodes.Corpus) Option {
	return func(c *config) error {
		c.corpus = corpus
		return nil
	}
}

// WithRanges injects in-memory range declarations alongside an injected
// corpus.
func WithRanges(ranges keycodes.RangeCorpus) Option {
	return func(c *config) error {
		c.rangeCorpus = ranges
		return nil
	}
}

// WithOverrides injects an in-memory description override table,
// bypassing the overrides file.
func WithOverrides(overrides registry.Overrides) Option {
	return func(c *config) error {
		c.overrides = overrides
		return nil
	}
}

// WithRegistry injects an in-memory curated registry, bypassing the
// registry file.
func WithRegistry(index *registry.Index) Option {
	return func(c *config) error {
		c.index = index
		return nil
	}
}
