// Package sources loads versioned keycode definition files from a source
// directory into an in-memory corpus for merging.
//
// Files are named keycodes_<version>[_<category>].<ext> with <version> a
// MAJOR.MINOR.PATCH triple and <category> an optional lowercase token;
// a missing category token means the default category. A filename that
// does not match the pattern is fatal: the original toolchain silently
// carried on with an undefined version, which let a stray file corrupt
// the layering order.
package sources

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/keystation/keyatlas/pkg/errors"
	"github.com/keystation/keyatlas/pkg/keycodes"
	"github.com/keystation/keyatlas/pkg/logging"
)

// filenamePattern captures the version and optional category tokens of a
// source filename.
var filenamePattern = regexp.MustCompile(`^keycodes_(\d+\.\d+\.\d+)(?:_([a-z]+))?\.(yml|yaml|json|hjson)$`)

// versionFile mirrors the content of one structured source file.
type versionFile struct {
	Ranges   map[string]keycodes.Range      `yaml:"ranges"`
	Keycodes map[string]keycodes.Definition `yaml:"keycodes"`
}

// Load scans dir and groups each file's definitions by category and
// version. The corpus is ready for keycodes.Merge; no layering happens
// here.
func Load(dir string) (keycodes.Corpus, keycodes.RangeCorpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.NewConfigError("sources", "cannot read source directory "+dir, err)
	}

	corpus := make(keycodes.Corpus)
	ranges := make(keycodes.RangeCorpus)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		version, category, err := parseFilename(name)
		if err != nil {
			return nil, nil, err
		}

		path := filepath.Join(dir, name)
		file, err := readVersionFile(path)
		if err != nil {
			return nil, nil, err
		}

		logging.Debug().
			Str("file", name).
			Str("version", version).
			Str("category", category).
			Int("keycodes", len(file.Keycodes)).
			Msg("Loaded source file")

		if corpus[category] == nil {
			corpus[category] = make(map[string]keycodes.Layer)
		}
		corpus[category][version] = file.Keycodes

		if len(file.Ranges) > 0 {
			if ranges[category] == nil {
				ranges[category] = make(map[string]map[string]keycodes.Range)
			}
			ranges[category][version] = file.Ranges
		}
	}

	return corpus, ranges, nil
}

// parseFilename extracts the version and category tokens from a source
// filename.
func parseFilename(name string) (version, category string, err error) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", errors.NewPatternError(name, `keycodes_<version>[_<category>].<ext>`)
	}

	category = m[2]
	if category == "" {
		category = keycodes.DefaultCategory
	}
	return m[1], category, nil
}

// readVersionFile decodes one structured source file. JSON content is
// accepted by the same decoder since JSON is a YAML subset.
func readVersionFile(path string) (*versionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file versionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return &file, nil
}
