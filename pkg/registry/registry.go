// Package registry defines the enriched keycode descriptor records and the
// read-only collaborators the reconciliation engine consults: the curated
// registry of prior descriptors and the flat description override table.
package registry

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/keystation/keyatlas/pkg/errors"
)

// Name holds the long and short symbolic names of a keycode.
type Name struct {
	Long  string `json:"long" yaml:"long"`
	Short string `json:"short" yaml:"short"`
}

// Descriptor is the final enriched record for one keycode. The same shape
// serves both the curated registry input and the emitted artifact, since
// the curated registry is a prior run's output.
type Descriptor struct {
	Description string   `json:"description" yaml:"description"`
	Code        int      `json:"code" yaml:"code"`
	Label       string   `json:"label" yaml:"label"`
	Name        Name     `json:"name" yaml:"name"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Ascii       string   `json:"ascii,omitempty" yaml:"ascii,omitempty"`
}

// Index is a read-only lookup over curated descriptors, keyed by numeric
// code.
type Index struct {
	byCode map[int]Descriptor
}

// NewIndex builds an Index from a list of descriptors. On duplicate
// codes the later descriptor wins.
func NewIndex(descriptors []Descriptor) *Index {
	idx := &Index{byCode: make(map[int]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		idx.byCode[d.Code] = d
	}
	return idx
}

// Lookup returns the curated descriptor for code, if one exists.
func (idx *Index) Lookup(code int) (Descriptor, bool) {
	if idx == nil {
		return Descriptor{}, false
	}
	d, ok := idx.byCode[code]
	return d, ok
}

// Len returns the number of indexed descriptors.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byCode)
}

// LoadIndex reads a curated registry artifact (a JSON array of
// descriptors) from path and indexes it by code.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("registry", "cannot read curated registry "+path, err)
	}

	var descriptors []Descriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	return NewIndex(descriptors), nil
}

// Overrides maps a symbolic keycode name to its authoritative human
// description.
type Overrides map[string]string

// LoadOverrides reads the flat two-column override table from path: one
// record per line, symbolic name and description separated by a tab, no
// header. Blank lines are skipped.
func LoadOverrides(path string) (Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewConfigError("overrides", "cannot read override table "+path, err)
	}
	defer f.Close()

	overrides := make(Overrides)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, description, found := strings.Cut(line, "\t")
		if !found {
			return nil, errors.NewParseError("tsv", path, "line without tab separator: "+line, nil)
		}
		overrides[strings.TrimSpace(name)] = strings.TrimSpace(description)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	return overrides, nil
}
