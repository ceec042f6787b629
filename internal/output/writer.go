// Package output serializes the generated descriptor list to its JSON
// artifact.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/keystation/keyatlas/pkg/constants"
	"github.com/keystation/keyatlas/pkg/errors"
	"github.com/keystation/keyatlas/pkg/registry"
)

// Marshal renders the descriptor list as a human-formatted JSON array
// with 2-space indentation and a trailing newline.
func Marshal(descriptors []registry.Descriptor) ([]byte, error) {
	if descriptors == nil {
		// An empty table still produces a valid artifact.
		descriptors = []registry.Descriptor{}
	}

	data, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return nil, errors.NewParseError("json", "", "cannot marshal descriptors", err)
	}
	return append(data, '\n'), nil
}

// Write marshals the descriptor list and writes it to path, creating
// parent directories as needed. Nothing is written if marshaling fails.
func Write(path string, descriptors []registry.Descriptor) error {
	data, err := Marshal(descriptors)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
