// Package keymap persists key-to-descriptor bindings for the input engine.
//
// Bindings are stored as a single JSON document mapping key identifiers
// to command descriptors. The document is rewritten wholesale on every
// save; there is no incremental update and no unbind operation.
package keymap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/virtkbd/internal/command"
)

// Store is a file-backed binding store.
//
// Load and Save return errors rather than aborting: the engine logs and
// ignores them, keeping its in-memory map authoritative. A malformed or
// missing document means "start empty", never a hard failure.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the binding document. A missing file is not an error and
// yields an empty map. Any other failure yields an empty map plus the
// error for the caller to report.
func (s *Store) Load() (map[string]command.Descriptor, error) {
	bindings := make(map[string]command.Descriptor)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return bindings, nil
		}
		return bindings, fmt.Errorf("reading bindings %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &bindings); err != nil {
		return make(map[string]command.Descriptor), fmt.Errorf("parsing bindings %s: %w", s.path, err)
	}
	return bindings, nil
}

// Save rewrites the whole binding document.
func (s *Store) Save(bindings map[string]command.Descriptor) error {
	data, err := json.MarshalIndent(bindings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling bindings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing bindings %s: %w", s.path, err)
	}
	return nil
}
