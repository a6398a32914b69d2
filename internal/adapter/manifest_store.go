package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "plate.dev/pkg/plate/internal/model"
)

// ManifestStore loads optional template metadata from a template tree.
type ManifestStore interface {
	// Load reads the manifest at the template root. A missing manifest is
	// not an error; it yields the zero Manifest (whole tree, no post
	// commands, no extra excludes).
	Load(templateRoot m.Path) (m.Manifest, error)
}

// LocalManifestStore reads plate.template.yaml from disk.
type LocalManifestStore struct{}

// NewLocalManifestStore constructs a LocalManifestStore.
func NewLocalManifestStore() *LocalManifestStore {
	return &LocalManifestStore{}
}

// Load reads and decodes the template manifest, if present.
func (s *LocalManifestStore) Load(templateRoot m.Path) (m.Manifest, error) {
	var manifest m.Manifest

	path := filepath.Join(string(templateRoot), m.ManifestFileName)

	content, err := os.ReadFile(path) // #nosec G304 - path is rooted in the resolved template dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return manifest, nil
		}

		return manifest, fmt.Errorf("read manifest %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return manifest, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}

var _ ManifestStore = (*LocalManifestStore)(nil)
