package manifest

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Entry records one generated class in the manifest.
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Header      string `yaml:"header" json:"header"`
	Source      string `yaml:"source,omitempty" json:"source,omitempty"`
	Template    bool   `yaml:"template,omitempty" json:"template,omitempty"`
}

// Manifest tracks the classes generated into an output directory.
type Manifest struct {
	Classes []Entry `yaml:"classes" json:"classes"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "unmarshal manifest %s", path)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create manifest directory")
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write manifest")
	}

	return nil
}

// Record adds a class entry, replacing any existing entry with the same name.
func (m *Manifest) Record(e Entry) {
	for i := range m.Classes {
		if m.Classes[i].Name == e.Name {
			m.Classes[i] = e
			return
		}
	}

	m.Classes = append(m.Classes, e)
}

// Find returns the entry for the named class, if present.
func (m *Manifest) Find(name string) (Entry, bool) {
	for _, e := range m.Classes {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
