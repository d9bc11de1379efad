// Package manifest loads project manifests from YAML or TOML files.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
)

// Loader reads manifests. The format follows the file extension.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the manifest at path.
func (l *Loader) Load(path string) (*entities.Manifest, error) {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest directory: %w", err)
	}
	defer func() {
		_ = root.Close()
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return l.LoadYAML(file)
	case ".toml":
		return l.LoadTOML(file)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (supported: .yaml, .yml, .toml)", ext)
	}
}

// LoadYAML decodes a YAML manifest.
func (l *Loader) LoadYAML(r io.Reader) (*entities.Manifest, error) {
	var m entities.Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest YAML: %w", err)
	}
	return &m, nil
}

// LoadTOML decodes a TOML manifest. Unknown keys are rejected.
func (l *Loader) LoadTOML(r io.Reader) (*entities.Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m entities.Manifest
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&m); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to decode manifest TOML at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to decode manifest TOML: %w", err)
	}
	return &m, nil
}
