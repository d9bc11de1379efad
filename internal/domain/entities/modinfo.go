package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// ModInfo is the form state behind modinfo.json.
type ModInfo struct {
	Dependencies map[string]string `yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
	Type         values.ModType    `yaml:"type,omitempty" toml:"type,omitempty"`
	ModID        string            `yaml:"modid" toml:"modid"`
	Name         string            `yaml:"name" toml:"name"`
	Description  string            `yaml:"description,omitempty" toml:"description,omitempty"`
	Version      string            `yaml:"version,omitempty" toml:"version,omitempty"`
	Side         values.ModSide    `yaml:"side,omitempty" toml:"side,omitempty"`
	Authors      []string          `yaml:"authors,omitempty" toml:"authors,omitempty"`
}

// NewModInfo returns a form with the defaults a new mod starts from.
func NewModInfo() *ModInfo {
	return &ModInfo{
		Type:         values.ModTypeCode,
		Version:      "1.0.0",
		Side:         values.SideUniversal,
		Dependencies: map[string]string{},
	}
}

// ApplyDefaults fills fields a loaded form left empty.
func (m *ModInfo) ApplyDefaults() {
	if m.Type == "" {
		m.Type = values.ModTypeCode
	}
	if m.Version == "" {
		m.Version = "1.0.0"
	}
	if m.Side == "" {
		m.Side = values.SideUniversal
	}
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
}

// SetAuthor replaces the author at index i.
func (m *ModInfo) SetAuthor(i int, name string) error {
	if i < 0 || i >= len(m.Authors) {
		return fmt.Errorf("author index %d out of range", i)
	}
	m.Authors[i] = name
	return nil
}

// AddAuthor appends an author entry, which may still be blank.
func (m *ModInfo) AddAuthor(name string) {
	m.Authors = append(m.Authors, name)
}

// RemoveAuthor deletes the author at index i.
func (m *ModInfo) RemoveAuthor(i int) error {
	if i < 0 || i >= len(m.Authors) {
		return fmt.Errorf("author index %d out of range", i)
	}
	m.Authors = append(m.Authors[:i], m.Authors[i+1:]...)
	return nil
}

// CleanAuthors returns the authors with blank entries removed.
func (m *ModInfo) CleanAuthors() []string {
	out := make([]string, 0, len(m.Authors))
	for _, a := range m.Authors {
		if strings.TrimSpace(a) != "" {
			out = append(out, a)
		}
	}
	return out
}

// SetDependency adds or updates a dependency on another mod.
func (m *ModInfo) SetDependency(modID, version string) {
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	m.Dependencies[strings.TrimSpace(modID)] = strings.TrimSpace(version)
}

// RemoveDependency drops a dependency.
func (m *ModInfo) RemoveDependency(modID string) {
	delete(m.Dependencies, modID)
}

// DependencyIDs returns dependency mod ids in sorted order.
func (m *ModInfo) DependencyIDs() []string {
	ids := make([]string, 0, len(m.Dependencies))
	for id := range m.Dependencies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks the fields the game refuses to load without.
func (m *ModInfo) Validate() error {
	var errs []error

	if _, err := values.NewModID(m.ModID); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, errors.New("mod name is required"))
	}
	if err := values.ValidateModVersion(m.Version); err != nil {
		errs = append(errs, err)
	}
	if _, err := values.NewModSide(string(m.Side)); err != nil {
		errs = append(errs, err)
	}
	if _, err := values.NewModType(string(m.Type)); err != nil {
		errs = append(errs, err)
	}
	for _, id := range m.DependencyIDs() {
		if id == "" {
			errs = append(errs, errors.New("dependency with empty mod id"))
			continue
		}
		if err := values.ValidateDependencyVersion(m.Dependencies[id]); err != nil {
			errs = append(errs, fmt.Errorf("dependency %s: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
