package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// Manifest entry kinds, as seen by build filters.
const (
	EntryKindItem   = "item"
	EntryKindBlock  = "block"
	EntryKindRecipe = "recipe"
)

// RecipeEntry is a grid recipe written as rows of cell tokens.
type RecipeEntry struct {
	Enabled   *bool      `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Name      string     `yaml:"name" toml:"name"`
	Output    OutputSpec `yaml:"output" toml:"output"`
	Rows      []string   `yaml:"rows" toml:"rows"`
	Tags      []string   `yaml:"tags,omitempty" toml:"tags,omitempty"`
	Group     int        `yaml:"group,omitempty" toml:"group,omitempty"`
	Shapeless bool       `yaml:"shapeless,omitempty" toml:"shapeless,omitempty"`
}

// IsEnabled reports whether the recipe is active in game; unset means yes.
func (r RecipeEntry) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// ItemEntry is a named item definition.
type ItemEntry struct {
	Name           string `yaml:"name" toml:"name"`
	ItemDefinition `yaml:",inline"`
}

// BlockEntry is a named block definition.
type BlockEntry struct {
	Name            string `yaml:"name" toml:"name"`
	BlockDefinition `yaml:",inline"`
}

// Manifest describes a whole mod: its modinfo and every asset to generate.
type Manifest struct {
	Items   []ItemEntry   `yaml:"items,omitempty" toml:"items,omitempty"`
	Blocks  []BlockEntry  `yaml:"blocks,omitempty" toml:"blocks,omitempty"`
	Recipes []RecipeEntry `yaml:"recipes,omitempty" toml:"recipes,omitempty"`
	ModInfo ModInfo       `yaml:"modinfo" toml:"modinfo"`
}

// ApplyDefaults fills defaults on the modinfo and every definition.
func (m *Manifest) ApplyDefaults() {
	m.ModInfo.ApplyDefaults()
	for i := range m.Items {
		m.Items[i].ApplyDefaults()
		if m.Items[i].Code == "" {
			m.Items[i].Code = m.Items[i].Name
		}
	}
	for i := range m.Blocks {
		m.Blocks[i].ApplyDefaults()
		if m.Blocks[i].Code == "" {
			m.Blocks[i].Code = m.Blocks[i].Name
		}
	}
	for i := range m.Recipes {
		r := &m.Recipes[i]
		if r.Output.Kind == "" {
			r.Output.Kind = values.KindItem
		}
		r.Output.Quantity = values.ClampQuantity(r.Output.Quantity)
	}
}

// Validate checks the modinfo and that entry names are present and unique
// within their kind. Names become file names.
func (m *Manifest) Validate() error {
	var errs []error
	if err := m.ModInfo.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("modinfo: %w", err))
	}

	check := func(kind string, names []string) {
		seen := make(map[string]bool, len(names))
		for i, name := range names {
			switch {
			case strings.TrimSpace(name) == "":
				errs = append(errs, fmt.Errorf("%s #%d: name is required", kind, i+1))
			case strings.ContainsAny(name, `/\`) || name == "." || name == "..":
				errs = append(errs, fmt.Errorf("%s %q: name must be a plain file name", kind, name))
			case seen[name]:
				errs = append(errs, fmt.Errorf("%s %q: duplicate name", kind, name))
			}
			seen[name] = true
		}
	}

	items := make([]string, len(m.Items))
	for i, e := range m.Items {
		items[i] = e.Name
	}
	blocks := make([]string, len(m.Blocks))
	for i, e := range m.Blocks {
		blocks[i] = e.Name
	}
	recipes := make([]string, len(m.Recipes))
	for i, e := range m.Recipes {
		recipes[i] = e.Name
		if len(e.Rows) == 0 {
			errs = append(errs, fmt.Errorf("recipe %q: rows are required", e.Name))
		}
		if strings.TrimSpace(e.Output.Code) == "" {
			errs = append(errs, fmt.Errorf("recipe %q: output code is required", e.Name))
		}
	}
	check(EntryKindItem, items)
	check(EntryKindBlock, blocks)
	check(EntryKindRecipe, recipes)

	return errors.Join(errs...)
}

// EntryCount is the number of documents the manifest produces, modinfo excluded.
func (m *Manifest) EntryCount() int {
	return len(m.Items) + len(m.Blocks) + len(m.Recipes)
}
