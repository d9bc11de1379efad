package entities

import (
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// IngredientRef is a palette entry. IDs are unique within a palette; codes are not.
type IngredientRef struct {
	ID   string
	Code string
	Kind values.ItemKind
}

// Placement is an ingredient copied into a grid cell. PlacementID only tells
// placements apart for display; compilation ignores it.
type Placement struct {
	IngredientRef
	PlacementID string
}

// OutputSpec describes the stack a recipe produces.
type OutputSpec struct {
	Kind     values.ItemKind `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Code     string          `yaml:"code" toml:"code"`
	Quantity int             `yaml:"quantity,omitempty" toml:"quantity,omitempty"`
}

// DefaultPalette returns the four ingredients every new session starts with.
func DefaultPalette() []IngredientRef {
	return []IngredientRef{
		{ID: "1", Code: "game:ingot-copper", Kind: values.KindItem},
		{ID: "2", Code: "game:ingot-tin", Kind: values.KindItem},
		{ID: "3", Code: "game:plank-oak", Kind: values.KindItem},
		{ID: "4", Code: "game:stick", Kind: values.KindItem},
	}
}

// DefaultOutput is the output of a fresh session: one item with no code yet.
func DefaultOutput() OutputSpec {
	return OutputSpec{Kind: values.KindItem, Quantity: 1}
}
