package services

import (
	"strings"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// NewRecipeDocument renders a compiled recipe as a grid recipe document.
// Shapeless recipes carry no ingredientPattern; shapeless:false,
// enabled:true and recipeGroup:0 are left out.
func NewRecipeDocument(r *entities.CompiledRecipe) *GridRecipeDocument {
	doc := &GridRecipeDocument{
		Ingredients: make(map[string]StackDocument, len(r.Ingredients)),
		Width:       r.Width,
		Height:      r.Height,
		Output: StackDocument{
			Type:     stackType(r.Output.Kind),
			Code:     r.Output.Code,
			Quantity: r.Output.Quantity,
		},
		Shapeless:   r.Shapeless,
		RecipeGroup: r.RecipeGroup,
	}

	if !r.Shapeless {
		doc.IngredientPattern = strings.Join(r.PatternRows, PatternSeparator)
	}
	if !r.Enabled {
		disabled := false
		doc.Enabled = &disabled
	}

	for _, b := range r.Ingredients {
		doc.Ingredients[string(b.Symbol)] = StackDocument{
			Type: stackType(b.Kind),
			Code: b.Code,
		}
	}

	return doc
}

// PatternRows splits an ingredientPattern back into rows.
func PatternRows(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, PatternSeparator)
}

func stackType(kind values.ItemKind) string {
	if kind.IsDefault() {
		return ""
	}
	return kind.String()
}
