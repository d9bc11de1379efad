package entities

import (
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

const (
	firstSymbol = 'A'
	// SymbolCount is the number of single-letter pattern symbols, 'A' through 'Z'.
	SymbolCount = 26
)

// IngredientStack is what a pattern symbol stands for.
type IngredientStack struct {
	Kind values.ItemKind
	Code string
}

// SymbolBinding ties a pattern symbol to its ingredient.
type SymbolBinding struct {
	Symbol rune
	IngredientStack
}

// KindConflict records a placement whose kind disagreed with the kind already
// bound to its code. The binding keeps the first kind.
type KindConflict struct {
	Code    string
	Symbol  rune
	Kept    values.ItemKind
	Ignored values.ItemKind
	X, Y    int
}

// CompiledRecipe is the result of compiling a session. It is never mutated
// after Compile returns.
type CompiledRecipe struct {
	// PatternRows holds one string per grid row; nil when Shapeless.
	PatternRows []string
	// Ingredients is ordered by symbol, which is first-occurrence order.
	Ingredients   []SymbolBinding
	KindConflicts []KindConflict
	Output        OutputSpec
	Width         int
	Height        int
	RecipeGroup   int
	Shapeless     bool
	Enabled       bool
}

// SymbolTable returns the symbol -> ingredient mapping.
func (r *CompiledRecipe) SymbolTable() map[rune]IngredientStack {
	table := make(map[rune]IngredientStack, len(r.Ingredients))
	for _, b := range r.Ingredients {
		table[b.Symbol] = b.IngredientStack
	}
	return table
}

// SymbolFor returns the symbol bound to code.
func (r *CompiledRecipe) SymbolFor(code string) (rune, bool) {
	for _, b := range r.Ingredients {
		if b.Code == code {
			return b.Symbol, true
		}
	}
	return 0, false
}

// compileGrid scans the grid row-major (y outer, x inner) and assigns
// symbols in first-occurrence order of each distinct code.
func compileGrid(g *Grid, output OutputSpec, shapeless bool) (*CompiledRecipe, error) {
	symbols := make(map[string]rune)
	var bindings []SymbolBinding
	var conflicts []KindConflict
	var overflow []string

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := g.cells[y][x]
			if p == nil {
				continue
			}
			if sym, ok := symbols[p.Code]; ok {
				bound := bindings[sym-firstSymbol]
				if bound.Kind != p.Kind {
					conflicts = append(conflicts, KindConflict{
						Code: p.Code, Symbol: sym, Kept: bound.Kind, Ignored: p.Kind, X: x, Y: y,
					})
				}
				continue
			}
			if len(bindings) == SymbolCount {
				if !contains(overflow, p.Code) {
					overflow = append(overflow, p.Code)
				}
				continue
			}
			sym := firstSymbol + rune(len(bindings))
			symbols[p.Code] = sym
			bindings = append(bindings, SymbolBinding{
				Symbol:          sym,
				IngredientStack: IngredientStack{Kind: p.Kind, Code: p.Code},
			})
		}
	}

	if len(overflow) > 0 {
		return nil, &TooManyDistinctIngredientsError{
			FirstUnassigned: overflow[0],
			Distinct:        len(bindings) + len(overflow),
			Available:       SymbolCount,
		}
	}

	recipe := &CompiledRecipe{
		Ingredients:   bindings,
		KindConflicts: conflicts,
		Output:        output,
		Width:         g.width,
		Height:        g.height,
		Shapeless:     shapeless,
	}

	if !shapeless {
		rows := make([]string, g.height)
		for y := 0; y < g.height; y++ {
			row := make([]rune, g.width)
			for x := 0; x < g.width; x++ {
				if p := g.cells[y][x]; p != nil {
					row[x] = symbols[p.Code]
				} else {
					row[x] = ' '
				}
			}
			rows[y] = string(row)
		}
		recipe.PatternRows = rows
	}

	return recipe, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
