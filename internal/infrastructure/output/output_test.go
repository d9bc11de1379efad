package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
)

func pickaxeDocument() *services.GridRecipeDocument {
	return &services.GridRecipeDocument{
		IngredientPattern: "AAA| B | B ",
		Ingredients: map[string]services.StackDocument{
			"A": {Code: "game:ingot-copper"},
			"B": {Code: "game:stick"},
		},
		Width:  3,
		Height: 3,
		Output: services.StackDocument{Code: "mymod:pickaxe-copper", Quantity: 1},
	}
}

func TestEncoderFactory(t *testing.T) {
	f := NewEncoderFactory()

	for _, format := range f.SupportedFormats() {
		enc, err := f.Create(format, Options{})
		require.NoError(t, err, format)
		assert.NotNil(t, enc)
	}

	enc, err := f.Create("", Options{})
	require.NoError(t, err)
	assert.IsType(t, &JSONEncoder{}, enc)

	_, err = f.Create("xml", Options{})
	assert.ErrorContains(t, err, "unknown format: xml")
}

func TestJSONEncoder(t *testing.T) {
	data, err := NewJSONEncoder().Encode(pickaxeDocument())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n  \"ingredientPattern\": \"AAA| B | B \",")
	assert.Contains(t, out, `"code": "game:ingot-copper"`)

	var back services.GridRecipeDocument
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *pickaxeDocument(), back)
}

func TestJSONEncoder_NoHTMLEscaping(t *testing.T) {
	data, err := NewJSONEncoder().Encode(map[string]string{"name": "Tools & <Things>"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tools & <Things>")
}

func TestYAMLEncoder(t *testing.T) {
	data, err := NewYAMLEncoder().Encode(pickaxeDocument())
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, "AAA| B | B ", back["ingredientPattern"])
	assert.NotContains(t, back, "shapeless")
}

func TestTableEncoder_Recipe(t *testing.T) {
	data, err := NewTableEncoder(false).Encode(pickaxeDocument())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "game:ingot-copper")
	assert.Contains(t, out, "game:stick")
	assert.Contains(t, out, "mymod:pickaxe-copper x1")
	assert.Contains(t, out, emptyCell)
	assert.Contains(t, out, "3x3\n")
	assert.NotContains(t, out, "\033[", "no colors when disabled")
}

func TestTableEncoder_ShapelessRecipe(t *testing.T) {
	doc := pickaxeDocument()
	doc.IngredientPattern = ""
	doc.Shapeless = true
	disabled := false
	doc.Enabled = &disabled
	doc.RecipeGroup = 2

	data, err := NewTableEncoder(false).Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "3x3, shapeless, disabled, group 2")
	assert.NotContains(t, string(data), emptyCell)
}

func TestTableEncoder_Fields(t *testing.T) {
	doc := services.NewModInfoDocument(&entities.ModInfo{ModID: "mymod", Name: "My Mod", Authors: []string{"A", "B"}})

	data, err := NewTableEncoder(false).Encode(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "modid")
	assert.Contains(t, out, "A, B")
	assert.Contains(t, out, "dependencies")
}

func TestFlatten(t *testing.T) {
	rows, err := flatten(map[string]any{
		"b": map[string]any{"y": 1, "x": "s"},
		"a": []int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"a", "1, 2"}, {"b.x", "s"}, {"b.y", "1"}}, rows)
}

func TestRenderSession(t *testing.T) {
	s, err := entities.NewRecipeSession(entities.WithGridSize(2, 2))
	require.NoError(t, err)
	require.NoError(t, services.FillFromRows(s, []string{"game:stick,game:log-oak@block", "_,_"}))
	require.NoError(t, s.SelectIngredient("1"))
	s.SetOutput(entities.OutputSpec{Code: "game:torch", Quantity: 4})

	out := RenderSession(s)
	assert.Contains(t, out, "stick")
	assert.Contains(t, out, "log-oak@block")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "Output: game:torch x4 (item)")
	assert.Contains(t, out, "Shapeless: no  Group: 0  Enabled: yes")
}

func TestRenderBuildSummary(t *testing.T) {
	out := RenderBuildSummary(&dto.BuildProjectResponse{
		ModPath:  "/mods/mymod",
		Written:  []dto.WrittenFile{{Kind: "recipe", Name: "pickaxe", Path: "assets/mymod/recipes/grid/pickaxe.json"}},
		Skipped:  []string{"item/gear"},
		Warnings: []string{"recipe pickaxe: conflict"},
	})

	assert.Contains(t, out, "assets/mymod/recipes/grid/pickaxe.json")
	assert.Contains(t, out, "(skipped)")
	assert.Contains(t, out, "/mods/mymod")
	assert.Contains(t, out, "warning: recipe pickaxe: conflict\n")
}
