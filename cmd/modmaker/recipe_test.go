package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/system"
)

var pickaxeArgs = []string{
	"recipe",
	"--row", "game:ingot-copper,game:ingot-copper,game:ingot-copper",
	"--row", "_,game:stick,_",
	"--row", "_,game:stick,_",
	"--output-code", "mymod:pickaxe-copper",
}

func TestRecipeCmd_Pickaxe(t *testing.T) {
	out, err := executeCommand(t, newRecipeCmd(), pickaxeArgs...)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"ingredientPattern": "AAA| B | B ",
		"ingredients": {
			"A": {"code": "game:ingot-copper"},
			"B": {"code": "game:stick"}
		},
		"width": 3,
		"height": 3,
		"output": {"code": "mymod:pickaxe-copper", "quantity": 1}
	}`, out)
}

func TestRecipeCmd_BareCodesUseGameDomain(t *testing.T) {
	out, err := executeCommand(t, newRecipeCmd(),
		"recipe",
		"--row", "ingot-copper,ingot-copper",
		"--row", "_,stick",
		"--output-code", "mymod:gear",
	)
	require.NoError(t, err)

	var doc services.GridRecipeDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, services.StackDocument{Code: "game:ingot-copper"}, doc.Ingredients["A"])
	assert.Equal(t, services.StackDocument{Code: "game:stick"}, doc.Ingredients["B"])
}

func TestRecipeCmd_Options(t *testing.T) {
	out, err := executeCommand(t, newRecipeCmd(),
		"recipe",
		"--row", "game:plank-oak,game:plank-oak",
		"--row", "_,_",
		"--shapeless",
		"--output-code", "game:chest-east",
		"--output-kind", "block",
		"--quantity", "500",
		"--group", "2",
		"--disabled",
	)
	require.NoError(t, err)

	var doc services.GridRecipeDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Empty(t, doc.IngredientPattern)
	assert.True(t, doc.Shapeless)
	assert.Equal(t, 2, doc.Width)
	assert.Equal(t, 2, doc.Height)
	assert.Equal(t, services.StackDocument{Type: "block", Code: "game:chest-east", Quantity: 64}, doc.Output)
	assert.Equal(t, 2, doc.RecipeGroup)
	require.NotNil(t, doc.Enabled)
	assert.False(t, *doc.Enabled)
}

func TestRecipeCmd_SizeOverridesRows(t *testing.T) {
	out, err := executeCommand(t, newRecipeCmd(),
		"recipe",
		"--row", "_,game:stick",
		"--row", "_,game:stick",
		"--size", "3x3",
		"--output-code", "game:torch",
	)
	require.NoError(t, err)

	var doc services.GridRecipeDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, " A | A |   ", doc.IngredientPattern)
	assert.Equal(t, 3, doc.Width)
}

func TestRecipeCmd_KindConflictKeepsFirstKind(t *testing.T) {
	out, err := executeCommand(t, newRecipeCmd(),
		"recipe",
		"--row", "game:plank-oak,game:plank-oak@block",
		"--row", "_,_",
		"--output-code", "game:stick",
	)
	require.NoError(t, err)

	var doc services.GridRecipeDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "AA|  ", doc.IngredientPattern)
	assert.Equal(t, services.StackDocument{Code: "game:plank-oak"}, doc.Ingredients["A"])
}

func TestRecipeCmd_YAML(t *testing.T) {
	args := append(append([]string(nil), pickaxeArgs...), "--format", "yaml")
	out, err := executeCommand(t, newRecipeCmd(), args...)
	require.NoError(t, err)

	var doc services.GridRecipeDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "AAA| B | B ", doc.IngredientPattern)
	assert.Equal(t, "mymod:pickaxe-copper", doc.Output.Code)
	assert.Equal(t, services.StackDocument{Code: "game:stick"}, doc.Ingredients["B"])
}

func TestRecipeCmd_Table(t *testing.T) {
	args := append(append([]string(nil), pickaxeArgs...), "--format", "table")
	out, err := executeCommand(t, newRecipeCmd(), args...)
	require.NoError(t, err)

	assert.Contains(t, out, "game:ingot-copper")
	assert.Contains(t, out, "mymod:pickaxe-copper x1")
	assert.Contains(t, out, "3x3")
}

func TestRecipeCmd_Out(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes", "pickaxe.json")
	args := append(append([]string(nil), pickaxeArgs...), "--out", path)

	out, err := executeCommand(t, newRecipeCmd(), args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ingredientPattern": "AAA| B | B "`)
}

func TestRecipeCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "no rows",
			args:   []string{"recipe", "--output-code", "game:stick"},
			errMsg: "no grid given",
		},
		{
			name:   "no output code",
			args:   []string{"recipe", "--row", "game:stick,_", "--row", "_,_"},
			errMsg: "output code is required",
		},
		{
			name:   "bad kind in cell",
			args:   []string{"recipe", "--row", "game:stick@fluid,_", "--row", "_,_", "--output-code", "x"},
			errMsg: "invalid kind",
		},
		{
			name:   "too many rows",
			args:   []string{"recipe", "--row", "a", "--row", "a", "--row", "a", "--row", "a", "--output-code", "x"},
			errMsg: "grid",
		},
		{
			name:   "bad size",
			args:   []string{"recipe", "--row", "a,a", "--row", "a,a", "--size", "4x4", "--output-code", "x"},
			errMsg: "grid",
		},
		{
			name:   "bad output kind",
			args:   []string{"recipe", "--row", "a,a", "--row", "a,a", "--output-kind", "fluid", "--output-code", "x"},
			errMsg: "--output-kind",
		},
		{
			name:   "bad format",
			args:   []string{"recipe", "--row", "a,a", "--row", "a,a", "--output-code", "x", "--format", "xml"},
			errMsg: "invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, newRecipeCmd(), tt.args...)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestNewRecipeSession_ConfigPalette(t *testing.T) {
	t.Parallel()

	cfg := system.DefaultConfig()
	cfg.Recipe.Width = 2
	cfg.Recipe.Height = 2
	cfg.Recipe.Palette = []system.PaletteEntry{{Code: "game:clay-blue", Kind: "item"}}

	s, err := newRecipeSession(cfg, &RecipeOptions{outputKind: "item", quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 2, s.Height())
	require.Len(t, s.Palette(), 1)
	assert.Equal(t, "game:clay-blue", s.Palette()[0].Code)
}
