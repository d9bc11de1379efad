package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

const yamlManifest = `
modinfo:
  modid: copperworks
  name: Copper Works
  authors: [Alice]
  dependencies:
    game: "1.19.0"
items:
  - name: gear-copper
    texture: item/gear
    tags: [metal]
blocks:
  - name: marble
    blockmaterial: Stone
    lightlevel: 7
recipes:
  - name: pickaxe-copper
    rows:
      - game:ingot-copper,game:ingot-copper,game:ingot-copper
      - _,game:stick,_
      - _,game:stick,_
    output:
      code: copperworks:pickaxe-copper
    tags: [tool]
  - name: torch
    shapeless: true
    enabled: false
    rows: ["game:stick,game:coal@item"]
    output: {code: game:torch, kind: block, quantity: 4}
`

const tomlManifest = `
[modinfo]
modid = "copperworks"
name = "Copper Works"

[modinfo.dependencies]
game = "*"

[[items]]
name = "gear-copper"
texture = "item/gear"

[[recipes]]
name = "pickaxe-copper"
rows = ["game:ingot-copper,game:ingot-copper", "_,game:stick"]
group = 2

[recipes.output]
code = "copperworks:pickaxe-copper"
quantity = 1
`

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_YAML(t *testing.T) {
	m, err := NewLoader().Load(write(t, "copperworks.yaml", yamlManifest))
	require.NoError(t, err)

	assert.Equal(t, "copperworks", m.ModInfo.ModID)
	assert.Equal(t, []string{"Alice"}, m.ModInfo.Authors)
	assert.Equal(t, "1.19.0", m.ModInfo.Dependencies["game"])

	require.Len(t, m.Items, 1)
	assert.Equal(t, "gear-copper", m.Items[0].Name)
	assert.Equal(t, "item/gear", m.Items[0].TextureBase)
	assert.Equal(t, []string{"metal"}, m.Items[0].Tags)

	require.Len(t, m.Blocks, 1)
	assert.Equal(t, 7, m.Blocks[0].LightLevel)

	require.Len(t, m.Recipes, 2)
	assert.Len(t, m.Recipes[0].Rows, 3)
	assert.True(t, m.Recipes[0].IsEnabled())
	assert.False(t, m.Recipes[1].IsEnabled())
	assert.True(t, m.Recipes[1].Shapeless)
	assert.Equal(t, values.KindBlock, m.Recipes[1].Output.Kind)
	assert.Equal(t, 4, m.Recipes[1].Output.Quantity)

	m.ApplyDefaults()
	assert.NoError(t, m.Validate())
}

func TestLoader_TOML(t *testing.T) {
	m, err := NewLoader().Load(write(t, "copperworks.toml", tomlManifest))
	require.NoError(t, err)

	assert.Equal(t, "Copper Works", m.ModInfo.Name)
	assert.Equal(t, "*", m.ModInfo.Dependencies["game"])
	require.Len(t, m.Items, 1)
	assert.Equal(t, "item/gear", m.Items[0].TextureBase)
	require.Len(t, m.Recipes, 1)
	assert.Equal(t, 2, m.Recipes[0].Group)
	assert.Equal(t, "copperworks:pickaxe-copper", m.Recipes[0].Output.Code)
}

func TestLoader_Errors(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Load(write(t, "manifest.json", "{}"))
	assert.ErrorContains(t, err, "unsupported manifest format")

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open manifest")

	_, err = loader.Load(write(t, "broken.yaml", "modinfo: [\n"))
	assert.ErrorContains(t, err, "failed to decode manifest YAML")

	_, err = loader.Load(write(t, "broken.toml", "[modinfo\n"))
	assert.ErrorContains(t, err, "failed to decode manifest TOML")

	_, err = loader.LoadTOML(strings.NewReader("[modinfo]\nmodid = \"x\"\nunknown = 1\n"))
	assert.Error(t, err)
}
