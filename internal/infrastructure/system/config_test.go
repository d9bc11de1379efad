package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/TinyTaru/VintagestoryModmaker/internal/application/errors"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

func TestConfigLoader_Load_FileNotExists(t *testing.T) {
	loader := NewConfigLoader()
	cfg, err := loader.Load("/nonexistent/config.yaml")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigLoader_Load_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yaml := `
authors: ["Tyron"]
mod:
  side: Server
recipe:
  width: 2
  height: 2
  palette:
    - code: game:flint
    - code: game:log-oak
      kind: block
build:
  parallelism: 8
`
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0600))

	cfg, err := NewConfigLoader().Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tyron"}, cfg.Authors)
	assert.Equal(t, "Server", cfg.Mod.Side)
	assert.Equal(t, "code", cfg.Mod.Type, "unset fields keep defaults")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 8, cfg.Build.Parallelism)
	require.Len(t, cfg.Recipe.Palette, 2)

	s, err := entities.NewRecipeSession(cfg.SessionOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Width())
	palette := s.Palette()
	require.Len(t, palette, 2)
	assert.Equal(t, values.KindItem, palette[0].Kind)
	assert.Equal(t, values.KindBlock, palette[1].Kind)

	info := cfg.NewModInfo()
	assert.Equal(t, values.SideServer, info.Side)
	assert.Equal(t, []string{"Tyron"}, info.Authors)
}

func TestConfigLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "authors: [", wantErr: "failed to parse"},
		{name: "bad side", content: "mod:\n  side: Everywhere\n", wantErr: "invalid mod side"},
		{name: "bad grid", content: "recipe:\n  width: 4\n", wantErr: "4x3"},
		{name: "bad palette", content: "recipe:\n  palette:\n    - code: \"a:b:c\"\n", wantErr: "recipe.palette[0]"},
		{name: "negative parallelism", content: "build:\n  parallelism: -1\n", wantErr: "parallelism"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := NewConfigLoader().Load(path)
			assert.ErrorContains(t, err, tt.wantErr)

			var cfgErr *apperrors.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestDefaultConfig_SessionOptions(t *testing.T) {
	s, err := entities.NewRecipeSession(DefaultConfig().SessionOptions()...)
	require.NoError(t, err)
	assert.Len(t, s.Palette(), len(entities.DefaultPalette()))
	assert.Equal(t, entities.DefaultGridSize, s.Height())
}
