// Package system provides infrastructure for system-level configuration.
// This covers the user's config file (~/.modmaker/config.yaml): the defaults
// new forms start from and how builds run.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	apperrors "github.com/TinyTaru/VintagestoryModmaker/internal/application/errors"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// Config represents the global configuration file (~/.modmaker/config.yaml).
type Config struct {
	Mod     ModConfig    `yaml:"mod"`
	Output  OutputConfig `yaml:"output"`
	Authors []string     `yaml:"authors"`
	Recipe  RecipeConfig `yaml:"recipe"`
	Build   BuildConfig  `yaml:"build"`
}

// ModConfig holds modinfo defaults.
type ModConfig struct {
	Side string `yaml:"side"`
	Type string `yaml:"type"`
}

// RecipeConfig holds recipe editor defaults.
type RecipeConfig struct {
	Palette []PaletteEntry `yaml:"palette"`
	Width   int            `yaml:"width"`
	Height  int            `yaml:"height"`
}

// PaletteEntry seeds the recipe editor palette.
type PaletteEntry struct {
	Code string `yaml:"code"`
	Kind string `yaml:"kind"`
}

// OutputConfig holds output defaults.
type OutputConfig struct {
	// Format is json, yaml or table.
	Format string `yaml:"format"`
}

// BuildConfig controls manifest builds.
type BuildConfig struct {
	// Parallelism limits concurrent document writes (0 = builder default)
	Parallelism int `yaml:"parallelism"`
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfigPath returns ~/.modmaker/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".modmaker", "config.yaml")
	}
	return filepath.Join(home, ".modmaker", "config.yaml")
}

// DefaultConfig returns a Config with the defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Authors: []string{"Your Name"},
		Mod: ModConfig{
			Side: string(values.SideUniversal),
			Type: string(values.ModTypeCode),
		},
		Recipe: RecipeConfig{
			Width:  entities.DefaultGridSize,
			Height: entities.DefaultGridSize,
		},
		Output: OutputConfig{Format: "json"},
		Build:  BuildConfig{Parallelism: 4},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Fields the file leaves out keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system", "failed to read system config", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, apperrors.NewConfigurationError("system", "failed to parse system config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, apperrors.NewConfigurationError("system", "invalid system config "+path, err)
	}

	return config, nil
}

// Validate checks values that would otherwise fail much later.
func (c *Config) Validate() error {
	if _, err := values.NewModSide(c.Mod.Side); err != nil {
		return err
	}
	if _, err := values.NewModType(c.Mod.Type); err != nil {
		return err
	}
	if !entities.ValidGridDimension(c.Recipe.Width) || !entities.ValidGridDimension(c.Recipe.Height) {
		return &entities.InvalidGridSizeError{Width: c.Recipe.Width, Height: c.Recipe.Height}
	}
	for i, p := range c.Recipe.Palette {
		if _, err := values.NewAssetCode(p.Code); err != nil {
			return fmt.Errorf("recipe.palette[%d]: %w", i, err)
		}
		if _, err := values.NewItemKind(p.Kind); err != nil {
			return fmt.Errorf("recipe.palette[%d]: %w", i, err)
		}
	}
	if c.Build.Parallelism < 0 {
		return fmt.Errorf("build.parallelism must not be negative")
	}
	return nil
}

// SessionOptions turns the recipe defaults into editor options. An empty
// palette keeps the built-in seed palette.
func (c *Config) SessionOptions() []entities.SessionOption {
	opts := []entities.SessionOption{entities.WithGridSize(c.Recipe.Width, c.Recipe.Height)}
	if len(c.Recipe.Palette) == 0 {
		return opts
	}

	palette := make([]entities.IngredientRef, 0, len(c.Recipe.Palette))
	for _, p := range c.Recipe.Palette {
		kind, _ := values.NewItemKind(p.Kind)
		code, _ := values.NewAssetCode(p.Code)
		palette = append(palette, entities.IngredientRef{Code: code.Qualified(), Kind: kind})
	}
	return append(opts, entities.WithPalette(palette))
}

// NewModInfo returns a modinfo form seeded with the configured defaults.
func (c *Config) NewModInfo() *entities.ModInfo {
	info := entities.NewModInfo()
	info.Side, _ = values.NewModSide(c.Mod.Side)
	info.Type, _ = values.NewModType(c.Mod.Type)
	info.Authors = append([]string(nil), c.Authors...)
	return info
}
