// Package services turns authoring state into the JSON documents the game
// loads. Each builder applies the cleanup rules for its document type: fields
// at their game default are dropped and empty collections are left out.
package services

// PatternSeparator joins pattern rows in ingredientPattern.
const PatternSeparator = "|"

// StackDocument is an ingredient or output stack. Type is omitted for items.
type StackDocument struct {
	Type     string `json:"type,omitempty" yaml:"type,omitempty" jsonschema:"enum=item,enum=block"`
	Code     string `json:"code" yaml:"code" jsonschema:"required,minLength=1"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity,omitempty" jsonschema:"minimum=1,maximum=64"`
}

// GridRecipeDocument is a recipes/grid/*.json entry.
type GridRecipeDocument struct {
	Enabled           *bool                    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	IngredientPattern string                   `json:"ingredientPattern,omitempty" yaml:"ingredientPattern,omitempty" jsonschema:"pattern=^[A-Z ]+(\\|[A-Z ]+)*$"`
	Ingredients       map[string]StackDocument `json:"ingredients" yaml:"ingredients" jsonschema:"required"`
	Width             int                      `json:"width" yaml:"width" jsonschema:"required,minimum=2,maximum=3"`
	Height            int                      `json:"height" yaml:"height" jsonschema:"required,minimum=2,maximum=3"`
	Output            StackDocument            `json:"output" yaml:"output" jsonschema:"required"`
	Shapeless         bool                     `json:"shapeless,omitempty" yaml:"shapeless,omitempty"`
	RecipeGroup       int                      `json:"recipeGroup,omitempty" yaml:"recipeGroup,omitempty" jsonschema:"minimum=0"`
}

// ModInfoDocument is modinfo.json.
type ModInfoDocument struct {
	Type         string            `json:"type" yaml:"type" jsonschema:"required,enum=code,enum=content,enum=dlc"`
	ModID        string            `json:"modid" yaml:"modid" jsonschema:"required,pattern=^[a-z][a-z0-9]*$"`
	Name         string            `json:"name" yaml:"name" jsonschema:"required,minLength=1"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Version      string            `json:"version" yaml:"version" jsonschema:"required"`
	Authors      []string          `json:"authors" yaml:"authors"`
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies"`
	Side         string            `json:"side" yaml:"side" jsonschema:"enum=Universal,enum=Client,enum=Server"`
}

// PathDocument wraps an asset path as {"base": ...}.
type PathDocument struct {
	Base string `json:"base" yaml:"base" jsonschema:"required,minLength=1"`
}

// NutritionDocument is the nutritionProps block of a food item.
type NutritionDocument struct {
	Nutrition          map[string]float64 `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	Satiety            int                `json:"satiety" yaml:"satiety" jsonschema:"minimum=0"`
	Health             float64            `json:"health,omitempty" yaml:"health,omitempty"`
	EatingTime         int                `json:"eatingTime,omitempty" yaml:"eatingTime,omitempty"`
	FoodCategory       string             `json:"foodCategory" yaml:"foodCategory"`
	EatingSound        string             `json:"eatingSound,omitempty" yaml:"eatingSound,omitempty"`
	EatingAnimation    string             `json:"eatingAnimation,omitempty" yaml:"eatingAnimation,omitempty"`
	EatingAnimationEnd string             `json:"eatingAnimationEnd,omitempty" yaml:"eatingAnimationEnd,omitempty"`
	Effects            []string           `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// CombustibleDocument is the combustibleProps block.
type CombustibleDocument struct {
	BurnTemperature int            `json:"burnTemperature,omitempty" yaml:"burnTemperature,omitempty"`
	BurnDuration    float64        `json:"burnDuration,omitempty" yaml:"burnDuration,omitempty"`
	MeltingPoint    int            `json:"meltingPoint,omitempty" yaml:"meltingPoint,omitempty"`
	MeltingDuration float64        `json:"meltingDuration,omitempty" yaml:"meltingDuration,omitempty"`
	SmeltedRatio    int            `json:"smeltedRatio,omitempty" yaml:"smeltedRatio,omitempty"`
	SmeltedStack    *StackDocument `json:"smeltedStack,omitempty" yaml:"smeltedStack,omitempty"`
}

// ItemDocument is an itemtypes/*.json entry.
type ItemDocument struct {
	Code              string               `json:"code" yaml:"code" jsonschema:"required,minLength=1"`
	Class             string               `json:"class,omitempty" yaml:"class,omitempty"`
	Texture           *PathDocument        `json:"texture,omitempty" yaml:"texture,omitempty"`
	Shape             *PathDocument        `json:"shape,omitempty" yaml:"shape,omitempty"`
	CreativeInventory map[string][]string  `json:"creativeinventory,omitempty" yaml:"creativeinventory,omitempty"`
	MaxStackSize      int                  `json:"maxstacksize,omitempty" yaml:"maxstacksize,omitempty" jsonschema:"minimum=1"`
	MaterialDensity   int                  `json:"materialdensity,omitempty" yaml:"materialdensity,omitempty" jsonschema:"minimum=0"`
	NutritionProps    *NutritionDocument   `json:"nutritionProps,omitempty" yaml:"nutritionProps,omitempty"`
	CombustibleProps  *CombustibleDocument `json:"combustibleProps,omitempty" yaml:"combustibleProps,omitempty"`
	Tags              []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// DropDocument is what a block drops when broken.
type DropDocument struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty" jsonschema:"enum=block,enum=item,enum=nothing"`
	Code string `json:"code" yaml:"code"`
}

// BlockDocument is a blocktypes/*.json entry.
type BlockDocument struct {
	Code              string              `json:"code" yaml:"code" jsonschema:"required,minLength=1"`
	Class             string              `json:"class,omitempty" yaml:"class,omitempty"`
	Shape             *PathDocument       `json:"shape,omitempty" yaml:"shape,omitempty"`
	Textures          map[string]string   `json:"textures,omitempty" yaml:"textures,omitempty"`
	CreativeInventory map[string][]string `json:"creativeinventory,omitempty" yaml:"creativeinventory,omitempty"`
	BlockMaterial     string              `json:"blockmaterial,omitempty" yaml:"blockmaterial,omitempty"`
	Resistance        float64             `json:"resistance,omitempty" yaml:"resistance,omitempty" jsonschema:"minimum=0"`
	Sounds            map[string]string   `json:"sounds,omitempty" yaml:"sounds,omitempty"`
	Drop              *DropDocument       `json:"drop,omitempty" yaml:"drop,omitempty"`
	LightLevel        int                 `json:"lightlevel" yaml:"lightlevel" jsonschema:"minimum=0,maximum=31"`
	LightHSV          []int               `json:"lighthsv,omitempty" yaml:"lighthsv,omitempty"`
	RequiresToolTier  int                 `json:"requirestooltier" yaml:"requirestooltier" jsonschema:"minimum=0,maximum=7"`
}
