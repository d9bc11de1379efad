package entities

import (
	"strings"
)

// Item classes offered by the item form.
const (
	ItemClassDefault = "Item"
	ItemClassFood    = "ItemFood"
)

// ItemClasses lists the classes the item form offers.
var ItemClasses = []string{
	ItemClassDefault, "ItemAxe", "ItemPickaxe", "ItemShovel", "ItemSword",
	"ItemHammer", "ItemProspectingPick", ItemClassFood,
}

// FoodCategories lists the nutrition categories the game knows.
var FoodCategories = []string{
	"fruit", "vegetable", "protein", "grain", "dairy", "meat", "soup", "stew", "sweets", "beverage",
}

// NutritionProps describes what eating the item does.
type NutritionProps struct {
	Nutrition          map[string]float64 `yaml:"nutrition,omitempty" toml:"nutrition,omitempty"`
	FoodCategory       string             `yaml:"foodCategory" toml:"foodCategory"`
	EatingSound        string             `yaml:"eatingSound,omitempty" toml:"eatingSound,omitempty"`
	EatingAnimation    string             `yaml:"eatingAnimation,omitempty" toml:"eatingAnimation,omitempty"`
	EatingAnimationEnd string             `yaml:"eatingAnimationEnd,omitempty" toml:"eatingAnimationEnd,omitempty"`
	Effects            []string           `yaml:"effects,omitempty" toml:"effects,omitempty"`
	Satiety            float64            `yaml:"satiety" toml:"satiety"`
	Health             float64            `yaml:"health,omitempty" toml:"health,omitempty"`
	EatingTime         int                `yaml:"eatingTime,omitempty" toml:"eatingTime,omitempty"`
}

// DefaultNutrition returns the values the food toggle starts from.
func DefaultNutrition() NutritionProps {
	return NutritionProps{
		Nutrition:          map[string]float64{"fruit": 0.5},
		Satiety:            80,
		EatingTime:         32,
		FoodCategory:       "fruit",
		EatingSound:        "sounds/player/eat",
		EatingAnimation:    "eat",
		EatingAnimationEnd: "eatend",
	}
}

// CombustibleProps marks an item as fuel or as smeltable.
type CombustibleProps struct {
	SmeltedStack    *StackRef `yaml:"smeltedStack,omitempty" toml:"smeltedStack,omitempty"`
	BurnTemperature int       `yaml:"burnTemperature,omitempty" toml:"burnTemperature,omitempty"`
	BurnDuration    float64   `yaml:"burnDuration,omitempty" toml:"burnDuration,omitempty"`
	MeltingPoint    int       `yaml:"meltingPoint,omitempty" toml:"meltingPoint,omitempty"`
	MeltingDuration float64   `yaml:"meltingDuration,omitempty" toml:"meltingDuration,omitempty"`
	SmeltedRatio    int       `yaml:"smeltedRatio,omitempty" toml:"smeltedRatio,omitempty"`
}

// StackRef points at an item or block stack.
type StackRef struct {
	Type     string `yaml:"type,omitempty" toml:"type,omitempty"`
	Code     string `yaml:"code" toml:"code"`
	Quantity int    `yaml:"quantity,omitempty" toml:"quantity,omitempty"`
}

// ItemDefinition is the form state behind an itemtypes/*.json file.
type ItemDefinition struct {
	CreativeInventory map[string][]string `yaml:"creativeinventory,omitempty" toml:"creativeinventory,omitempty"`
	Combustible       *CombustibleProps   `yaml:"combustibleProps,omitempty" toml:"combustibleProps,omitempty"`
	Nutrition         NutritionProps      `yaml:"nutritionProps,omitempty" toml:"nutritionProps,omitempty"`
	Code              string              `yaml:"code" toml:"code"`
	Class             string              `yaml:"class,omitempty" toml:"class,omitempty"`
	TextureBase       string              `yaml:"texture,omitempty" toml:"texture,omitempty"`
	ShapeBase         string              `yaml:"shape,omitempty" toml:"shape,omitempty"`
	Tags              []string            `yaml:"tags,omitempty" toml:"tags,omitempty"`
	MaxStackSize      int                 `yaml:"maxstacksize,omitempty" toml:"maxstacksize,omitempty"`
	MaterialDensity   int                 `yaml:"materialDensity,omitempty" toml:"materialDensity,omitempty"`
}

// NewItemDefinition returns the item form defaults.
func NewItemDefinition() *ItemDefinition {
	return &ItemDefinition{
		Class:             ItemClassDefault,
		CreativeInventory: map[string][]string{"general": {"*"}},
		MaxStackSize:      64,
		MaterialDensity:   300,
		Nutrition:         DefaultNutrition(),
	}
}

// ApplyDefaults fills fields a loaded form left at zero.
func (d *ItemDefinition) ApplyDefaults() {
	if d.Class == "" {
		d.Class = ItemClassDefault
	}
	if d.CreativeInventory == nil {
		d.CreativeInventory = map[string][]string{"general": {"*"}}
	}
	if d.MaxStackSize == 0 {
		d.MaxStackSize = 64
	}
	if d.MaterialDensity == 0 {
		d.MaterialDensity = 300
	}
	if d.IsFood() && d.Nutrition.FoodCategory == "" {
		d.Nutrition = DefaultNutrition()
	}
}

// SetFood switches the class to ItemFood and resets the nutrition values, or
// back to the plain Item class.
func (d *ItemDefinition) SetFood(food bool) {
	if food {
		d.Class = ItemClassFood
		d.Nutrition = DefaultNutrition()
		return
	}
	d.Class = ItemClassDefault
}

// IsFood reports whether nutrition properties belong in the document.
func (d *ItemDefinition) IsFood() bool {
	return d.Class == ItemClassFood
}

// SetShape sets the base shape path, usually picked from ItemShapes.
func (d *ItemDefinition) SetShape(path string) {
	d.ShapeBase = strings.TrimSpace(path)
}

// AddTag appends a tag entry.
func (d *ItemDefinition) AddTag(tag string) {
	d.Tags = append(d.Tags, tag)
}

// AddCreativeTab adds the item to a creative inventory tab.
func (d *ItemDefinition) AddCreativeTab(tab string, variants ...string) {
	d.CreativeInventory = addCreativeTab(d.CreativeInventory, tab, variants)
}

// addCreativeTab lists variants under tab, all variants ("*") when none are given.
func addCreativeTab(inv map[string][]string, tab string, variants []string) map[string][]string {
	if inv == nil {
		inv = map[string][]string{}
	}
	if len(variants) == 0 {
		variants = []string{"*"}
	}
	inv[tab] = append(inv[tab], variants...)
	return inv
}
