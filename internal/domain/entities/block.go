package entities

// BlockMaterials lists the block materials the game defines.
var BlockMaterials = []string{
	"Air", "Liquid", "Lava", "Snow", "Ice", "Leaves", "Wood", "Stone", "Soil",
	"Sand", "Gravel", "Ore", "Metal", "Plant", "Cloth", "Fire", "Glass", "Ceramic",
}

// DropTypes lists what a broken block may drop.
var DropTypes = []string{"block", "item", "nothing"}

const (
	// MaxLightLevel is the brightest light a block can emit.
	MaxLightLevel = 31
	// MaxToolTier is the highest tool tier a block can require.
	MaxToolTier = 7
)

// BlockSounds names the sounds played when interacting with the block.
type BlockSounds struct {
	Place string `yaml:"place,omitempty" toml:"place,omitempty"`
	Break string `yaml:"break,omitempty" toml:"break,omitempty"`
	Walk  string `yaml:"walk,omitempty" toml:"walk,omitempty"`
}

// BlockDefinition is the form state behind a blocktypes/*.json file.
type BlockDefinition struct {
	CreativeInventory map[string][]string `yaml:"creativeinventory,omitempty" toml:"creativeinventory,omitempty"`
	Sounds            BlockSounds         `yaml:"sounds,omitempty" toml:"sounds,omitempty"`
	Drop              StackRef            `yaml:"drop,omitempty" toml:"drop,omitempty"`
	Code              string              `yaml:"code" toml:"code"`
	Class             string              `yaml:"class,omitempty" toml:"class,omitempty"`
	ShapeBase         string              `yaml:"shape,omitempty" toml:"shape,omitempty"`
	TextureAll        string              `yaml:"texture,omitempty" toml:"texture,omitempty"`
	BlockMaterial     string              `yaml:"blockmaterial,omitempty" toml:"blockmaterial,omitempty"`
	LightHSV          [3]int              `yaml:"lighthsv,omitempty" toml:"lighthsv,omitempty"`
	Resistance        float64             `yaml:"resistance,omitempty" toml:"resistance,omitempty"`
	LightLevel        int                 `yaml:"lightlevel,omitempty" toml:"lightlevel,omitempty"`
	RequiresToolTier  int                 `yaml:"requirestooltier,omitempty" toml:"requirestooltier,omitempty"`
}

// NewBlockDefinition returns the block form defaults.
func NewBlockDefinition() *BlockDefinition {
	return &BlockDefinition{
		Class:             "Block",
		ShapeBase:         "block/basic/cube",
		CreativeInventory: map[string][]string{"general": {"*"}},
		BlockMaterial:     "Stone",
		Resistance:        3.5,
		Sounds: BlockSounds{
			Place: "game:block/stone",
			Break: "game:block/stone",
			Walk:  "game:walk/stone",
		},
		Drop:     StackRef{Type: "block"},
		LightHSV: [3]int{0, 0, 255},
	}
}

// ApplyDefaults fills fields a loaded form left at zero.
func (d *BlockDefinition) ApplyDefaults() {
	def := NewBlockDefinition()
	if d.Class == "" {
		d.Class = def.Class
	}
	if d.ShapeBase == "" {
		d.ShapeBase = def.ShapeBase
	}
	if d.CreativeInventory == nil {
		d.CreativeInventory = def.CreativeInventory
	}
	if d.BlockMaterial == "" {
		d.BlockMaterial = def.BlockMaterial
	}
	if d.Resistance == 0 {
		d.Resistance = def.Resistance
	}
	if d.Sounds == (BlockSounds{}) {
		d.Sounds = def.Sounds
	}
	if d.Drop.Type == "" {
		d.Drop.Type = def.Drop.Type
	}
}

// SetLight sets the emitted light level and its hue/saturation/value.
func (d *BlockDefinition) SetLight(level, hue, saturation, value int) {
	d.LightLevel = level
	d.LightHSV = [3]int{hue, saturation, value}
}

// SetDrop sets what the block drops when broken.
func (d *BlockDefinition) SetDrop(kind, code string) {
	d.Drop = StackRef{Type: kind, Code: code}
}

// AddCreativeTab adds the block to a creative inventory tab.
func (d *BlockDefinition) AddCreativeTab(tab string, variants ...string) {
	d.CreativeInventory = addCreativeTab(d.CreativeInventory, tab, variants)
}
