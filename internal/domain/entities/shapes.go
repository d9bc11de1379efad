package entities

// ShapeOption is a labelled shape path offered by the item and block forms.
type ShapeOption struct {
	Label string
	Path  string
}

// ItemShapes are common item shape paths.
var ItemShapes = []ShapeOption{
	{"Basic Cube", "item/basic/cube"},
	{"Pickaxe Head", "item/tool/pickaxe/head"},
	{"Axe Head", "item/tool/axe/head"},
	{"Shovel Head", "item/tool/shovel/head"},
	{"Sword Blade", "item/tool/sword/blade"},
	{"Hammer Head", "item/tool/hammer/head"},
	{"Prospecting Pick Head", "item/tool/prospectingpick/head"},
	{"Spear Head", "item/weapon/spear/head"},
	{"Ingot", "item/ingot"},
	{"Plate", "item/plate"},
	{"Gear", "item/gear"},
	{"Berry", "item/food/fruit/blackcurrant"},
}

// BlockShapes are common block shape paths.
var BlockShapes = []ShapeOption{
	{"Basic Cube", "block/basic/cube"},
	{"Stairs", "block/stairs/stone"},
	{"Slab", "block/slab/stone"},
	{"Wall", "block/wall/stone"},
	{"Fence", "block/fence/wood"},
	{"Door", "block/door/wood"},
	{"Trapdoor", "block/trapdoor/wood"},
	{"Button", "block/button/wood"},
	{"Lever", "block/lever/wood"},
	{"Torch", "block/torch"},
	{"Ladder", "block/ladder"},
	{"Chest", "block/chest"},
	{"Furnace", "block/furnace"},
	{"Crafting Table", "block/craftingtable"},
}
