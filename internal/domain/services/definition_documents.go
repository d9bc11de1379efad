package services

import (
	"strings"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// NewModInfoDocument renders modinfo.json. Blank authors are dropped and the
// type, version and side fall back to their defaults.
func NewModInfoDocument(m *entities.ModInfo) *ModInfoDocument {
	info := *m
	info.ApplyDefaults()

	deps := make(map[string]string, len(info.Dependencies))
	for id, v := range info.Dependencies {
		if id == "" {
			continue
		}
		if v == "" {
			v = "*"
		}
		deps[id] = v
	}

	return &ModInfoDocument{
		Type:         info.Type.String(),
		ModID:        info.ModID,
		Name:         info.Name,
		Description:  info.Description,
		Version:      info.Version,
		Authors:      info.CleanAuthors(),
		Dependencies: deps,
		Side:         info.Side.String(),
	}
}

// NewItemDocument renders an item type. Nutrition is only written for food
// items; empty shapes, tags and creative tabs are left out.
func NewItemDocument(d *entities.ItemDefinition) *ItemDocument {
	doc := &ItemDocument{
		Code:              strings.TrimSpace(d.Code),
		Class:             d.Class,
		Texture:           pathDocument(d.TextureBase),
		Shape:             pathDocument(d.ShapeBase),
		CreativeInventory: cleanInventory(d.CreativeInventory),
		MaxStackSize:      d.MaxStackSize,
		MaterialDensity:   d.MaterialDensity,
		Tags:              nonBlank(d.Tags),
	}

	if d.IsFood() {
		n := d.Nutrition
		doc.NutritionProps = &NutritionDocument{
			Nutrition:          nonZero(n.Nutrition),
			Satiety:            int(n.Satiety),
			Health:             n.Health,
			EatingTime:         n.EatingTime,
			FoodCategory:       n.FoodCategory,
			EatingSound:        n.EatingSound,
			EatingAnimation:    n.EatingAnimation,
			EatingAnimationEnd: n.EatingAnimationEnd,
			Effects:            nonBlank(n.Effects),
		}
	}

	if c := d.Combustible; c != nil {
		cd := &CombustibleDocument{
			BurnTemperature: c.BurnTemperature,
			BurnDuration:    c.BurnDuration,
			MeltingPoint:    c.MeltingPoint,
			MeltingDuration: c.MeltingDuration,
			SmeltedRatio:    c.SmeltedRatio,
		}
		if c.SmeltedStack != nil && strings.TrimSpace(c.SmeltedStack.Code) != "" {
			cd.SmeltedStack = &StackDocument{
				Type:     c.SmeltedStack.Type,
				Code:     strings.TrimSpace(c.SmeltedStack.Code),
				Quantity: c.SmeltedStack.Quantity,
			}
		}
		if *cd != (CombustibleDocument{}) {
			doc.CombustibleProps = cd
		}
	}

	return doc
}

// NewBlockDocument renders a block type. The light colour is only written for
// blocks that emit light and is clamped into the game's HSV range; a drop with
// no code is left out.
func NewBlockDocument(d *entities.BlockDefinition) *BlockDocument {
	doc := &BlockDocument{
		Code:              strings.TrimSpace(d.Code),
		Class:             d.Class,
		Shape:             pathDocument(d.ShapeBase),
		CreativeInventory: cleanInventory(d.CreativeInventory),
		BlockMaterial:     d.BlockMaterial,
		Resistance:        d.Resistance,
		LightLevel:        values.ClampInt(d.LightLevel, 0, entities.MaxLightLevel),
		RequiresToolTier:  values.ClampInt(d.RequiresToolTier, 0, entities.MaxToolTier),
	}

	if all := strings.TrimSpace(d.TextureAll); all != "" {
		doc.Textures = map[string]string{"all": all}
	}

	sounds := map[string]string{}
	for key, v := range map[string]string{"place": d.Sounds.Place, "break": d.Sounds.Break, "walk": d.Sounds.Walk} {
		if v = strings.TrimSpace(v); v != "" {
			sounds[key] = v
		}
	}
	if len(sounds) > 0 {
		doc.Sounds = sounds
	}

	if code := strings.TrimSpace(d.Drop.Code); code != "" {
		doc.Drop = &DropDocument{Type: d.Drop.Type, Code: code}
	}

	if doc.LightLevel > 0 {
		doc.LightHSV = []int{
			values.ClampInt(d.LightHSV[0], 0, 360),
			values.ClampInt(d.LightHSV[1], 0, 255),
			values.ClampInt(d.LightHSV[2], 0, 255),
		}
	}

	return doc
}

func pathDocument(base string) *PathDocument {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil
	}
	return &PathDocument{Base: base}
}

func cleanInventory(inv map[string][]string) map[string][]string {
	out := make(map[string][]string, len(inv))
	for tab, variants := range inv {
		if tab = strings.TrimSpace(tab); tab == "" {
			continue
		}
		if v := nonBlank(variants); len(v) > 0 {
			out[tab] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonZero(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		if k != "" && v != 0 {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
