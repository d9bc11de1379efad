package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
)

// ItemOptions holds options for the item command.
type ItemOptions struct {
	output          OutputOptions
	code            string
	class           string
	texture         string
	shape           string
	foodCategory    string
	tags            []string
	creativeTabs    []string
	satiety         float64
	burnDuration    float64
	maxStackSize    int
	materialDensity int
	burnTemperature int
	food            bool
	interactive     bool
}

func init() {
	rootCmd.AddCommand(newItemCmd())
}

func newItemCmd() *cobra.Command {
	opts := &ItemOptions{}

	cmd := &cobra.Command{
		Use:   "item",
		Short: "Generate an item type document",
		Long: `Generate an itemtypes/*.json document.

Examples:
  modmaker item --code copper-gear --texture item/gear-copper --shape item/gear
  modmaker item --code sweetberry --food --satiety 120 --food-category fruit
  modmaker item --interactive --out assets/mymod/itemtypes/gear.json`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			return runItem(cc, cmd, opts)
		}),
	}

	def := entities.NewItemDefinition()
	cmd.Flags().StringVar(&opts.code, "code", "", "Item code")
	cmd.Flags().StringVar(&opts.class, "class", def.Class, "Item class: "+strings.Join(entities.ItemClasses, ", "))
	cmd.Flags().StringVar(&opts.texture, "texture", "", "Base texture path")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "Base shape path, e.g. "+entities.ItemShapes[0].Path)
	cmd.Flags().StringArrayVar(&opts.tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringArrayVar(&opts.creativeTabs, "creative-tab", nil, "Creative inventory tab (repeatable, default general)")
	cmd.Flags().IntVar(&opts.maxStackSize, "max-stack", def.MaxStackSize, "Maximum stack size")
	cmd.Flags().IntVar(&opts.materialDensity, "density", def.MaterialDensity, "Material density")
	cmd.Flags().BoolVar(&opts.food, "food", false, "Make the item edible (class ItemFood)")
	cmd.Flags().Float64Var(&opts.satiety, "satiety", def.Nutrition.Satiety, "Satiety when eaten (food only)")
	cmd.Flags().StringVar(&opts.foodCategory, "food-category", def.Nutrition.FoodCategory,
		"Food category: "+strings.Join(entities.FoodCategories, ", "))
	cmd.Flags().IntVar(&opts.burnTemperature, "burn-temperature", 0, "Burn temperature when used as fuel")
	cmd.Flags().Float64Var(&opts.burnDuration, "burn-duration", 0, "Burn duration in seconds when used as fuel")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Fill in the fields in the terminal")
	opts.output.RegisterFlags(cmd)

	return cmd
}

func runItem(cc *CommandContext, cmd *cobra.Command, opts *ItemOptions) error {
	if err := opts.output.ValidateFlags(cc.Container.SystemConfig()); err != nil {
		return err
	}

	def := opts.definition()
	if opts.interactive {
		if err := requireInteractive(); err != nil {
			return err
		}
		if err := runItemForm(cc.Context, def); err != nil {
			return err
		}
	}
	if strings.TrimSpace(def.Code) == "" {
		return errors.New("item code is required: pass --code")
	}

	return opts.output.Emit(cc, cmd, services.NewItemDocument(def))
}

// definition builds the item form state from the flags.
func (opts *ItemOptions) definition() *entities.ItemDefinition {
	def := entities.NewItemDefinition()
	def.Code = strings.TrimSpace(opts.code)
	def.Class = opts.class
	def.TextureBase = strings.TrimSpace(opts.texture)
	def.SetShape(opts.shape)
	def.MaxStackSize = opts.maxStackSize
	def.MaterialDensity = opts.materialDensity
	for _, tag := range opts.tags {
		def.AddTag(tag)
	}
	if len(opts.creativeTabs) > 0 {
		def.CreativeInventory = nil
		for _, tab := range opts.creativeTabs {
			def.AddCreativeTab(tab)
		}
	}
	if opts.food {
		def.SetFood(true)
		def.Nutrition.Satiety = opts.satiety
		def.Nutrition.FoodCategory = opts.foodCategory
		def.Nutrition.Nutrition = map[string]float64{opts.foodCategory: 0.5}
	}
	if opts.burnTemperature > 0 || opts.burnDuration > 0 {
		def.Combustible = &entities.CombustibleProps{
			BurnTemperature: opts.burnTemperature,
			BurnDuration:    opts.burnDuration,
		}
	}
	return def
}

// runItemForm edits def in place.
func runItemForm(ctx context.Context, def *entities.ItemDefinition) error {
	maxStack := strconv.Itoa(def.MaxStackSize)
	density := strconv.Itoa(def.MaterialDensity)
	tags := strings.Join(def.Tags, ", ")
	food := def.IsFood()

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Code").
				Value(&def.Code).
				Validate(required("code")),
			huh.NewSelect[string]().
				Title("Class").
				Options(huh.NewOptions(entities.ItemClasses...)...).
				Value(&def.Class),
			huh.NewInput().
				Title("Texture").
				Placeholder("item/gear-copper").
				Value(&def.TextureBase),
			huh.NewSelect[string]().
				Title("Shape").
				Options(shapeOptions(entities.ItemShapes)...).
				Value(&def.ShapeBase),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Max stack size").
				Value(&maxStack).
				Validate(validateInt),
			huh.NewInput().
				Title("Material density").
				Value(&density).
				Validate(validateInt),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&tags),
			huh.NewConfirm().
				Title("Is this item food?").
				Value(&food),
		),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	def.MaxStackSize, _ = strconv.Atoi(strings.TrimSpace(maxStack))
	def.MaterialDensity, _ = strconv.Atoi(strings.TrimSpace(density))
	def.Tags = splitList(tags)
	if food == def.IsFood() {
		return nil
	}

	def.SetFood(food)
	if !food {
		return nil
	}
	satiety := strconv.FormatFloat(def.Nutrition.Satiety, 'f', -1, 64)
	err = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Food category").
			Options(huh.NewOptions(entities.FoodCategories...)...).
			Value(&def.Nutrition.FoodCategory),
		huh.NewInput().
			Title("Satiety").
			Value(&satiety).
			Validate(validateInt),
	)).RunWithContext(ctx)
	if err != nil {
		return err
	}
	def.Nutrition.Satiety, _ = strconv.ParseFloat(strings.TrimSpace(satiety), 64)
	def.Nutrition.Nutrition = map[string]float64{def.Nutrition.FoodCategory: 0.5}
	return nil
}

// shapeOptions lists a shape catalog for a select prompt, with a leading
// entry for no shape.
func shapeOptions(shapes []entities.ShapeOption) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(shapes)+1)
	opts = append(opts, huh.NewOption("(none)", ""))
	for _, s := range shapes {
		opts = append(opts, huh.NewOption(s.Label+" ("+s.Path+")", s.Path))
	}
	return opts
}
