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

// BlockOptions holds options for the block command.
type BlockOptions struct {
	output       OutputOptions
	code         string
	class        string
	shape        string
	texture      string
	material     string
	soundPlace   string
	soundBreak   string
	soundWalk    string
	dropType     string
	dropCode     string
	creativeTabs []string
	lightHSV     []int
	resistance   float64
	lightLevel   int
	toolTier     int
	interactive  bool
}

func init() {
	rootCmd.AddCommand(newBlockCmd())
}

func newBlockCmd() *cobra.Command {
	opts := &BlockOptions{}

	cmd := &cobra.Command{
		Use:   "block",
		Short: "Generate a block type document",
		Long: `Generate a blocktypes/*.json document.

Examples:
  modmaker block --code copper-bricks --texture block/copper-bricks --material Metal
  modmaker block --code glowstone --light 14 --light-hsv 30,200,255
  modmaker block --code ore-tin --drop-type item --drop-code game:nugget-tin --tool-tier 2`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			return runBlock(cc, cmd, opts)
		}),
	}

	def := entities.NewBlockDefinition()
	cmd.Flags().StringVar(&opts.code, "code", "", "Block code")
	cmd.Flags().StringVar(&opts.class, "class", def.Class, "Block class")
	cmd.Flags().StringVar(&opts.shape, "shape", def.ShapeBase, "Base shape path")
	cmd.Flags().StringVar(&opts.texture, "texture", "", "Texture used for all faces")
	cmd.Flags().StringVar(&opts.material, "material", def.BlockMaterial,
		"Block material: "+strings.Join(entities.BlockMaterials, ", "))
	cmd.Flags().Float64Var(&opts.resistance, "resistance", def.Resistance, "Mining resistance")
	cmd.Flags().StringVar(&opts.soundPlace, "sound-place", def.Sounds.Place, "Sound played when placed")
	cmd.Flags().StringVar(&opts.soundBreak, "sound-break", def.Sounds.Break, "Sound played when broken")
	cmd.Flags().StringVar(&opts.soundWalk, "sound-walk", def.Sounds.Walk, "Sound played when walked on")
	cmd.Flags().StringVar(&opts.dropType, "drop-type", def.Drop.Type, "Drop type: "+strings.Join(entities.DropTypes, ", "))
	cmd.Flags().StringVar(&opts.dropCode, "drop-code", "", "Code of the dropped stack (no drop when empty)")
	cmd.Flags().IntVar(&opts.lightLevel, "light", 0, "Emitted light level, 0-31")
	cmd.Flags().IntSliceVar(&opts.lightHSV, "light-hsv", def.LightHSV[:], "Light hue,saturation,value")
	cmd.Flags().IntVar(&opts.toolTier, "tool-tier", 0, "Required tool tier, 0-7")
	cmd.Flags().StringArrayVar(&opts.creativeTabs, "creative-tab", nil, "Creative inventory tab (repeatable, default general)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Fill in the fields in the terminal")
	opts.output.RegisterFlags(cmd)

	return cmd
}

func runBlock(cc *CommandContext, cmd *cobra.Command, opts *BlockOptions) error {
	if err := opts.output.ValidateFlags(cc.Container.SystemConfig()); err != nil {
		return err
	}

	def, err := opts.definition()
	if err != nil {
		return err
	}
	if opts.interactive {
		if err := requireInteractive(); err != nil {
			return err
		}
		if err := runBlockForm(cc.Context, def); err != nil {
			return err
		}
	}
	if strings.TrimSpace(def.Code) == "" {
		return errors.New("block code is required: pass --code")
	}

	return opts.output.Emit(cc, cmd, services.NewBlockDocument(def))
}

// definition builds the block form state from the flags.
func (opts *BlockOptions) definition() (*entities.BlockDefinition, error) {
	if len(opts.lightHSV) != 3 {
		return nil, errors.New("--light-hsv needs three values: hue,saturation,value")
	}

	def := entities.NewBlockDefinition()
	def.Code = strings.TrimSpace(opts.code)
	def.Class = opts.class
	def.ShapeBase = strings.TrimSpace(opts.shape)
	def.TextureAll = strings.TrimSpace(opts.texture)
	def.BlockMaterial = opts.material
	def.Resistance = opts.resistance
	def.Sounds = entities.BlockSounds{Place: opts.soundPlace, Break: opts.soundBreak, Walk: opts.soundWalk}
	def.SetDrop(opts.dropType, strings.TrimSpace(opts.dropCode))
	def.SetLight(opts.lightLevel, opts.lightHSV[0], opts.lightHSV[1], opts.lightHSV[2])
	def.RequiresToolTier = opts.toolTier
	if len(opts.creativeTabs) > 0 {
		def.CreativeInventory = nil
		for _, tab := range opts.creativeTabs {
			def.AddCreativeTab(tab)
		}
	}
	return def, nil
}

// runBlockForm edits def in place.
func runBlockForm(ctx context.Context, def *entities.BlockDefinition) error {
	resistance := strconv.FormatFloat(def.Resistance, 'f', -1, 64)
	light := strconv.Itoa(def.LightLevel)
	toolTier := strconv.Itoa(def.RequiresToolTier)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Code").
				Value(&def.Code).
				Validate(required("code")),
			huh.NewInput().
				Title("Class").
				Value(&def.Class),
			huh.NewSelect[string]().
				Title("Shape").
				Options(shapeOptions(entities.BlockShapes)...).
				Value(&def.ShapeBase),
			huh.NewInput().
				Title("Texture").
				Value(&def.TextureAll),
			huh.NewSelect[string]().
				Title("Material").
				Options(huh.NewOptions(entities.BlockMaterials...)...).
				Value(&def.BlockMaterial),
			huh.NewInput().
				Title("Resistance").
				Value(&resistance).
				Validate(validateFloat),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Drop type").
				Options(huh.NewOptions(entities.DropTypes...)...).
				Value(&def.Drop.Type),
			huh.NewInput().
				Title("Drop code").
				Description("Leave empty for no drop").
				Value(&def.Drop.Code),
			huh.NewInput().
				Title("Light level (0-31)").
				Value(&light).
				Validate(validateInt),
			huh.NewInput().
				Title("Required tool tier (0-7)").
				Value(&toolTier).
				Validate(validateInt),
		),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	def.Resistance, _ = strconv.ParseFloat(strings.TrimSpace(resistance), 64)
	def.LightLevel, _ = strconv.Atoi(strings.TrimSpace(light))
	def.RequiresToolTier, _ = strconv.Atoi(strings.TrimSpace(toolTier))
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}
