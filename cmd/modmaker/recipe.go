package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	appservices "github.com/TinyTaru/VintagestoryModmaker/internal/application/services"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/system"
)

// RecipeOptions holds options for the recipe command.
type RecipeOptions struct {
	output      OutputOptions
	size        string
	outputCode  string
	outputKind  string
	rows        []string
	quantity    int
	group       int
	shapeless   bool
	disabled    bool
	interactive bool
}

func init() {
	rootCmd.AddCommand(newRecipeCmd())
}

func newRecipeCmd() *cobra.Command {
	opts := &RecipeOptions{}

	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Generate a grid recipe",
		Long: `Compile a crafting grid into a grid recipe document.

Each --row is one grid row of comma separated cells. A cell is "_" (or empty)
for nothing, an asset code for an item, or code@block for a block. Codes
without a domain are read as game codes. Symbols A-Z
are assigned to distinct codes in reading order.

Examples:
  # Copper pickaxe
  modmaker recipe --row game:ingot-copper,game:ingot-copper,game:ingot-copper \
                  --row _,game:stick,_ --row _,game:stick,_ \
                  --output-code mymod:pickaxe-copper

  # Shapeless, two of the output, as YAML
  modmaker recipe --row game:plank-oak,game:plank-oak --row _,_ --shapeless \
                  --output-code game:stick --quantity 2 --format yaml

  # Build the grid in the terminal editor
  modmaker recipe --interactive`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			return runRecipe(cc, cmd, opts)
		}),
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "Grid size WIDTHxHEIGHT, 2x2 to 3x3 (default from config, else 3x3)")
	cmd.Flags().StringArrayVarP(&opts.rows, "row", "r", nil, "Grid row of comma separated cells (repeatable)")
	cmd.Flags().StringVar(&opts.outputCode, "output-code", "", "Asset code of the crafted stack")
	cmd.Flags().StringVar(&opts.outputKind, "output-kind", "item", "Kind of the crafted stack: item or block")
	cmd.Flags().IntVarP(&opts.quantity, "quantity", "q", 1, "Stack size of the output, clamped to 1-64")
	cmd.Flags().IntVar(&opts.group, "group", 0, "Recipe group (0 is the game default)")
	cmd.Flags().BoolVar(&opts.shapeless, "shapeless", false, "Ingredients may be placed anywhere on the grid")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Mark the recipe as disabled")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Edit the grid in the terminal")
	opts.output.RegisterFlags(cmd)

	return cmd
}

func runRecipe(cc *CommandContext, cmd *cobra.Command, opts *RecipeOptions) error {
	cfg := cc.Container.SystemConfig()
	if err := opts.output.ValidateFlags(cfg); err != nil {
		return err
	}

	session, err := newRecipeSession(cfg, opts)
	if err != nil {
		return err
	}

	if opts.interactive {
		if err := requireInteractive(); err != nil {
			return err
		}
		done, err := newRecipeEditor(session, cmd.OutOrStdout()).Run(cc.Context)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
	} else if len(opts.rows) == 0 {
		return errors.New("no grid given: pass --row for each grid row or use --interactive")
	}

	if session.Output().Code == "" {
		return errors.New("output code is required: pass --output-code")
	}

	recipe, err := session.Compile()
	if err != nil {
		return err
	}
	for _, c := range recipe.KindConflicts {
		cc.Logger.Warn(appservices.KindConflictWarning(session.Output().Code, c))
	}

	return opts.output.Emit(cc, cmd, services.NewRecipeDocument(recipe))
}

// newRecipeSession builds a session from the system config and the flags.
func newRecipeSession(cfg *system.Config, opts *RecipeOptions) (*entities.RecipeSession, error) {
	session, err := entities.NewRecipeSession(cfg.SessionOptions()...)
	if err != nil {
		return nil, err
	}

	if len(opts.rows) > 0 {
		if err := services.FillFromRows(session, opts.rows); err != nil {
			return nil, err
		}
	}
	if opts.size != "" {
		width, height, err := parseSize(opts.size)
		if err != nil {
			return nil, err
		}
		if err := session.Resize(width, height); err != nil {
			return nil, err
		}
	}

	kind, err := values.NewItemKind(opts.outputKind)
	if err != nil {
		return nil, fmt.Errorf("--output-kind: %w", err)
	}
	session.SetOutput(entities.OutputSpec{Kind: kind, Code: opts.outputCode, Quantity: opts.quantity})
	session.SetShapeless(opts.shapeless)
	session.SetRecipeGroup(opts.group)
	session.SetEnabled(!opts.disabled)
	return session, nil
}
