package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/output"
)

// Editor actions offered after every redraw.
const (
	actionSelect    = "select"
	actionClick     = "click"
	actionAdd       = "add"
	actionResize    = "resize"
	actionClear     = "clear"
	actionOutput    = "output"
	actionShapeless = "shapeless"
	actionGroup     = "group"
	actionEnabled   = "enabled"
	actionDone      = "done"
	actionCancel    = "cancel"
)

// noSelection is the select value that deselects the current ingredient.
const noSelection = ""

// editorPrompts asks the user for the next editing step.
type editorPrompts interface {
	Action(ctx context.Context, shapeless, enabled bool) (string, error)
	Ingredient(ctx context.Context, palette []entities.IngredientRef, selected string) (string, error)
	Cell(ctx context.Context, width, height int) (x, y int, err error)
	NewIngredient(ctx context.Context) (code string, kind values.ItemKind, err error)
	Size(ctx context.Context, width, height int) (int, int, error)
	Output(ctx context.Context, current entities.OutputSpec) (entities.OutputSpec, error)
	Group(ctx context.Context, current int) (int, error)
}

// recipeEditor drives a session from terminal prompts, redrawing the grid
// before each step.
type recipeEditor struct {
	session *entities.RecipeSession
	out     io.Writer
	prompts editorPrompts
}

func newRecipeEditor(session *entities.RecipeSession, out io.Writer) *recipeEditor {
	return &recipeEditor{session: session, out: out, prompts: huhPrompts{}}
}

// Run edits until the user is done (true) or cancels (false).
func (e *recipeEditor) Run(ctx context.Context) (bool, error) {
	for {
		fmt.Fprint(e.out, output.RenderSession(e.session))

		action, err := e.prompts.Action(ctx, e.session.Shapeless(), e.session.Enabled())
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch action {
		case actionDone:
			return true, nil
		case actionCancel:
			return false, nil
		}

		err = e.apply(ctx, action)
		switch {
		case errors.Is(err, huh.ErrUserAborted):
			// back to the action menu
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return false, err
		case err != nil:
			fmt.Fprintf(e.out, "error: %v\n", err)
		}
	}
}

func (e *recipeEditor) apply(ctx context.Context, action string) error {
	s := e.session
	switch action {
	case actionSelect:
		current, _ := s.Selected()
		id, err := e.prompts.Ingredient(ctx, s.Palette(), current.ID)
		if err != nil {
			return err
		}
		if id == noSelection {
			s.ClearSelection()
			return nil
		}
		return s.SelectIngredient(id)

	case actionClick:
		x, y, err := e.prompts.Cell(ctx, s.Width(), s.Height())
		if err != nil {
			return err
		}
		s.ClickCell(x, y)
		return nil

	case actionAdd:
		code, kind, err := e.prompts.NewIngredient(ctx)
		if err != nil {
			return err
		}
		_, err = s.AddIngredientToPalette(code, kind)
		return err

	case actionResize:
		width, height, err := e.prompts.Size(ctx, s.Width(), s.Height())
		if err != nil {
			return err
		}
		return s.Resize(width, height)

	case actionClear:
		s.ClearGrid()
		return nil

	case actionOutput:
		spec, err := e.prompts.Output(ctx, s.Output())
		if err != nil {
			return err
		}
		s.SetOutput(spec)
		return nil

	case actionShapeless:
		s.SetShapeless(!s.Shapeless())
		return nil

	case actionGroup:
		group, err := e.prompts.Group(ctx, s.RecipeGroup())
		if err != nil {
			return err
		}
		s.SetRecipeGroup(group)
		return nil

	case actionEnabled:
		s.SetEnabled(!s.Enabled())
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// parseCell reads a 1-based "column,row" pair into 0-based coordinates.
func parseCell(s string, width, height int) (x, y int, err error) {
	col, row, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected column,row such as 2,1")
	}
	if x, err = strconv.Atoi(strings.TrimSpace(col)); err != nil {
		return 0, 0, fmt.Errorf("column: %w", err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(row)); err != nil {
		return 0, 0, fmt.Errorf("row: %w", err)
	}
	if x < 1 || x > width || y < 1 || y > height {
		return 0, 0, fmt.Errorf("cell %d,%d is outside the %dx%d grid", x, y, width, height)
	}
	return x - 1, y - 1, nil
}

// ingredientOptions lists the palette for the select prompt, with a leading
// entry that clears the selection.
func ingredientOptions(palette []entities.IngredientRef) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(palette)+1)
	opts = append(opts, huh.NewOption("(none, clicking clears cells)", noSelection))
	for _, ref := range palette {
		label := ref.Code
		if !ref.Kind.IsDefault() {
			label += " (" + ref.Kind.String() + ")"
		}
		opts = append(opts, huh.NewOption(label, ref.ID))
	}
	return opts
}

func kindOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Item", values.KindItem.String()),
		huh.NewOption("Block", values.KindBlock.String()),
	}
}

func sizeOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for w := entities.MinGridSize; w <= entities.MaxGridSize; w++ {
		for h := entities.MinGridSize; h <= entities.MaxGridSize; h++ {
			size := fmt.Sprintf("%dx%d", w, h)
			opts = append(opts, huh.NewOption(size, size))
		}
	}
	return opts
}

// huhPrompts implements editorPrompts with huh forms.
type huhPrompts struct{}

func (huhPrompts) Action(ctx context.Context, shapeless, enabled bool) (string, error) {
	shapelessLabel := "Make shapeless"
	if shapeless {
		shapelessLabel = "Make shaped"
	}
	enabledLabel := "Disable recipe"
	if !enabled {
		enabledLabel = "Enable recipe"
	}

	action := actionClick
	err := runField(ctx, huh.NewSelect[string]().
		Title("Recipe editor").
		Options(
			huh.NewOption("Click a cell", actionClick),
			huh.NewOption("Select ingredient", actionSelect),
			huh.NewOption("Add ingredient", actionAdd),
			huh.NewOption("Resize grid", actionResize),
			huh.NewOption("Clear grid", actionClear),
			huh.NewOption("Set output", actionOutput),
			huh.NewOption(shapelessLabel, actionShapeless),
			huh.NewOption("Set recipe group", actionGroup),
			huh.NewOption(enabledLabel, actionEnabled),
			huh.NewOption("Done", actionDone),
			huh.NewOption("Cancel", actionCancel),
		).
		Value(&action))
	return action, err
}

func (huhPrompts) Ingredient(ctx context.Context, palette []entities.IngredientRef, selected string) (string, error) {
	id := selected
	err := runField(ctx, huh.NewSelect[string]().
		Title("Ingredient").
		Options(ingredientOptions(palette)...).
		Value(&id))
	return id, err
}

func (huhPrompts) Cell(ctx context.Context, width, height int) (int, int, error) {
	var raw string
	err := runField(ctx, huh.NewInput().
		Title("Cell (column,row)").
		Value(&raw).
		Validate(func(s string) error {
			_, _, err := parseCell(s, width, height)
			return err
		}))
	if err != nil {
		return 0, 0, err
	}
	return parseCell(raw, width, height)
}

func (huhPrompts) NewIngredient(ctx context.Context) (string, values.ItemKind, error) {
	var code string
	kind := values.KindItem.String()
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Asset code").
			Placeholder("game:ingot-copper").
			Value(&code).
			Validate(func(s string) error {
				_, err := values.NewAssetCode(s)
				return err
			}),
		huh.NewSelect[string]().
			Title("Kind").
			Options(kindOptions()...).
			Value(&kind),
	)).RunWithContext(ctx)
	if err != nil {
		return "", "", err
	}
	return code, values.ItemKind(kind), nil
}

func (huhPrompts) Size(ctx context.Context, width, height int) (int, int, error) {
	size := fmt.Sprintf("%dx%d", width, height)
	err := runField(ctx, huh.NewSelect[string]().
		Title("Grid size").
		Options(sizeOptions()...).
		Value(&size))
	if err != nil {
		return 0, 0, err
	}
	return parseSize(size)
}

func (huhPrompts) Output(ctx context.Context, current entities.OutputSpec) (entities.OutputSpec, error) {
	code := current.Code
	kind := current.Kind.String()
	quantity := strconv.Itoa(current.Quantity)
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Output code").
			Value(&code).
			Validate(func(s string) error {
				_, err := values.NewAssetCode(s)
				return err
			}),
		huh.NewSelect[string]().
			Title("Output kind").
			Options(kindOptions()...).
			Value(&kind),
		huh.NewInput().
			Title("Quantity (1-64)").
			Value(&quantity).
			Validate(validateInt),
	)).RunWithContext(ctx)
	if err != nil {
		return entities.OutputSpec{}, err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(quantity))
	return entities.OutputSpec{Kind: values.ItemKind(kind), Code: code, Quantity: n}, nil
}

func (huhPrompts) Group(ctx context.Context, current int) (int, error) {
	raw := strconv.Itoa(current)
	err := runField(ctx, huh.NewInput().
		Title("Recipe group").
		Value(&raw).
		Validate(validateInt))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

func runField(ctx context.Context, field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx)
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
