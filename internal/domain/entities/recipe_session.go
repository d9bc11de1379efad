package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

// RecipeSession is the state of one grid recipe editor: the grid, the
// ingredient palette, the current selection and the output stack.
// A session belongs to a single caller and is not safe for concurrent use.
type RecipeSession struct {
	grid        *Grid
	now         func() time.Time
	newID       func() string
	selectedID  string
	palette     []IngredientRef
	output      OutputSpec
	recipeGroup int
	shapeless   bool
	enabled     bool
}

// SessionOption configures a new session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	now     func() time.Time
	newID   func() string
	palette []IngredientRef
	width   int
	height  int
}

// WithGridSize overrides the 3x3 default.
func WithGridSize(width, height int) SessionOption {
	return func(c *sessionConfig) {
		c.width = width
		c.height = height
	}
}

// WithPalette replaces the seed palette. Entries without an ID get one.
func WithPalette(palette []IngredientRef) SessionOption {
	return func(c *sessionConfig) {
		c.palette = append([]IngredientRef(nil), palette...)
	}
}

// WithClock sets the time source used for placement ids.
func WithClock(now func() time.Time) SessionOption {
	return func(c *sessionConfig) {
		c.now = now
	}
}

// WithIDGenerator sets the generator for new palette ids.
func WithIDGenerator(newID func() string) SessionOption {
	return func(c *sessionConfig) {
		c.newID = newID
	}
}

// NewRecipeSession starts a session with an empty grid and the seed palette.
func NewRecipeSession(opts ...SessionOption) (*RecipeSession, error) {
	cfg := sessionConfig{
		now:     time.Now,
		newID:   uuid.NewString,
		palette: DefaultPalette(),
		width:   DefaultGridSize,
		height:  DefaultGridSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	grid, err := NewGrid(cfg.width, cfg.height)
	if err != nil {
		return nil, err
	}

	s := &RecipeSession{
		grid:    grid,
		now:     cfg.now,
		newID:   cfg.newID,
		output:  DefaultOutput(),
		enabled: true,
	}
	for _, ref := range cfg.palette {
		if ref.ID == "" {
			ref.ID = s.newID()
		}
		if ref.Kind == "" {
			ref.Kind = values.KindItem
		}
		s.palette = append(s.palette, ref)
	}
	return s, nil
}

// Width returns the grid width.
func (s *RecipeSession) Width() int { return s.grid.Width() }

// Height returns the grid height.
func (s *RecipeSession) Height() int { return s.grid.Height() }

// Cell returns the placement at (x, y), if any.
func (s *RecipeSession) Cell(x, y int) (Placement, bool) {
	return s.grid.At(x, y)
}

// PlaceIngredient puts a copy of ref into (x, y), or clears the cell when ref
// is nil. Coordinates must be in bounds; violating that panics.
func (s *RecipeSession) PlaceIngredient(x, y int, ref *IngredientRef) {
	if ref == nil {
		s.grid.set(x, y, nil)
		return
	}
	s.grid.set(x, y, &Placement{
		IngredientRef: *ref,
		PlacementID:   fmt.Sprintf("%d-%d-%d", x, y, s.now().UnixNano()),
	})
}

// ClickCell places the selected ingredient at (x, y), or clears the cell when
// nothing is selected.
func (s *RecipeSession) ClickCell(x, y int) {
	if ref, ok := s.Selected(); ok {
		s.PlaceIngredient(x, y, &ref)
		return
	}
	s.PlaceIngredient(x, y, nil)
}

// Resize changes the grid dimensions. Placements outside the new bounds are dropped.
func (s *RecipeSession) Resize(width, height int) error {
	if !ValidGridDimension(width) || !ValidGridDimension(height) {
		return &InvalidGridSizeError{Width: width, Height: height}
	}
	s.grid.resize(width, height)
	return nil
}

// ClearGrid empties every cell.
func (s *RecipeSession) ClearGrid() {
	*s.grid = *newGrid(s.grid.width, s.grid.height)
}

// Palette returns a copy of the palette in insertion order.
func (s *RecipeSession) Palette() []IngredientRef {
	return append([]IngredientRef(nil), s.palette...)
}

// Ingredient looks up a palette entry by id.
func (s *RecipeSession) Ingredient(id string) (IngredientRef, bool) {
	for _, ref := range s.palette {
		if ref.ID == id {
			return ref, true
		}
	}
	return IngredientRef{}, false
}

// FindIngredient returns the first palette entry with the given code and kind.
func (s *RecipeSession) FindIngredient(code string, kind values.ItemKind) (IngredientRef, bool) {
	for _, ref := range s.palette {
		if ref.Code == code && ref.Kind == kind {
			return ref, true
		}
	}
	return IngredientRef{}, false
}

// AddIngredientToPalette appends a new entry with a fresh id and selects it.
// Codes without a domain are placed in the game domain. The grid is not
// touched. Duplicate codes are allowed.
func (s *RecipeSession) AddIngredientToPalette(code string, kind values.ItemKind) (IngredientRef, error) {
	ac, err := values.NewAssetCode(code)
	if err != nil {
		return IngredientRef{}, err
	}
	if kind == "" {
		kind = values.KindItem
	}
	if err := kind.Validate(); err != nil {
		return IngredientRef{}, err
	}

	ref := IngredientRef{ID: s.newID(), Code: ac.Qualified(), Kind: kind}
	s.palette = append(s.palette, ref)
	s.selectedID = ref.ID
	return ref, nil
}

// SelectIngredient makes the palette entry with the given id current.
func (s *RecipeSession) SelectIngredient(id string) error {
	if _, ok := s.Ingredient(id); !ok {
		return &UnknownIngredientError{ID: id}
	}
	s.selectedID = id
	return nil
}

// ClearSelection deselects the current ingredient.
func (s *RecipeSession) ClearSelection() {
	s.selectedID = ""
}

// Selected returns the selected palette entry.
func (s *RecipeSession) Selected() (IngredientRef, bool) {
	if s.selectedID == "" {
		return IngredientRef{}, false
	}
	return s.Ingredient(s.selectedID)
}

// SetOutput stores the output stack, clamping the quantity into [1, 64].
func (s *RecipeSession) SetOutput(spec OutputSpec) {
	spec.Code = strings.TrimSpace(spec.Code)
	if spec.Kind == "" {
		spec.Kind = values.KindItem
	}
	spec.Quantity = values.ClampQuantity(spec.Quantity)
	s.output = spec
}

// Output returns the stored output stack.
func (s *RecipeSession) Output() OutputSpec {
	return s.output
}

// SetShapeless toggles between a pattern recipe and a bare ingredient set.
func (s *RecipeSession) SetShapeless(shapeless bool) {
	s.shapeless = shapeless
}

// Shapeless reports the current mode.
func (s *RecipeSession) Shapeless() bool {
	return s.shapeless
}

// SetRecipeGroup sets the recipe group; 0 is the game default.
func (s *RecipeSession) SetRecipeGroup(group int) {
	if group < 0 {
		group = 0
	}
	s.recipeGroup = group
}

// RecipeGroup returns the recipe group.
func (s *RecipeSession) RecipeGroup() int {
	return s.recipeGroup
}

// SetEnabled marks the recipe as enabled or disabled in game.
func (s *RecipeSession) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether the recipe is enabled in game.
func (s *RecipeSession) Enabled() bool {
	return s.enabled
}

// Compile encodes the current state. It does not modify the session, and two
// calls without an intervening mutation return equal recipes.
func (s *RecipeSession) Compile() (*CompiledRecipe, error) {
	recipe, err := compileGrid(s.grid, s.output, s.shapeless)
	if err != nil {
		return nil, err
	}
	recipe.RecipeGroup = s.recipeGroup
	recipe.Enabled = s.enabled
	return recipe, nil
}
