package entities

import (
	"errors"
	"fmt"
)

// ErrTooManyDistinctIngredients is matched by errors.Is when a grid holds more
// distinct ingredient codes than there are pattern symbols.
var ErrTooManyDistinctIngredients = errors.New("too many distinct ingredients")

// TooManyDistinctIngredientsError carries the counts behind ErrTooManyDistinctIngredients.
type TooManyDistinctIngredientsError struct {
	// FirstUnassigned is the first code that could not get a symbol.
	FirstUnassigned string
	Distinct        int
	Available       int
}

func (e *TooManyDistinctIngredientsError) Error() string {
	return fmt.Sprintf(
		"too many distinct ingredients: %d codes placed, %d symbols available (first without a symbol: %s)",
		e.Distinct, e.Available, e.FirstUnassigned,
	)
}

// Is lets errors.Is match the sentinel.
func (e *TooManyDistinctIngredientsError) Is(target error) bool {
	return target == ErrTooManyDistinctIngredients
}

// InvalidGridSizeError is returned for dimensions outside the supported set.
type InvalidGridSizeError struct {
	Width  int
	Height int
}

func (e *InvalidGridSizeError) Error() string {
	return fmt.Sprintf("invalid grid size %dx%d: width and height must be 2 or 3", e.Width, e.Height)
}

// UnknownIngredientError indicates a palette id that is not in the session.
type UnknownIngredientError struct {
	ID string
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("ingredient not found in palette: %s", e.ID)
}
