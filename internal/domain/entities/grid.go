package entities

import "fmt"

const (
	// DefaultGridSize is the width and height of a new crafting grid.
	DefaultGridSize = 3
	// MinGridSize and MaxGridSize bound each grid dimension.
	MinGridSize = 2
	MaxGridSize = 3
)

// ValidGridDimension reports whether n is a supported grid width or height.
func ValidGridDimension(n int) bool {
	return n >= MinGridSize && n <= MaxGridSize
}

// Grid is a row-major crafting grid. cells[y][x] is nil for an empty cell.
type Grid struct {
	cells  [][]*Placement
	width  int
	height int
}

// NewGrid creates an empty grid, validating the dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if !ValidGridDimension(width) || !ValidGridDimension(height) {
		return nil, &InvalidGridSizeError{Width: width, Height: height}
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	cells := make([][]*Placement, height)
	for y := range cells {
		cells[y] = make([]*Placement, width)
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns a copy of the placement at (x, y).
func (g *Grid) At(x, y int) (Placement, bool) {
	g.mustBeInBounds(x, y)
	p := g.cells[y][x]
	if p == nil {
		return Placement{}, false
	}
	return *p, true
}

// set replaces the cell content; nil clears it.
func (g *Grid) set(x, y int, p *Placement) {
	g.mustBeInBounds(x, y)
	g.cells[y][x] = p
}

// resize changes the dimensions, keeping placements that still fit.
func (g *Grid) resize(width, height int) {
	next := newGrid(width, height)
	for y := 0; y < height && y < g.height; y++ {
		for x := 0; x < width && x < g.width; x++ {
			next.cells[y][x] = g.cells[y][x]
		}
	}
	*g = *next
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.cells {
		for _, p := range row {
			if p != nil {
				n++
			}
		}
	}
	return n
}

func (g *Grid) mustBeInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid cell (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
}
