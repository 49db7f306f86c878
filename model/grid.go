package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is the dense, 0-indexed form of a generation: height rows of width
// columns, true meaning alive. It is built fresh for each step.
type Grid struct {
	height int
	width  int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(height, width int) *Grid {
	g := &Grid{}
	g.Reset(height, width)
	return g
}

// GetHeight returns the number of rows of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetWidth returns the number of columns of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// Reset resizes the grid and marks every cell dead.
func (g *Grid) Reset(height, width int) {
	g.height = height
	g.width = width

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear marks every cell dead
func (g *Grid) Clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}

// Set sets a 0-indexed cell; out-of-range cells are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if row >= 0 && row < g.height && col >= 0 && col < g.width {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a 0-indexed cell; out-of-range cells are dead.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.cells[row][col]
}

// ToDense materializes a sparse set of 1-indexed cells into a new grid.
func ToDense(height, width int, alive AliveSet) (*Grid, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	g := NewGrid(height, width)
	if err := g.fill(alive); err != nil {
		return nil, err
	}
	return g, nil
}

func checkDimensions(height, width int) error {
	if height < 1 || width < 1 {
		return errors.Wrapf(ErrOutOfBounds, "[ToDense] dimensions %dx%d must be positive", height, width)
	}
	return nil
}

// fill marks the cells of alive on an all-dead grid. The 1-to-0 index
// offset is applied here and in ToSparse only.
func (g *Grid) fill(alive AliveSet) error {
	for c := range alive {
		if !c.InBounds(g.height, g.width) {
			return errors.Wrapf(ErrOutOfBounds, "[ToDense] cell %v outside %dx%d grid", c, g.height, g.width)
		}
		g.cells[c.Row-1][c.Col-1] = true
	}
	return nil
}

// ToSparse returns the 1-indexed coordinates of every alive cell.
func (g *Grid) ToSparse() AliveSet {
	set := NewAliveSet()
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				set[Coordinate{Row: row + 1, Col: col + 1}] = struct{}{}
			}
		}
	}
	return set
}

// CountNeighbors counts living neighbors in the 3x3 window around a
// 0-indexed cell, clamped to the grid edges.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Classify returns the next-generation state of a 0-indexed cell.
func (g *Grid) Classify(row, col int) rules.CellState {
	return rules.Classify(g.cells[row][col], g.CountNeighbors(row, col))
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// advanceRows writes the next state of rows [startRow, endRow) into next.
func (g *Grid) advanceRows(next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range g.width {
			next.cells[row][col] = g.Classify(row, col).AliveNext()
		}
	}
}
