// Package maze builds the grid the soul must cross: a perfect maze carved by
// randomized depth-first search, reshaped by theme passes and, optionally,
// scattered with sin obstacles.
package maze

import (
	"fmt"
	"strings"
)

// Cell is the content of one grid square.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// Coord addresses a cell. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Directions lists the four orthogonal unit steps: north, east, south, west.
var Directions = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a width×height lattice of cells stored row-major.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid returns a grid filled with walls.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// OnBorder reports whether c lies on the outermost ring.
func (g *Grid) OnBorder(c Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1
}

// At returns the cell at c. Out-of-bounds coordinates read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Y*g.width+c.X]
}

// IsOpen reports whether c is on the grid and passable.
func (g *Grid) IsOpen(c Coord) bool { return g.At(c) == Open }

// open carves c unless it is on or beyond the border.
func (g *Grid) open(c Coord) {
	if !g.InBounds(c) || g.OnBorder(c) {
		return
	}
	g.cells[c.Y*g.width+c.X] = Open
}

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Neighbors returns the open orthogonal neighbors of c.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if n := c.Add(d); g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// String renders walls as '#' and open cells as spaces, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(Coord{x, y}) == Open {
				b.WriteByte(' ')
			} else {
				b.WriteByte('#')
			}
		}
		if y < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Parse builds a grid from rows where '#' is a wall and anything else is open.
// It is the inverse of String and is mostly used to hand-build test grids.
// Parse does not enforce the border invariant.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] != '#' {
				g.cells[y*g.width+x] = Open
			}
		}
	}
	return g, nil
}
