package engine

import (
	"strings"

	"github.com/tatianab/asylum-of-sins/internal/maze"
)

// Tile classifies a map cell for rendering.
type Tile uint8

const (
	TileFog Tile = iota
	TileWall
	TileFloor
	TileTrail
	TileOptimal
	TileObstacle
	TileGoal
	TilePlayer
)

// MapCell is one rendered cell. Obstacle is set for TileObstacle.
type MapCell struct {
	Tile     Tile
	Obstacle maze.Obstacle
}

// Rune is the plain-text symbol for the cell.
func (c MapCell) Rune() rune {
	switch c.Tile {
	case TileWall:
		return '#'
	case TileFloor:
		return ' '
	case TileTrail:
		return '.'
	case TileOptimal:
		return '*'
	case TileObstacle:
		return c.Obstacle.Glyph()
	case TileGoal:
		return 'E'
	case TilePlayer:
		return '@'
	}
	return '~'
}

// View returns the map as the player knows it, indexed [y][x]. With reveal
// set the fog lifts and the optimal route is marked.
func (s *Session) View(reveal bool) [][]MapCell {
	if s.maze == nil {
		return nil
	}
	g := s.maze.Grid
	onTrail := make(map[maze.Coord]bool, len(s.trail))
	for _, c := range s.trail {
		onTrail[c] = true
	}
	var onRoute map[maze.Coord]bool
	if reveal {
		onRoute = make(map[maze.Coord]bool, len(s.optimal))
		for _, c := range s.optimal {
			onRoute[c] = true
		}
	}

	rows := make([][]MapCell, g.Height())
	for y := range rows {
		rows[y] = make([]MapCell, g.Width())
		for x := range rows[y] {
			c := maze.Coord{X: x, Y: y}
			if !reveal && !s.Visible(c) {
				continue
			}
			cell := MapCell{Tile: TileFloor}
			o, hasObstacle := s.maze.ObstacleAt(c)
			switch {
			case c == s.pos:
				cell.Tile = TilePlayer
			case c == s.maze.Goal:
				cell.Tile = TileGoal
			case !g.IsOpen(c):
				cell.Tile = TileWall
			case hasObstacle:
				cell = MapCell{Tile: TileObstacle, Obstacle: o}
			case onTrail[c]:
				cell.Tile = TileTrail
			case onRoute[c]:
				cell.Tile = TileOptimal
			}
			rows[y][x] = cell
		}
	}
	return rows
}

// Render draws View as text, one row per line.
func (s *Session) Render(reveal bool) string {
	var b strings.Builder
	for y, row := range s.View(reveal) {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune())
		}
	}
	return b.String()
}
