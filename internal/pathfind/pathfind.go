// Package pathfind computes minimum-cost routes across a maze grid with
// Dijkstra's algorithm.
//
// The grid is treated as a 4-connected graph whose vertices are Open cells.
// Entering a cell costs CostFunc(cell), at least 1. Walls are never enqueued.
// The queue is a container/heap min-heap with lazy decrease-key: stale entries
// are skipped when popped because their cell is already marked visited.
//
// Complexity:
//
//   - Time:  O(V log V) for V open cells (each cell has at most four edges).
//   - Space: O(V)
//
// An unreachable goal is not an error. Shortest returns an empty Path and the
// caller decides how to degrade.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/tatianab/asylum-of-sins/internal/maze"
)

// CostFunc returns the price of stepping onto c. Values below 1 count as 1.
type CostFunc func(c maze.Coord) int

// UnitCost prices every step at 1.
func UnitCost(maze.Coord) int { return 1 }

// ObstacleCost prices steps onto m's obstacles at penalty and all other steps at 1.
func ObstacleCost(m *maze.Maze, penalty int) CostFunc {
	return func(c maze.Coord) int {
		if _, ok := m.ObstacleAt(c); ok {
			return penalty
		}
		return 1
	}
}

// Unreachable is the distance reported for cells with no route from the source.
const Unreachable = math.MaxInt

// Path is an ordered run of orthogonally adjacent coordinates.
type Path []maze.Coord

// Steps returns the number of moves along p.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Cost returns the total price of walking p, excluding its first cell.
func (p Path) Cost(cost CostFunc) int {
	if cost == nil {
		cost = UnitCost
	}
	total := 0
	for i := 1; i < len(p); i++ {
		total += stepCost(cost, p[i])
	}
	return total
}

// Contains reports whether c lies on p.
func (p Path) Contains(c maze.Coord) bool {
	for _, q := range p {
		if q == c {
			return true
		}
	}
	return false
}

// Shortest returns a minimum-cost path from start to goal, both inclusive. It
// returns an empty Path when either endpoint is not an open cell or the goal
// cannot be reached. A nil cost means UnitCost.
func Shortest(g *maze.Grid, start, goal maze.Coord, cost CostFunc) Path {
	if g == nil || !g.IsOpen(start) || !g.IsOpen(goal) {
		return Path{}
	}
	r := newRunner(g, start, cost)
	r.run(goal, true)

	if !r.visited[r.index(goal)] {
		return Path{}
	}

	var path Path
	for c, ok := goal, true; ok; c, ok = r.parentOf(c) {
		path = append(path, c)
	}
	for l, rr := 0, len(path)-1; l < rr; l, rr = l+1, rr-1 {
		path[l], path[rr] = path[rr], path[l]
	}
	return path
}

// Distances returns the minimum cost from start to every cell of g, indexed
// [y][x]. Walls and unreachable cells hold Unreachable. A nil grid yields nil.
func Distances(g *maze.Grid, start maze.Coord, cost CostFunc) [][]int {
	if g == nil {
		return nil
	}
	out := make([][]int, g.Height())
	for y := range out {
		out[y] = make([]int, g.Width())
		for x := range out[y] {
			out[y][x] = Unreachable
		}
	}
	if !g.IsOpen(start) {
		return out
	}
	r := newRunner(g, start, cost)
	r.run(maze.Coord{}, false)
	for i, d := range r.dist {
		out[i/g.Width()][i%g.Width()] = d
	}
	return out
}

// runner holds the mutable state of one search.
type runner struct {
	g       *maze.Grid
	cost    CostFunc
	dist    []int
	parent  []int
	visited []bool
	pq      cellPQ
}

func newRunner(g *maze.Grid, start maze.Coord, cost CostFunc) *runner {
	if cost == nil {
		cost = UnitCost
	}
	n := g.Width() * g.Height()
	r := &runner{
		g:       g,
		cost:    cost,
		dist:    make([]int, n),
		parent:  make([]int, n),
		visited: make([]bool, n),
		pq:      make(cellPQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.parent[i] = -1
	}
	r.dist[r.index(start)] = 0
	heap.Push(&r.pq, &cellItem{at: start, dist: 0})
	return r
}

func (r *runner) index(c maze.Coord) int { return c.Y*r.g.Width() + c.X }

func (r *runner) parentOf(c maze.Coord) (maze.Coord, bool) {
	p := r.parent[r.index(c)]
	if p < 0 {
		return maze.Coord{}, false
	}
	return maze.Coord{X: p % r.g.Width(), Y: p / r.g.Width()}, true
}

// run expands cells in distance order. With stopAtGoal it returns as soon as
// goal is finalized.
func (r *runner) run(goal maze.Coord, stopAtGoal bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		u := r.index(item.at)
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if stopAtGoal && item.at == goal {
			return
		}

		for _, d := range maze.Directions {
			next := item.at.Add(d)
			if !r.g.IsOpen(next) {
				continue
			}
			v := r.index(next)
			if r.visited[v] {
				continue
			}
			nd := r.dist[u] + stepCost(r.cost, next)
			if nd >= r.dist[v] {
				continue
			}
			r.dist[v] = nd
			r.parent[v] = u
			heap.Push(&r.pq, &cellItem{at: next, dist: nd})
		}
	}
}

func stepCost(cost CostFunc, c maze.Coord) int {
	if w := cost(c); w > 1 {
		return w
	}
	return 1
}

// cellItem is a queued cell with its tentative distance.
type cellItem struct {
	at   maze.Coord
	dist int
}

// cellPQ is a min-heap of *cellItem ordered by dist.
type cellPQ []*cellItem

func (pq cellPQ) Len() int           { return len(pq) }
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
