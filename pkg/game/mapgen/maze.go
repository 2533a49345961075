package mapgen

import (
	"math/rand"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// Wall slots of a maze cell.
const (
	mazeTop = iota
	mazeRight
	mazeBottom
	mazeLeft
)

// mazeCell is one cell of the half-resolution maze grid. All four walls
// start up; the carve removes them pairwise.
type mazeCell struct {
	row, column int
	walls       [4]bool
	visited     bool
}

// mazeGrid is the logical maze being carved before it is stamped onto the
// tile map at double resolution.
type mazeGrid struct {
	width, height int
	cells         []mazeCell
	backtrack     []int
	current       int
}

// MazeBuilder carves a perfect maze: every pair of floor cells is joined by
// exactly one simple path.
type MazeBuilder struct {
	baseBuilder
}

// NewMazeBuilder creates a maze builder for one level.
func NewMazeBuilder(width, height, depth int, snapshot bool) *MazeBuilder {
	return &MazeBuilder{baseBuilder: newBaseBuilder(width, height, depth, snapshot)}
}

// Name returns the algorithm's human-readable name.
func (b *MazeBuilder) Name() string {
	return "Maze"
}

// Build carves the level.
func (b *MazeBuilder) Build(rng *rand.Rand) {
	grid := newMazeGrid((b.m.Width/2)-2, (b.m.Height/2)-2)
	grid.carve(rng, b)

	grid.copyToMap(b.m)
	b.takeSnapshot()

	b.startX, b.startY = 2, 2
	logger.Log.WithField("cells", len(grid.cells)).Debug("maze carved")

	b.finishOrganic()
}

func newMazeGrid(width, height int) *mazeGrid {
	g := &mazeGrid{width: width, height: height}
	g.cells = make([]mazeCell, width*height)
	for i := range g.cells {
		g.cells[i] = mazeCell{
			row:    i / width,
			column: i % width,
			walls:  [4]bool{true, true, true, true},
		}
	}
	return g
}

// carve runs the growing-tree walk: visit the current cell, step to a random
// unvisited neighbor removing the shared wall, and backtrack off the stack
// when no unvisited neighbor remains. Terminates with every cell visited.
// The builder is consulted for periodic snapshots of the half-carved map.
func (g *mazeGrid) carve(rng *rand.Rand, b *MazeBuilder) {
	step := 0
	for {
		g.cells[g.current].visited = true

		next := g.randomUnvisitedNeighbor(rng)
		if next >= 0 {
			g.cells[next].visited = true
			g.backtrack = append(g.backtrack, g.current)
			g.removeSharedWall(g.current, next)
			g.current = next
		} else if n := len(g.backtrack); n > 0 {
			g.current = g.backtrack[n-1]
			g.backtrack = g.backtrack[:n-1]
		} else {
			break
		}

		step++
		if step%50 == 0 && b.snapshot {
			g.copyToMap(b.m)
			b.takeSnapshot()
		}
	}
}

// randomUnvisitedNeighbor returns the index of a random unvisited neighbor
// of the current cell, or -1 when none remain.
func (g *mazeGrid) randomUnvisitedNeighbor(rng *rand.Rand) int {
	cell := g.cells[g.current]
	var candidates []int
	if cell.row > 0 {
		if n := g.current - g.width; !g.cells[n].visited {
			candidates = append(candidates, n)
		}
	}
	if cell.column < g.width-1 {
		if n := g.current + 1; !g.cells[n].visited {
			candidates = append(candidates, n)
		}
	}
	if cell.row < g.height-1 {
		if n := g.current + g.width; !g.cells[n].visited {
			candidates = append(candidates, n)
		}
	}
	if cell.column > 0 {
		if n := g.current - 1; !g.cells[n].visited {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[rng.Intn(len(candidates))]
}

// removeSharedWall opens the passage between two adjacent cells.
func (g *mazeGrid) removeSharedWall(a, c int) {
	ca, cc := &g.cells[a], &g.cells[c]
	switch {
	case cc.row < ca.row:
		ca.walls[mazeTop] = false
		cc.walls[mazeBottom] = false
	case cc.row > ca.row:
		ca.walls[mazeBottom] = false
		cc.walls[mazeTop] = false
	case cc.column > ca.column:
		ca.walls[mazeRight] = false
		cc.walls[mazeLeft] = false
	default:
		ca.walls[mazeLeft] = false
		cc.walls[mazeRight] = false
	}
}

// passageCount returns the number of removed wall pairs; a perfect maze has
// exactly cells-1.
func (g *mazeGrid) passageCount() int {
	n := 0
	for _, c := range g.cells {
		if !c.walls[mazeRight] {
			n++
		}
		if !c.walls[mazeBottom] {
			n++
		}
	}
	return n
}

// copyToMap stamps the cell grid onto the tile map at double resolution:
// cell centers are always floor, open walls become floor between centers.
func (g *mazeGrid) copyToMap(m *world.Map) {
	for i := range m.Tiles {
		m.Tiles[i] = world.TileWall
	}
	for _, cell := range g.cells {
		x := (cell.column + 1) * 2
		y := (cell.row + 1) * 2
		idx := m.Index(x, y)

		m.Tiles[idx] = world.TileFloor
		if !cell.walls[mazeTop] {
			m.Tiles[idx-m.Width] = world.TileFloor
		}
		if !cell.walls[mazeRight] {
			m.Tiles[idx+1] = world.TileFloor
		}
		if !cell.walls[mazeBottom] {
			m.Tiles[idx+m.Width] = world.TileFloor
		}
		if !cell.walls[mazeLeft] {
			m.Tiles[idx-1] = world.TileFloor
		}
	}
}
