package mapgen

import (
	"math/rand"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// Cellular automata tuning.
const (
	cellularFloorChance = 55 // initial fill, percent floor
	cellularIterations  = 15
)

// CellularAutomataBuilder grows organic caves: a noisy random fill smoothed
// by repeated application of a majority rule.
type CellularAutomataBuilder struct {
	baseBuilder
}

// NewCellularAutomataBuilder creates a cellular automata builder for one level.
func NewCellularAutomataBuilder(width, height, depth int, snapshot bool) *CellularAutomataBuilder {
	return &CellularAutomataBuilder{baseBuilder: newBaseBuilder(width, height, depth, snapshot)}
}

// Name returns the algorithm's human-readable name.
func (b *CellularAutomataBuilder) Name() string {
	return "Cellular Automata"
}

// Build carves the level.
func (b *CellularAutomataBuilder) Build(rng *rand.Rand) {
	m := b.m

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if rng.Intn(100) < cellularFloorChance {
				m.SetTile(x, y, world.TileFloor)
			} else {
				m.SetTile(x, y, world.TileWall)
			}
		}
	}
	b.takeSnapshot()

	for i := 0; i < cellularIterations; i++ {
		b.iterate()
		b.takeSnapshot()
	}

	b.startX, b.startY = findStartLeftOfCenter(m)
	logger.Log.WithField("floor", countFloor(m)).Debug("cellular automata settled")

	b.finishOrganic()
}

// iterate applies one step of the majority rule: a cell becomes wall when
// more than four of its eight neighbors are walls, or when it is completely
// isolated (zero wall neighbors); otherwise it becomes floor. Out-of-bounds
// neighbors count as walls.
func (b *CellularAutomataBuilder) iterate() {
	m := b.m
	next := append([]world.Tile(nil), m.Tiles...)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			walls := countWallNeighbors(m, x, y)
			idx := m.Index(x, y)
			if walls > 4 || walls == 0 {
				next[idx] = world.TileWall
			} else {
				next[idx] = world.TileFloor
			}
		}
	}

	m.Tiles = next
}

// countWallNeighbors counts the wall tiles among a cell's 8 neighbors,
// treating out-of-bounds cells as walls.
func countWallNeighbors(m *world.Map, x, y int) int {
	walls := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !m.InBounds(nx, ny) || m.TileAt(nx, ny) == world.TileWall {
				walls++
			}
		}
	}
	return walls
}
