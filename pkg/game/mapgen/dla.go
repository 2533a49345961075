package mapgen

import (
	"math/rand"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// dlaParticleCap bounds the number of particles released when the target
// floor percentage is never reached.
const dlaParticleCap = 50000

// DLAAlgorithm selects the diffusion-limited aggregation variant.
type DLAAlgorithm int

// DLA variants
const (
	DLAWalkInwards DLAAlgorithm = iota
	DLAWalkOutwards
	DLACentralAttractor
)

// Symmetry mirrors every paint operation across the map's axes.
type Symmetry int

// Symmetry modes
const (
	SymmetryNone Symmetry = iota
	SymmetryHorizontal
	SymmetryVertical
	SymmetryBoth
)

// DLAConfig tunes diffusion-limited aggregation.
type DLAConfig struct {
	Algorithm    DLAAlgorithm
	BrushSize    int
	Symmetry     Symmetry
	FloorPercent float64
}

// DLAInward grows the floor mass by particles walking in from random points.
func DLAInward() DLAConfig {
	return DLAConfig{Algorithm: DLAWalkInwards, BrushSize: 1, Symmetry: SymmetryNone, FloorPercent: 0.25}
}

// DLAOutward grows the floor mass by particles escaping it.
func DLAOutward() DLAConfig {
	return DLAConfig{Algorithm: DLAWalkOutwards, BrushSize: 2, Symmetry: SymmetryNone, FloorPercent: 0.25}
}

// DLAAttractor pulls particles along straight lines toward the map center.
func DLAAttractor() DLAConfig {
	return DLAConfig{Algorithm: DLACentralAttractor, BrushSize: 2, Symmetry: SymmetryNone, FloorPercent: 0.25}
}

// DLAInsectoid is the attractor variant mirrored across the vertical axis,
// producing roughly bilateral cave bodies.
func DLAInsectoid() DLAConfig {
	return DLAConfig{Algorithm: DLACentralAttractor, BrushSize: 2, Symmetry: SymmetryHorizontal, FloorPercent: 0.25}
}

// DLABuilder carves the level by diffusion-limited aggregation: particles
// wander until they interact with the existing floor mass, painting floor
// where they stop.
type DLABuilder struct {
	baseBuilder
	config DLAConfig
}

// NewDLABuilder creates a DLA builder for one level.
func NewDLABuilder(width, height, depth int, snapshot bool, config DLAConfig) *DLABuilder {
	return &DLABuilder{
		baseBuilder: newBaseBuilder(width, height, depth, snapshot),
		config:      config,
	}
}

// Name returns the algorithm's human-readable name.
func (b *DLABuilder) Name() string {
	return "Diffusion-Limited Aggregation"
}

// Build carves the level.
func (b *DLABuilder) Build(rng *rand.Rand) {
	m := b.m

	b.startX, b.startY = m.Width/2, m.Height/2
	startIdx := m.Index(b.startX, b.startY)

	// Seed the aggregate with a small plus shape so particles have
	// something to stick to.
	m.Tiles[startIdx] = world.TileFloor
	m.Tiles[startIdx-1] = world.TileFloor
	m.Tiles[startIdx+1] = world.TileFloor
	m.Tiles[startIdx-m.Width] = world.TileFloor
	m.Tiles[startIdx+m.Width] = world.TileFloor
	b.takeSnapshot()

	desired := int(b.config.FloorPercent * float64(len(m.Tiles)))
	particles := 0

	for countFloor(m) < desired && particles < dlaParticleCap {
		switch b.config.Algorithm {
		case DLAWalkInwards:
			b.walkInwards(rng)
		case DLAWalkOutwards:
			b.walkOutwards(rng)
		case DLACentralAttractor:
			b.centralAttractor(rng)
		}
		particles++
		if particles%50 == 0 {
			b.takeSnapshot()
		}
	}

	if particles >= dlaParticleCap {
		logger.Log.WithField("floor", countFloor(m)).Debug("dla particle cap reached")
	}

	b.finishOrganic()
}

// walkInwards releases a particle at a random point and random-walks it
// until it touches existing floor, painting at its immediately prior
// position.
func (b *DLABuilder) walkInwards(rng *rand.Rand) {
	m := b.m
	x := rng.Intn(m.Width-3) + 1
	y := rng.Intn(m.Height-3) + 1
	prevX, prevY := x, y
	for m.TileAt(x, y) == world.TileWall {
		prevX, prevY = x, y
		x, y = stagger(m, rng, x, y)
	}
	b.paint(prevX, prevY)
}

// walkOutwards releases a particle inside the floor mass and random-walks it
// until it leaves, painting at the exit point.
func (b *DLABuilder) walkOutwards(rng *rand.Rand) {
	m := b.m
	x, y := b.startX, b.startY
	for m.TileAt(x, y) == world.TileFloor {
		x, y = stagger(m, rng, x, y)
	}
	b.paint(x, y)
}

// centralAttractor releases a particle at a random point and steps it along
// the rasterized line toward the map center, painting at the last wall cell
// before existing floor. When the particle spawns on floor already, the
// paint lands on its start point; that fallback is long-standing behavior
// and kept as is.
func (b *DLABuilder) centralAttractor(rng *rand.Rand) {
	m := b.m
	x := rng.Intn(m.Width-3) + 1
	y := rng.Intn(m.Height-3) + 1
	prevX, prevY := x, y

	path := world.Line(x, y, b.startX, b.startY)
	for i := 0; i < len(path) && m.TileAt(x, y) == world.TileWall; i++ {
		prevX, prevY = x, y
		x, y = path[i][0], path[i][1]
	}
	b.paint(prevX, prevY)
}

// stagger takes one random cardinal step, clamped inside the map border.
func stagger(m *world.Map, rng *rand.Rand, x, y int) (int, int) {
	switch rng.Intn(4) {
	case 0:
		if x > 2 {
			x--
		}
	case 1:
		if x < m.Width-2 {
			x++
		}
	case 2:
		if y > 2 {
			y--
		}
	case 3:
		if y < m.Height-2 {
			y++
		}
	}
	return x, y
}

// paint applies the brush at (x, y), duplicated across the configured
// mirror axes.
func (b *DLABuilder) paint(x, y int) {
	m := b.m
	switch b.config.Symmetry {
	case SymmetryNone:
		b.applyBrush(x, y)
	case SymmetryHorizontal:
		centerX := m.Width / 2
		if x == centerX {
			b.applyBrush(x, y)
		} else {
			d := abs(centerX - x)
			b.applyBrush(centerX+d, y)
			b.applyBrush(centerX-d, y)
		}
	case SymmetryVertical:
		centerY := m.Height / 2
		if y == centerY {
			b.applyBrush(x, y)
		} else {
			d := abs(centerY - y)
			b.applyBrush(x, centerY+d)
			b.applyBrush(x, centerY-d)
		}
	case SymmetryBoth:
		centerX := m.Width / 2
		centerY := m.Height / 2
		if x == centerX && y == centerY {
			b.applyBrush(x, y)
		} else {
			dx := abs(centerX - x)
			b.applyBrush(centerX+dx, y)
			b.applyBrush(centerX-dx, y)
			dy := abs(centerY - y)
			b.applyBrush(x, centerY+dy)
			b.applyBrush(x, centerY-dy)
		}
	}
}

// applyBrush carves floor in a brush-sized box centered on (x, y), skipping
// anything outside the map border.
func (b *DLABuilder) applyBrush(x, y int) {
	m := b.m
	if b.config.BrushSize <= 1 {
		if m.InBounds(x, y) {
			m.SetTile(x, y, world.TileFloor)
		}
		return
	}
	half := b.config.BrushSize / 2
	for by := y - half; by <= y+half; by++ {
		for bx := x - half; bx <= x+half; bx++ {
			if bx > 1 && bx < m.Width-1 && by > 1 && by < m.Height-1 {
				m.SetTile(bx, by, world.TileFloor)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
