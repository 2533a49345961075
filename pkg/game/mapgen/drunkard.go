package mapgen

import (
	"math/rand"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// drunkardDiggerCap bounds the number of diggers spawned when the target
// floor percentage is never reached. A liveness safety net, not a tuning
// knob.
const drunkardDiggerCap = 10000

// DrunkSpawnMode selects where each new digger starts.
type DrunkSpawnMode int

// Spawn modes
const (
	DrunkSpawnStart DrunkSpawnMode = iota
	DrunkSpawnRandomFloor
)

// DrunkardConfig tunes the drunkard's walk.
type DrunkardConfig struct {
	SpawnMode    DrunkSpawnMode
	Lifetime     int     // steps each digger takes before expiring
	FloorPercent float64 // target fraction of the map carved to floor
}

// DrunkardOpenArea carves one large cavern around the start.
func DrunkardOpenArea() DrunkardConfig {
	return DrunkardConfig{SpawnMode: DrunkSpawnStart, Lifetime: 400, FloorPercent: 0.5}
}

// DrunkardOpenHalls spreads diggers across already-carved floor.
func DrunkardOpenHalls() DrunkardConfig {
	return DrunkardConfig{SpawnMode: DrunkSpawnRandomFloor, Lifetime: 400, FloorPercent: 0.5}
}

// DrunkardWindingPassages uses short-lived diggers for narrow tunnels.
func DrunkardWindingPassages() DrunkardConfig {
	return DrunkardConfig{SpawnMode: DrunkSpawnRandomFloor, Lifetime: 100, FloorPercent: 0.4}
}

// DrunkardBuilder carves the level by releasing "drunkards" that random-walk
// the map, turning every visited tile to floor, until the target floor
// percentage is reached or the digger cap trips.
type DrunkardBuilder struct {
	baseBuilder
	config DrunkardConfig
}

// NewDrunkardBuilder creates a drunkard's walk builder for one level.
func NewDrunkardBuilder(width, height, depth int, snapshot bool, config DrunkardConfig) *DrunkardBuilder {
	return &DrunkardBuilder{
		baseBuilder: newBaseBuilder(width, height, depth, snapshot),
		config:      config,
	}
}

// Name returns the algorithm's human-readable name.
func (b *DrunkardBuilder) Name() string {
	return "Drunkard's Walk"
}

// Build carves the level.
func (b *DrunkardBuilder) Build(rng *rand.Rand) {
	m := b.m

	b.startX, b.startY = m.Width/2, m.Height/2
	m.SetTile(b.startX, b.startY, world.TileFloor)

	desired := int(b.config.FloorPercent * float64(len(m.Tiles)))
	diggers := 0

	for countFloor(m) < desired && diggers < drunkardDiggerCap {
		x, y := b.spawnPoint(rng)
		carvedWall := false

		for life := b.config.Lifetime; life > 0; life-- {
			if m.TileAt(x, y) == world.TileWall {
				carvedWall = true
			}
			m.SetTile(x, y, world.TileFloor)

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
		}

		if carvedWall {
			b.takeSnapshot()
		}
		diggers++
	}

	if diggers >= drunkardDiggerCap {
		logger.Log.WithField("floor", countFloor(m)).
			WithField("desired", desired).
			Debug("drunkard digger cap reached")
	}

	b.finishOrganic()
}

// spawnPoint returns the next digger's starting tile: the level start, or a
// uniformly chosen tile of the existing floor.
func (b *DrunkardBuilder) spawnPoint(rng *rand.Rand) (int, int) {
	if b.config.SpawnMode == DrunkSpawnStart {
		return b.startX, b.startY
	}
	var floor []int
	for i, t := range b.m.Tiles {
		if t == world.TileFloor {
			floor = append(floor, i)
		}
	}
	if len(floor) == 0 {
		return b.startX, b.startY
	}
	return b.m.Coords(floor[rng.Intn(len(floor))])
}
