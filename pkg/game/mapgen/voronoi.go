package mapgen

import (
	"math"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// VoronoiMetric selects the distance function used both for region
// membership and for the nearest-seed corridor graph.
type VoronoiMetric int

// Distance metrics
const (
	MetricEuclidean VoronoiMetric = iota
	MetricManhattan
	MetricChebyshev
)

// VoronoiConfig tunes the Voronoi cell builder.
type VoronoiConfig struct {
	Seeds  int
	Metric VoronoiMetric
}

// DefaultVoronoiConfig scatters 64 seeds under the Euclidean metric.
func DefaultVoronoiConfig() VoronoiConfig {
	return VoronoiConfig{Seeds: 64, Metric: MetricEuclidean}
}

// VoronoiBuilder partitions the map into seed regions, walls the borders
// between regions, and links every seed to its two nearest neighbors with
// stepped corridors.
type VoronoiBuilder struct {
	baseBuilder
	config VoronoiConfig
}

// NewVoronoiBuilder creates a Voronoi cell builder for one level.
func NewVoronoiBuilder(width, height, depth int, snapshot bool, config VoronoiConfig) *VoronoiBuilder {
	return &VoronoiBuilder{
		baseBuilder: newBaseBuilder(width, height, depth, snapshot),
		config:      config,
	}
}

// Name returns the algorithm's human-readable name.
func (b *VoronoiBuilder) Name() string {
	return "Voronoi Cells"
}

// Build carves the level.
func (b *VoronoiBuilder) Build(rng *rand.Rand) {
	m := b.m

	seeds := b.scatterSeeds(rng)
	membership := b.classify(seeds)

	// Region borders become wall; interiors become floor. Tiles on the map
	// edge stay wall.
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			mine := membership[m.Index(x, y)]
			border := false
			for dy := -1; dy <= 1 && !border; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !m.InBounds(nx, ny) {
						continue
					}
					if membership[m.Index(nx, ny)] != mine {
						border = true
						break
					}
				}
			}
			if border {
				m.SetTile(x, y, world.TileWall)
			} else {
				m.SetTile(x, y, world.TileFloor)
			}
		}
	}
	b.takeSnapshot()

	// Link every seed to its two nearest neighbors so the regions form one
	// traversable body.
	for i, seed := range seeds {
		for _, n := range b.nearestSeeds(seeds, i, 2) {
			applySteppedCorridor(m, seed[0], seed[1], seeds[n][0], seeds[n][1])
		}
	}
	b.takeSnapshot()

	b.startX, b.startY = findStartNearCenter(m)
	logger.Log.WithField("seeds", len(seeds)).Debug("voronoi cells carved")

	b.finishOrganic()
}

// scatterSeeds places the configured number of unique random seed points.
func (b *VoronoiBuilder) scatterSeeds(rng *rand.Rand) [][2]int {
	m := b.m
	used := mapset.New[int]()
	seeds := make([][2]int, 0, b.config.Seeds)
	for len(seeds) < b.config.Seeds {
		x := 1 + rng.Intn(m.Width-2)
		y := 1 + rng.Intn(m.Height-2)
		idx := m.Index(x, y)
		if used.Has(idx) {
			continue
		}
		used.Put(idx)
		seeds = append(seeds, [2]int{x, y})
	}
	return seeds
}

// classify assigns every tile to its nearest seed; ties go to the
// lowest-numbered seed.
func (b *VoronoiBuilder) classify(seeds [][2]int) []int {
	m := b.m
	membership := make([]int, len(m.Tiles))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			nearest, nearestDist := 0, math.MaxFloat64
			for i, seed := range seeds {
				d := b.distance(x, y, seed[0], seed[1])
				if d < nearestDist {
					nearest, nearestDist = i, d
				}
			}
			membership[m.Index(x, y)] = nearest
		}
	}
	return membership
}

// nearestSeeds returns the indices of the count seeds closest to seed i,
// excluding itself. Ties resolve to the lower index.
func (b *VoronoiBuilder) nearestSeeds(seeds [][2]int, i, count int) []int {
	type candidate struct {
		idx  int
		dist float64
	}
	candidates := make([]candidate, 0, len(seeds)-1)
	for j, seed := range seeds {
		if j == i {
			continue
		}
		candidates = append(candidates, candidate{
			idx:  j,
			dist: b.distance(seeds[i][0], seeds[i][1], seed[0], seed[1]),
		})
	}
	sort.Slice(candidates, func(a, c int) bool {
		if candidates[a].dist != candidates[c].dist {
			return candidates[a].dist < candidates[c].dist
		}
		return candidates[a].idx < candidates[c].idx
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	result := make([]int, count)
	for k := 0; k < count; k++ {
		result[k] = candidates[k].idx
	}
	return result
}

// distance applies the configured metric.
func (b *VoronoiBuilder) distance(x1, y1, x2, y2 int) float64 {
	dx := float64(abs(x1 - x2))
	dy := float64(abs(y1 - y2))
	switch b.config.Metric {
	case MetricManhattan:
		return dx + dy
	case MetricChebyshev:
		return math.Max(dx, dy)
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// findStartNearCenter returns the map center, or the nearest walkable tile
// found by an expanding ring search when the center itself is wall.
func findStartNearCenter(m *world.Map) (int, int) {
	cx, cy := m.Width/2, m.Height/2
	if m.TileAt(cx, cy).Walkable() {
		return cx, cy
	}
	maxRing := m.Width
	if m.Height > maxRing {
		maxRing = m.Height
	}
	for ring := 1; ring < maxRing; ring++ {
		for dy := -ring; dy <= ring; dy++ {
			for dx := -ring; dx <= ring; dx++ {
				if abs(dx) != ring && abs(dy) != ring {
					continue
				}
				x, y := cx+dx, cy+dy
				if m.InBounds(x, y) && m.TileAt(x, y).Walkable() {
					return x, y
				}
			}
		}
	}
	return cx, cy
}
