// Package mapgen provides the interchangeable dungeon generation strategies.
// Every builder carves floor and wall into a fresh world.Map, prunes
// unreachable floor, places exactly one DownStairs tile, and exposes the
// finished map together with a starting position and spawn regions. All
// randomness comes from the injected rand source; the same seed produces a
// byte-identical tile array.
package mapgen

import (
	"math/rand"

	"darkdelve/pkg/engine/world"
)

// Builder is the common contract every generation strategy implements.
// Build mutates the builder's internal map exactly once; the accessors are
// read afterwards and the builder is then discarded.
type Builder interface {
	Build(rng *rand.Rand)
	Map() *world.Map
	StartingPosition() (x, y int)
	SpawnRegions() []Region
	SnapshotHistory() []*world.Map
	Name() string
}

// Region is a pool of reachable, non-start tiles from which entity placement
// may draw. Room builders describe regions as rectangles; organic builders
// carry raw tile indices.
type Region struct {
	Rect  *world.Rect
	Tiles []int
}

// RandomTile picks a uniformly random tile index from the region.
// For rectangular regions the pick is a random interior point.
func (r Region) RandomTile(rng *rand.Rand, m *world.Map) (int, bool) {
	if r.Rect != nil {
		w, h := r.Rect.Width(), r.Rect.Height()
		if w <= 0 || h <= 0 {
			return 0, false
		}
		x := r.Rect.X1 + 1 + rng.Intn(w)
		y := r.Rect.Y1 + 1 + rng.Intn(h)
		return m.Index(x, y), true
	}
	if len(r.Tiles) == 0 {
		return 0, false
	}
	return r.Tiles[rng.Intn(len(r.Tiles))], true
}

// Size returns how many candidate tiles the region holds.
func (r Region) Size() int {
	if r.Rect != nil {
		return r.Rect.Width() * r.Rect.Height()
	}
	return len(r.Tiles)
}

// baseBuilder carries the state shared by every strategy: the in-progress
// map, the chosen start, the accumulated spawn regions and the snapshot
// history. Snapshotting is off unless the caller enables it.
type baseBuilder struct {
	m        *world.Map
	startX   int
	startY   int
	regions  []Region
	history  []*world.Map
	snapshot bool
}

func newBaseBuilder(width, height, depth int, snapshot bool) baseBuilder {
	return baseBuilder{
		m:        world.NewMap(width, height, depth),
		snapshot: snapshot,
	}
}

// Map returns the finished map.
func (b *baseBuilder) Map() *world.Map {
	return b.m
}

// StartingPosition returns the level's start tile.
func (b *baseBuilder) StartingPosition() (int, int) {
	return b.startX, b.startY
}

// SpawnRegions returns the accumulated spawn regions.
func (b *baseBuilder) SpawnRegions() []Region {
	return b.regions
}

// SnapshotHistory returns the generation snapshots, oldest first.
func (b *baseBuilder) SnapshotHistory() []*world.Map {
	return b.history
}

// takeSnapshot appends a full clone of the current map to the history.
// A no-op unless snapshotting was enabled at construction.
func (b *baseBuilder) takeSnapshot() {
	if b.snapshot {
		b.history = append(b.history, b.m.Clone())
	}
}
