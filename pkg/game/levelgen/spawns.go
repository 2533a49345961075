// Package levelgen turns the spawn regions emitted by map builders into
// data-only spawn intents. No entity is instantiated here; an external
// factory consumes the intents and owns the entity runtime.
package levelgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/mapgen"
	"darkdelve/pkg/logger"
)

// Category tags what an intent asks the external spawner to create.
type Category string

// Spawn categories
const (
	CategoryMonster Category = "monster"
	CategoryItem    Category = "item"
)

// SpawnIntent is one placement request: a map position plus what belongs
// there. Positions are always drawn from a builder's spawn regions, so they
// are reachable and never the starting tile.
type SpawnIntent struct {
	X        int
	Y        int
	Category Category
	Kind     string
}

// spawnEntry is one weighted row of a spawn table.
type spawnEntry struct {
	kind     Category
	name     string
	weight   int
	minDepth int
}

// spawnTable mirrors the classic depth-scaled bestiary: weak monsters fade
// and stronger ones grow more likely as the depth counter climbs.
var spawnTable = []spawnEntry{
	{kind: CategoryMonster, name: "goblin", weight: 10, minDepth: 1},
	{kind: CategoryMonster, name: "orc", weight: 3, minDepth: 2},
	{kind: CategoryMonster, name: "ogre", weight: 1, minDepth: 4},
	{kind: CategoryItem, name: "health potion", weight: 7, minDepth: 1},
	{kind: CategoryItem, name: "scroll of zap", weight: 4, minDepth: 1},
	{kind: CategoryItem, name: "scroll of fireball", weight: 2, minDepth: 3},
	{kind: CategoryItem, name: "ration", weight: 6, minDepth: 1},
}

// maxSpawnsPerRegion bounds how crowded a single region may get before the
// depth bonus.
const maxSpawnsPerRegion = 4

// RollSpawns samples every spawn region and returns the resulting intents.
// Each region yields a depth-scaled number of placements on distinct tiles;
// regions too small for their roll simply yield fewer.
func RollSpawns(m *world.Map, regions []mapgen.Region, depth int, rng *rand.Rand) []SpawnIntent {
	var intents []SpawnIntent

	for _, region := range regions {
		count := rng.Intn(maxSpawnsPerRegion+depth) - 1
		if count <= 0 {
			continue
		}
		if count > region.Size() {
			count = region.Size()
		}

		used := mapset.New[int]()
		for placed := 0; placed < count; placed++ {
			idx, ok := pickFreeTile(region, m, rng, used)
			if !ok {
				break
			}
			used.Put(idx)

			entry := rollTable(rng, depth)
			x, y := m.Coords(idx)
			intents = append(intents, SpawnIntent{
				X:        x,
				Y:        y,
				Category: entry.kind,
				Kind:     entry.name,
			})
		}
	}

	logger.Log.WithField("intents", len(intents)).
		WithField("depth", depth).
		Debug("spawn intents rolled")
	return intents
}

// pickFreeTile samples the region for a walkable tile not already claimed
// this pass. Bounded retries; crowded regions give up quietly.
func pickFreeTile(region mapgen.Region, m *world.Map, rng *rand.Rand, used mapset.Set[int]) (int, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		idx, ok := region.RandomTile(rng, m)
		if !ok {
			return 0, false
		}
		if used.Has(idx) || !m.Tiles[idx].Walkable() {
			continue
		}
		return idx, true
	}
	return 0, false
}

// rollTable makes one weighted pick among the entries unlocked at this
// depth.
func rollTable(rng *rand.Rand, depth int) spawnEntry {
	total := 0
	for _, e := range spawnTable {
		if e.minDepth <= depth {
			total += e.weight
		}
	}
	if total == 0 {
		return spawnTable[0]
	}
	roll := rng.Intn(total)
	for _, e := range spawnTable {
		if e.minDepth > depth {
			continue
		}
		if roll < e.weight {
			return e
		}
		roll -= e.weight
	}
	return spawnTable[0]
}
