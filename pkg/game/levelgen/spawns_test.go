package levelgen

import (
	"math/rand"
	"testing"

	"darkdelve/pkg/game/mapgen"
)

func builtLevel(t *testing.T, seed int64) mapgen.Builder {
	t.Helper()
	b := mapgen.New(mapgen.AlgorithmSimpleRooms, 80, 50, 1, mapgen.Options{})
	b.Build(rand.New(rand.NewSource(seed)))
	return b
}

func TestRollSpawns_IntentsLandOnWalkableTiles(t *testing.T) {
	for _, seed := range []int64{1, 42, 1337} {
		b := builtLevel(t, seed)
		m := b.Map()
		sx, sy := b.StartingPosition()

		intents := RollSpawns(m, b.SpawnRegions(), 1, rand.New(rand.NewSource(seed)))
		for _, intent := range intents {
			if !m.InBounds(intent.X, intent.Y) {
				t.Fatalf("seed %d: intent at (%d,%d) out of bounds", seed, intent.X, intent.Y)
			}
			if !m.TileAt(intent.X, intent.Y).Walkable() {
				t.Errorf("seed %d: intent at (%d,%d) on a wall", seed, intent.X, intent.Y)
			}
			if intent.X == sx && intent.Y == sy {
				t.Errorf("seed %d: intent placed on the starting tile", seed)
			}
			if intent.Kind == "" {
				t.Errorf("seed %d: intent with empty kind", seed)
			}
			if intent.Category != CategoryMonster && intent.Category != CategoryItem {
				t.Errorf("seed %d: unknown category %q", seed, intent.Category)
			}
		}
	}
}

func TestRollSpawns_DistinctTilesWithinRegion(t *testing.T) {
	b := builtLevel(t, 42)
	m := b.Map()

	intents := RollSpawns(m, b.SpawnRegions(), 2, rand.New(rand.NewSource(9)))
	seen := make(map[[2]int]int)
	for _, intent := range intents {
		seen[[2]int{intent.X, intent.Y}]++
	}
	for pos, n := range seen {
		if n > 1 {
			t.Errorf("tile (%d,%d) claimed %d times", pos[0], pos[1], n)
		}
	}
}

func TestRollSpawns_DepthGatesTheTable(t *testing.T) {
	b := builtLevel(t, 7)
	m := b.Map()

	intents := RollSpawns(m, b.SpawnRegions(), 1, rand.New(rand.NewSource(3)))
	for _, intent := range intents {
		switch intent.Kind {
		case "orc", "ogre", "scroll of fireball":
			t.Errorf("%q spawned at depth 1", intent.Kind)
		}
	}
}

func TestRollSpawns_Deterministic(t *testing.T) {
	b := builtLevel(t, 42)
	m := b.Map()

	first := RollSpawns(m, b.SpawnRegions(), 3, rand.New(rand.NewSource(5)))
	second := RollSpawns(m, b.SpawnRegions(), 3, rand.New(rand.NewSource(5)))
	if len(first) != len(second) {
		t.Fatalf("runs produced %d and %d intents", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("intent %d differs between runs", i)
		}
	}
}
