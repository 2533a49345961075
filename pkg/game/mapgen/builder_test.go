package mapgen

import (
	"math/rand"
	"testing"

	"darkdelve/pkg/engine/world"
)

const (
	testWidth  = 80
	testHeight = 50
)

var testSeeds = []int64{1, 7, 42, 1337, 99991}

func buildAll(seed int64, snapshot bool) []Builder {
	opts := Options{Snapshot: snapshot}
	builders := make([]Builder, 0, int(algorithmCount))
	for a := Algorithm(0); a < algorithmCount; a++ {
		b := New(a, testWidth, testHeight, 1, opts)
		b.Build(rand.New(rand.NewSource(seed)))
		builders = append(builders, b)
	}
	return builders
}

func TestBuilders_StartTileIsWalkable(t *testing.T) {
	for _, seed := range testSeeds {
		for _, b := range buildAll(seed, false) {
			m := b.Map()
			x, y := b.StartingPosition()
			if !m.InBounds(x, y) {
				t.Fatalf("%s seed %d: start (%d,%d) out of bounds", b.Name(), seed, x, y)
			}
			if !m.TileAt(x, y).Walkable() {
				t.Errorf("%s seed %d: start (%d,%d) is %v", b.Name(), seed, x, y, m.TileAt(x, y))
			}
		}
	}
}

func TestBuilders_AllFloorReachableFromStart(t *testing.T) {
	for _, seed := range testSeeds {
		for _, b := range buildAll(seed, false) {
			m := b.Map()
			x, y := b.StartingPosition()
			field := world.FloodFill(m, m.Index(x, y))

			for i, tile := range m.Tiles {
				if tile.Walkable() && !field.Reachable(i) {
					cx, cy := m.Coords(i)
					t.Errorf("%s seed %d: walkable tile (%d,%d) unreachable from start",
						b.Name(), seed, cx, cy)
				}
			}
		}
	}
}

func TestBuilders_ExactlyOneReachableDownStairs(t *testing.T) {
	for _, seed := range testSeeds {
		for _, b := range buildAll(seed, false) {
			m := b.Map()
			x, y := b.StartingPosition()
			field := world.FloodFill(m, m.Index(x, y))

			var stairs []int
			for i, tile := range m.Tiles {
				if tile == world.TileDownStairs {
					stairs = append(stairs, i)
				}
			}
			if len(stairs) != 1 {
				t.Fatalf("%s seed %d: %d down stairs, want 1", b.Name(), seed, len(stairs))
			}
			if !field.Reachable(stairs[0]) {
				t.Errorf("%s seed %d: down stairs unreachable from start", b.Name(), seed)
			}
		}
	}
}

func TestBuilders_SameSeedSameTiles(t *testing.T) {
	for _, seed := range testSeeds {
		first := buildAll(seed, false)
		second := buildAll(seed, false)
		for i := range first {
			a, b := first[i].Map(), second[i].Map()
			for idx := range a.Tiles {
				if a.Tiles[idx] != b.Tiles[idx] {
					x, y := a.Coords(idx)
					t.Fatalf("%s seed %d: tile (%d,%d) differs between runs",
						first[i].Name(), seed, x, y)
				}
			}
			ax, ay := first[i].StartingPosition()
			bx, by := second[i].StartingPosition()
			if ax != bx || ay != by {
				t.Errorf("%s seed %d: start differs between runs", first[i].Name(), seed)
			}
		}
	}
}

func TestBuilders_RegionsYieldWalkableNonStartTiles(t *testing.T) {
	for _, seed := range testSeeds {
		for _, b := range buildAll(seed, false) {
			m := b.Map()
			sx, sy := b.StartingPosition()
			start := m.Index(sx, sy)
			rng := rand.New(rand.NewSource(seed))

			regions := b.SpawnRegions()
			if len(regions) == 0 {
				t.Errorf("%s seed %d: no spawn regions", b.Name(), seed)
				continue
			}
			for _, region := range regions {
				if region.Size() == 0 {
					t.Errorf("%s seed %d: empty spawn region", b.Name(), seed)
					continue
				}
				for trial := 0; trial < 10; trial++ {
					idx, ok := region.RandomTile(rng, m)
					if !ok {
						t.Fatalf("%s seed %d: RandomTile failed on non-empty region", b.Name(), seed)
					}
					if !m.Tiles[idx].Walkable() {
						x, y := m.Coords(idx)
						t.Errorf("%s seed %d: region tile (%d,%d) not walkable", b.Name(), seed, x, y)
					}
					if region.Rect == nil && idx == start {
						t.Errorf("%s seed %d: organic region contains the start tile", b.Name(), seed)
					}
				}
			}
		}
	}
}

func TestBuilders_SnapshotHistory(t *testing.T) {
	for _, b := range buildAll(42, true) {
		history := b.SnapshotHistory()
		if len(history) == 0 {
			t.Errorf("%s: no snapshots recorded", b.Name())
			continue
		}
		final := b.Map()
		last := history[len(history)-1]
		for idx := range final.Tiles {
			if final.Tiles[idx] != last.Tiles[idx] {
				t.Errorf("%s: last snapshot does not match the finished map", b.Name())
				break
			}
		}
	}

	for _, b := range buildAll(42, false) {
		if len(b.SnapshotHistory()) != 0 {
			t.Errorf("%s: snapshots recorded while disabled", b.Name())
		}
	}
}

func TestParseAlgorithm_RoundTrip(t *testing.T) {
	for a := Algorithm(0); a < algorithmCount; a++ {
		got, err := ParseAlgorithm(a.String())
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if _, err := ParseAlgorithm("catacombs"); err == nil {
		t.Error("expected an error for an unknown token")
	}
}

func TestRandom_DeterministicSelection(t *testing.T) {
	for seed := int64(0); seed < 16; seed++ {
		first := Random(rand.New(rand.NewSource(seed)), testWidth, testHeight, 1, Options{})
		second := Random(rand.New(rand.NewSource(seed)), testWidth, testHeight, 1, Options{})
		if first.Name() != second.Name() {
			t.Fatalf("seed %d: selected %q then %q", seed, first.Name(), second.Name())
		}

		// A randomly selected builder still honors the common contract.
		first.Build(rand.New(rand.NewSource(seed)))
		x, y := first.StartingPosition()
		if !first.Map().TileAt(x, y).Walkable() {
			t.Errorf("seed %d (%s): start tile not walkable", seed, first.Name())
		}
	}
}
