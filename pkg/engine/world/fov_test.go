package world

import "testing"

// corridorMap carves a single floor row at y across the full interior width.
func corridorMap(width, height, y int) *Map {
	m := NewMap(width, height, 1)
	for x := 1; x < width-1; x++ {
		m.SetTile(x, y, TileFloor)
	}
	return m
}

func visibleSet(m *Map, visible []int) map[int]bool {
	set := make(map[int]bool, len(visible))
	for _, idx := range visible {
		set[idx] = true
	}
	return set
}

func TestComputeFOV_WallBlocksButIsSeen(t *testing.T) {
	m := corridorMap(20, 20, 10)
	m.SetTile(8, 10, TileWall)

	seen := visibleSet(m, ComputeFOV(m, 5, 10, 8))

	if !seen[m.Index(8, 10)] {
		t.Error("the blocking wall itself should be visible")
	}
	if seen[m.Index(9, 10)] {
		t.Error("tile directly behind the wall should be hidden")
	}
	if seen[m.Index(12, 10)] {
		t.Error("tile far behind the wall should be hidden")
	}
	if !seen[m.Index(7, 10)] {
		t.Error("tile in front of the wall should be visible")
	}
}

func TestComputeFOV_RadiusBoundary(t *testing.T) {
	m := corridorMap(20, 20, 10)

	seen := visibleSet(m, ComputeFOV(m, 5, 10, 8))

	if !seen[m.Index(13, 10)] {
		t.Error("tile exactly at the range limit should be visible")
	}
	if seen[m.Index(14, 10)] {
		t.Error("tile one step beyond the range limit should be hidden")
	}
}

func TestComputeFOV_ObserverAlwaysVisible(t *testing.T) {
	m := corridorMap(20, 20, 10)
	seen := visibleSet(m, ComputeFOV(m, 5, 10, 4))
	if !seen[m.Index(5, 10)] {
		t.Error("the observer's own tile should be visible")
	}
}

func TestComputeFOV_RecomputedFromScratch(t *testing.T) {
	m := corridorMap(20, 20, 10)

	first := ComputeFOV(m, 5, 10, 8)
	ApplyVisibility(m, first)

	// Move the observer; nothing from the old position may linger.
	second := ComputeFOV(m, 15, 10, 2)
	ApplyVisibility(m, second)

	if m.Visible[m.Index(5, 10)] {
		t.Error("stale visibility survived a recompute")
	}
	if !m.Revealed[m.Index(5, 10)] {
		t.Error("revealed memory should persist across recomputes")
	}
	if !m.Visible[m.Index(15, 10)] {
		t.Error("new observer tile should be visible")
	}
}
