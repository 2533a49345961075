package world

import "testing"

func TestFloodFill_UniformStepCosts(t *testing.T) {
	m := corridorMap(10, 5, 2)

	field := FloodFill(m, m.Index(1, 2))

	for x := 1; x < 9; x++ {
		want := float64(x - 1)
		if got := field.Values[m.Index(x, 2)]; got != want {
			t.Errorf("distance at x=%d is %v, want %v", x, got, want)
		}
	}
}

func TestFloodFill_DiagonalCostsOneStep(t *testing.T) {
	m := openMap(6, 6)

	field := FloodFill(m, m.Index(1, 1))

	// The flood fill is 8-connected with uniform cost, so the far corner
	// of the open interior is reachable in Chebyshev distance steps.
	if got := field.Values[m.Index(4, 4)]; got != 3 {
		t.Errorf("diagonal distance = %v, want 3", got)
	}
}

func TestFloodFill_UnreachableSentinel(t *testing.T) {
	m := corridorMap(12, 5, 2)
	// Sever the corridor; tiles beyond the cut are unreachable.
	m.SetTile(6, 2, TileWall)

	field := FloodFill(m, m.Index(1, 2))

	if field.Reachable(m.Index(8, 2)) {
		t.Error("tile beyond the cut should be unreachable")
	}
	if field.Values[m.Index(8, 2)] != Unreachable {
		t.Error("unreachable tile should carry the sentinel distance")
	}
	if !field.Reachable(m.Index(5, 2)) {
		t.Error("tile before the cut should be reachable")
	}
	if field.Reachable(m.Index(6, 2)) {
		t.Error("walls are never reachable")
	}
}

func TestFloodFill_MultiSource(t *testing.T) {
	m := corridorMap(12, 5, 2)

	field := FloodFill(m, m.Index(1, 2), m.Index(10, 2))

	// The middle tile is equidistant from both sources.
	if got := field.Values[m.Index(5, 2)]; got != 4 {
		t.Errorf("multi-source distance = %v, want 4", got)
	}
	if field.Values[m.Index(10, 2)] != 0 {
		t.Error("second source should sit at distance 0")
	}
}

func TestFarthest_PicksMaximumFiniteDistance(t *testing.T) {
	m := corridorMap(12, 5, 2)

	field := FloodFill(m, m.Index(1, 2))
	idx, dist := field.Farthest()

	if idx != m.Index(10, 2) {
		x, y := m.Coords(idx)
		t.Errorf("farthest tile = (%d,%d), want (10,2)", x, y)
	}
	if dist != 9 {
		t.Errorf("farthest distance = %v, want 9", dist)
	}
}
