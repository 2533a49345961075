package world

import "testing"

func TestFindPath_StraightCorridor(t *testing.T) {
	m := corridorMap(12, 5, 2)
	m.PopulateBlocked()
	start, goal := m.Index(1, 2), m.Index(10, 2)

	path, ok := FindPath(m, start, goal, true)
	if !ok {
		t.Fatal("no path found in a straight corridor")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Error("path does not run start to goal")
	}

	// With no blocking entities, the step count matches the flood-fill
	// shortest distance under an unweighted comparison.
	field := FloodFill(m, start)
	if got, want := len(path)-1, int(field.Values[goal]); got != want {
		t.Errorf("path has %d steps, flood fill says %d", got, want)
	}
}

func TestFindPath_StepsAreAdjacent(t *testing.T) {
	m := openMap(15, 15)
	m.PopulateBlocked()

	path, ok := FindPath(m, m.Index(1, 1), m.Index(13, 8), true)
	if !ok {
		t.Fatal("no path found in an open room")
	}
	for i := 1; i < len(path); i++ {
		ax, ay := m.Coords(path[i-1])
		bx, by := m.Coords(path[i])
		if abs(ax-bx) > 1 || abs(ay-by) > 1 {
			t.Fatalf("path jumps from (%d,%d) to (%d,%d)", ax, ay, bx, by)
		}
	}
}

func TestFindPath_NoPathBetweenDisconnectedTiles(t *testing.T) {
	m := corridorMap(12, 5, 2)
	m.SetTile(6, 2, TileWall)
	m.PopulateBlocked()

	if _, ok := FindPath(m, m.Index(1, 2), m.Index(10, 2), true); ok {
		t.Error("found a path across a severed corridor")
	}
}

func TestFindPath_EntityAwareDetour(t *testing.T) {
	m := openMap(8, 8)
	m.PopulateBlocked()
	// A standing entity in the straight line between start and goal.
	occupied := m.Index(3, 3)
	m.SetBlocked(occupied, true)

	aware, ok := FindPath(m, m.Index(1, 1), m.Index(6, 6), true)
	if !ok {
		t.Fatal("occupied tile should force a detour, not a dead end")
	}
	for _, idx := range aware {
		if idx == occupied {
			t.Error("entity-aware path passes through an occupied tile")
		}
	}

	planning, ok := FindPath(m, m.Index(1, 1), m.Index(6, 6), false)
	if !ok {
		t.Fatal("planning path should exist")
	}
	// Planning mode ignores occupancy entirely; the direct diagonal runs
	// straight through the occupied tile.
	direct := false
	for _, idx := range planning {
		if idx == occupied {
			direct = true
		}
	}
	if !direct {
		t.Error("planning path should ignore occupancy and take the diagonal")
	}
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	m := openMap(5, 5)
	m.PopulateBlocked()
	idx := m.Index(2, 2)
	path, ok := FindPath(m, idx, idx, true)
	if !ok || len(path) != 1 || path[0] != idx {
		t.Errorf("degenerate path = %v ok=%v, want [%d] true", path, ok, idx)
	}
}
