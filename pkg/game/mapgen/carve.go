package mapgen

import (
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// Spawn regions produced by organic builders are bucketed into a fixed
// spatial grid of sections so later placement is dispersed across the level.
const (
	sectionColumns = 4
	sectionRows    = 4
)

// applyRoom carves a room's interior into the map. The rectangle's outer
// edge stays wall, so adjacent rooms keep a dividing wall.
func applyRoom(m *world.Map, room world.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.SetTile(x, y, world.TileFloor)
		}
	}
}

// applyHorizontalTunnel carves a 1-wide floor run between two x coordinates.
func applyHorizontalTunnel(m *world.Map, x1, x2, y int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.SetTile(x, y, world.TileFloor)
		}
	}
}

// applyVerticalTunnel carves a 1-wide floor run between two y coordinates.
func applyVerticalTunnel(m *world.Map, y1, y2, x int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.SetTile(x, y, world.TileFloor)
		}
	}
}

// applySteppedCorridor carves a Manhattan corridor one step at a time,
// resolving the x difference before the y difference.
func applySteppedCorridor(m *world.Map, x1, y1, x2, y2 int) {
	x, y := x1, y1
	for x != x2 || y != y2 {
		if x < x2 {
			x++
		} else if x > x2 {
			x--
		} else if y < y2 {
			y++
		} else if y > y2 {
			y--
		}
		if m.InBounds(x, y) {
			m.SetTile(x, y, world.TileFloor)
		}
	}
}

// finishOrganic runs the shared post-carve pipeline of the organic builders:
// flood fill from the start, convert unreachable floor back to wall, place
// the stairs at the farthest reachable tile, and bucket the remaining
// reachable floor into sectioned spawn regions.
func (b *baseBuilder) finishOrganic() {
	startIdx := b.m.Index(b.startX, b.startY)

	field := world.FloodFill(b.m, startIdx)
	culled := 0
	for i, t := range b.m.Tiles {
		if t.Walkable() && !field.Reachable(i) {
			b.m.Tiles[i] = world.TileWall
			culled++
		}
	}
	if culled > 0 {
		logger.Log.WithField("tiles", culled).Debug("culled unreachable floor")
	}
	b.takeSnapshot()

	exitIdx, _ := field.Farthest()
	if exitIdx >= 0 {
		b.m.Tiles[exitIdx] = world.TileDownStairs
	}
	b.takeSnapshot()

	b.regions = sectionedRegions(b.m, field, startIdx)
}

// sectionedRegions partitions reachable, non-start floor tiles into a fixed
// grid of map sections. Empty sections are dropped.
func sectionedRegions(m *world.Map, field *world.DistanceField, startIdx int) []Region {
	buckets := make([][]int, sectionColumns*sectionRows)
	sectionW := (m.Width + sectionColumns - 1) / sectionColumns
	sectionH := (m.Height + sectionRows - 1) / sectionRows

	for i, t := range m.Tiles {
		if i == startIdx || !t.Walkable() || !field.Reachable(i) {
			continue
		}
		x, y := m.Coords(i)
		section := (y/sectionH)*sectionColumns + x/sectionW
		buckets[section] = append(buckets[section], i)
	}

	regions := make([]Region, 0, len(buckets))
	for _, tiles := range buckets {
		if len(tiles) > 0 {
			regions = append(regions, Region{Tiles: tiles})
		}
	}
	return regions
}

// findStartLeftOfCenter scans from the map center toward x=0 and returns the
// first floor tile found. Organic builders use this to anchor the level
// start; the carve step guarantees at least one floor tile exists on the
// center row in practice, but the scan degrades to (1, cy) regardless.
func findStartLeftOfCenter(m *world.Map) (int, int) {
	cy := m.Height / 2
	for x := m.Width / 2; x > 0; x-- {
		if m.TileAt(x, cy).Walkable() {
			return x, cy
		}
	}
	return 1, cy
}

// countFloor returns the number of walkable tiles.
func countFloor(m *world.Map) int {
	n := 0
	for _, t := range m.Tiles {
		if t.Walkable() {
			n++
		}
	}
	return n
}
