package world

// Wall-mask bits, one per cardinal neighbor.
const (
	MaskNorth = 1
	MaskSouth = 2
	MaskWest  = 4
	MaskEast  = 8
)

// WallMask computes the 4-bit connection bitmask for the wall at (x, y).
// A bit is set when the cardinal neighbor in that direction is itself a wall
// that borders at least one floor tile, so interior walls buried in solid
// rock do not sprout connections. Out-of-bounds neighbors contribute nothing.
func (m *Map) WallMask(x, y int) int {
	mask := 0
	if m.wallFacesFloor(x, y-1) {
		mask |= MaskNorth
	}
	if m.wallFacesFloor(x, y+1) {
		mask |= MaskSouth
	}
	if m.wallFacesFloor(x-1, y) {
		mask |= MaskWest
	}
	if m.wallFacesFloor(x+1, y) {
		mask |= MaskEast
	}
	return mask
}

// wallFacesFloor reports whether (x, y) is a wall with at least one walkable
// neighbor.
func (m *Map) wallFacesFloor(x, y int) bool {
	if !m.InBounds(x, y) || m.TileAt(x, y) != TileWall {
		return false
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if m.InBounds(nx, ny) && m.TileAt(nx, ny).Walkable() {
				return true
			}
		}
	}
	return false
}

// WallGlyph maps a 4-bit wall connection mask to its box-drawing rune.
// Pure function; rendering is the only consumer.
func WallGlyph(mask int) rune {
	switch mask {
	case 0:
		return '○' // isolated pillar
	case MaskNorth, MaskSouth, MaskNorth | MaskSouth:
		return '│'
	case MaskWest, MaskEast, MaskWest | MaskEast:
		return '─'
	case MaskNorth | MaskWest:
		return '┘'
	case MaskSouth | MaskWest:
		return '┐'
	case MaskNorth | MaskSouth | MaskWest:
		return '┤'
	case MaskNorth | MaskEast:
		return '└'
	case MaskSouth | MaskEast:
		return '┌'
	case MaskNorth | MaskSouth | MaskEast:
		return '├'
	case MaskNorth | MaskWest | MaskEast:
		return '┴'
	case MaskSouth | MaskWest | MaskEast:
		return '┬'
	default:
		return '┼'
	}
}
