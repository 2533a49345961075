// Package world provides the grid-map spatial core: tile storage, reachability
// analysis, pathfinding and field-of-view. These are engine-level constructs
// usable by any tile-based game; nothing here knows about entities beyond
// opaque occupant identifiers.
package world

// Tile classifies a single map cell.
type Tile uint8

// Tile types
const (
	TileWall Tile = iota
	TileFloor
	TileDownStairs
)

// Walkable returns true if the tile can be stood on.
func (t Tile) Walkable() bool {
	return t == TileFloor || t == TileDownStairs
}

// Opaque returns true if the tile blocks line of sight.
func (t Tile) Opaque() bool {
	return t == TileWall
}

// String returns the tile name for diagnostics.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileDownStairs:
		return "DownStairs"
	default:
		return "Unknown"
	}
}
