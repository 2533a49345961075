package world

import (
	"github.com/zyedidia/generic/mapset"
)

// EntityID identifies an occupant of a tile. The entity runtime that owns the
// identifiers lives outside this package; the map only indexes them.
type EntityID uint64

// Exit is one traversable neighbor of a tile, with its movement cost.
type Exit struct {
	Idx  int
	Cost float64
}

// Movement costs for the 8-connected grid.
const (
	CardinalCost = 1.0
	DiagonalCost = 1.45
)

// Map is the canonical spatial data structure for one dungeon level.
// All per-tile state lives in flat, row-major parallel slices of length
// Width*Height; Index is the single source of truth for the arithmetic.
// A Map is exclusively owned by its builder during generation and read-only
// to pathfinding and visibility queries afterwards.
type Map struct {
	Width  int
	Height int
	Depth  int

	Tiles       []Tile
	Revealed    []bool
	Visible     []bool
	Blocked     []bool
	TileContent [][]EntityID
	Bloodstains mapset.Set[int]
}

// NewMap creates an all-wall map of the given dimensions.
func NewMap(width, height, depth int) *Map {
	n := width * height
	return &Map{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Tiles:       make([]Tile, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]EntityID, n),
		Bloodstains: mapset.New[int](),
	}
}

// Index converts map coordinates to a tile index.
// Precondition: 0 <= x < Width and 0 <= y < Height. Callers on hot paths
// bounds-check before calling; use InBounds when the coordinate is untrusted.
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// Coords converts a tile index back to map coordinates.
func (m *Map) Coords(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether (x, y) is a valid map coordinate.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at (x, y).
func (m *Map) TileAt(x, y int) Tile {
	return m.Tiles[m.Index(x, y)]
}

// SetTile writes the tile at (x, y).
func (m *Map) SetTile(x, y int, t Tile) {
	m.Tiles[m.Index(x, y)] = t
}

// neighborOffsets lists the 8 exit directions with their costs.
// Cardinals first, then diagonals.
var neighborOffsets = []struct {
	dx, dy int
	cost   float64
}{
	{-1, 0, CardinalCost},
	{1, 0, CardinalCost},
	{0, -1, CardinalCost},
	{0, 1, CardinalCost},
	{-1, -1, DiagonalCost},
	{1, -1, DiagonalCost},
	{-1, 1, DiagonalCost},
	{1, 1, DiagonalCost},
}

// Exits enumerates the traversable neighbors of a tile. With entityAware set,
// tiles whose Blocked bit is on (walls plus live occupants) are excluded;
// without it only wall tiles are excluded, so AI planning does not treat
// other agents as obstacles.
func (m *Map) Exits(idx int, entityAware bool) []Exit {
	x, y := m.Coords(idx)
	exits := make([]Exit, 0, 8)
	for _, n := range neighborOffsets {
		nx, ny := x+n.dx, y+n.dy
		if !m.InBounds(nx, ny) {
			continue
		}
		nidx := m.Index(nx, ny)
		if entityAware {
			if m.Blocked[nidx] {
				continue
			}
		} else if m.Tiles[nidx] == TileWall {
			continue
		}
		exits = append(exits, Exit{Idx: nidx, Cost: n.cost})
	}
	return exits
}

// PathingDistance returns the Chebyshev distance between two tiles.
// It guides A* only; it is never used for cost accounting.
func (m *Map) PathingDistance(a, b int) float64 {
	ax, ay := m.Coords(a)
	bx, by := m.Coords(b)
	dx := abs(ax - bx)
	dy := abs(ay - by)
	if dx > dy {
		return float64(dx)
	}
	return float64(dy)
}

// PopulateBlocked recomputes the Blocked bitmap from tile classifications.
// Entity occupancy is layered on afterwards by the external indexer via
// SetBlocked.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = !t.Walkable()
	}
}

// SetBlocked marks or clears live occupancy on a tile.
func (m *Map) SetBlocked(idx int, blocked bool) {
	m.Blocked[idx] = blocked
}

// ClearContent empties the per-tile occupant index. The external runtime
// calls this at the start of every indexing cycle, then re-adds occupants.
func (m *Map) ClearContent() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// AddContent records an occupant on a tile.
func (m *Map) AddContent(idx int, id EntityID) {
	m.TileContent[idx] = append(m.TileContent[idx], id)
}

// Clone returns a deep copy of the map. Used by builders to snapshot
// generation history; the clone shares no storage with the original.
func (m *Map) Clone() *Map {
	c := &Map{
		Width:       m.Width,
		Height:      m.Height,
		Depth:       m.Depth,
		Tiles:       append([]Tile(nil), m.Tiles...),
		Revealed:    append([]bool(nil), m.Revealed...),
		Visible:     append([]bool(nil), m.Visible...),
		Blocked:     append([]bool(nil), m.Blocked...),
		TileContent: make([][]EntityID, len(m.TileContent)),
		Bloodstains: mapset.New[int](),
	}
	for i, ids := range m.TileContent {
		if len(ids) > 0 {
			c.TileContent[i] = append([]EntityID(nil), ids...)
		}
	}
	m.Bloodstains.Each(func(idx int) {
		c.Bloodstains.Put(idx)
	})
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
