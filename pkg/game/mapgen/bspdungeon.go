package mapgen

import (
	"math/rand"
	"sort"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// bspRoomBudget caps the number of placement attempts, not accepted rooms;
// rejections burn budget too, so sparse levels are an accepted outcome.
const bspRoomBudget = 240

// BSPDungeonBuilder places rooms by recursively quartering the map into
// candidate partitions, carving random sub-rectangles where a padded probe
// finds only wall, and joining the rooms left-to-right with stepped
// corridors.
type BSPDungeonBuilder struct {
	baseBuilder
	rects []world.Rect
	rooms []world.Rect
}

// NewBSPDungeonBuilder creates a BSP dungeon builder for one level.
func NewBSPDungeonBuilder(width, height, depth int, snapshot bool) *BSPDungeonBuilder {
	return &BSPDungeonBuilder{baseBuilder: newBaseBuilder(width, height, depth, snapshot)}
}

// Name returns the algorithm's human-readable name.
func (b *BSPDungeonBuilder) Name() string {
	return "BSP Dungeon"
}

// Build carves the level.
func (b *BSPDungeonBuilder) Build(rng *rand.Rand) {
	m := b.m

	b.rects = b.rects[:0]
	seed := world.Rect{X1: 2, Y1: 2, X2: m.Width - 5, Y2: m.Height - 5}
	b.rects = append(b.rects, seed)
	b.addSubrects(seed)

	for attempt := 0; attempt < bspRoomBudget; attempt++ {
		parent := b.rects[rng.Intn(len(b.rects))]
		candidate := b.randomSubRect(parent, rng)
		if !b.roomFits(candidate) {
			continue
		}
		applyRoom(m, candidate)
		b.rooms = append(b.rooms, candidate)
		b.addSubrects(parent)
		b.takeSnapshot()
	}

	logger.Log.WithField("rooms", len(b.rooms)).Debug("bsp dungeon carved")

	if len(b.rooms) == 0 {
		fallback := world.NewRect(m.Width/2-3, m.Height/2-3, 6, 6)
		applyRoom(m, fallback)
		b.rooms = append(b.rooms, fallback)
	}

	sort.Slice(b.rooms, func(i, j int) bool {
		return b.rooms[i].X1 < b.rooms[j].X1
	})

	for i := 0; i+1 < len(b.rooms); i++ {
		room, next := b.rooms[i], b.rooms[i+1]
		startX := room.X1 + 1 + rng.Intn(max(1, room.Width()))
		startY := room.Y1 + 1 + rng.Intn(max(1, room.Height()))
		endX := next.X1 + 1 + rng.Intn(max(1, next.Width()))
		endY := next.Y1 + 1 + rng.Intn(max(1, next.Height()))
		applySteppedCorridor(m, startX, startY, endX, endY)
		b.takeSnapshot()
	}

	b.startX, b.startY = b.rooms[0].Center()

	exitX, exitY := b.rooms[len(b.rooms)-1].Center()
	m.SetTile(exitX, exitY, world.TileDownStairs)
	b.takeSnapshot()

	for i := 1; i < len(b.rooms); i++ {
		room := b.rooms[i]
		b.regions = append(b.regions, Region{Rect: &room})
	}
}

// addSubrects quarters a partition and appends the four halves as future
// room candidates.
func (b *BSPDungeonBuilder) addSubrects(r world.Rect) {
	halfW := max(r.Width()/2, 1)
	halfH := max(r.Height()/2, 1)
	b.rects = append(b.rects,
		world.NewRect(r.X1, r.Y1, halfW, halfH),
		world.NewRect(r.X1, r.Y1+halfH, halfW, halfH),
		world.NewRect(r.X1+halfW, r.Y1, halfW, halfH),
		world.NewRect(r.X1+halfW, r.Y1+halfH, halfW, halfH),
	)
}

// randomSubRect samples a room-sized rectangle inside a partition, jittered
// off the partition's corner.
func (b *BSPDungeonBuilder) randomSubRect(r world.Rect, rng *rand.Rand) world.Rect {
	rw := max(r.Width(), 3)
	rh := max(r.Height(), 3)

	w := max(3, rng.Intn(min(rw, 10))+1) + 1
	h := max(3, rng.Intn(min(rh, 10))+1) + 1

	result := r
	result.X1 += rng.Intn(6)
	result.Y1 += rng.Intn(6)
	result.X2 = result.X1 + w
	result.Y2 = result.Y1 + h
	return result
}

// roomFits probes the candidate expanded by a 2-tile exclusion buffer and
// accepts only if every probed tile is in bounds and still wall.
func (b *BSPDungeonBuilder) roomFits(r world.Rect) bool {
	expanded := r
	expanded.X1 -= 2
	expanded.X2 += 2
	expanded.Y1 -= 2
	expanded.Y2 += 2

	for y := expanded.Y1; y <= expanded.Y2; y++ {
		for x := expanded.X1; x <= expanded.X2; x++ {
			if x < 1 || y < 1 || x > b.m.Width-2 || y > b.m.Height-2 {
				return false
			}
			if b.m.TileAt(x, y) != world.TileWall {
				return false
			}
		}
	}
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
