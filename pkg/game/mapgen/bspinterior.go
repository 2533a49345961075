package mapgen

import (
	"math/rand"
	"sort"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// minInteriorSize stops the recursive bisection once a half-dimension would
// fall below it.
const minInteriorSize = 8

// BSPInteriorBuilder recursively bisects the whole map area and carves every
// leaf as a room, producing a dense interior with no unused rock.
type BSPInteriorBuilder struct {
	baseBuilder
	rects []world.Rect
	rooms []world.Rect
}

// NewBSPInteriorBuilder creates a BSP interior builder for one level.
func NewBSPInteriorBuilder(width, height, depth int, snapshot bool) *BSPInteriorBuilder {
	return &BSPInteriorBuilder{baseBuilder: newBaseBuilder(width, height, depth, snapshot)}
}

// Name returns the algorithm's human-readable name.
func (b *BSPInteriorBuilder) Name() string {
	return "BSP Interior"
}

// Build carves the level.
func (b *BSPInteriorBuilder) Build(rng *rand.Rand) {
	m := b.m

	b.rects = b.rects[:0]
	b.rects = append(b.rects, world.Rect{X1: 1, Y1: 1, X2: m.Width - 2, Y2: m.Height - 2})
	first := b.rects[0]
	b.subdivide(first, rng)

	for _, room := range b.rects {
		b.rooms = append(b.rooms, room)
		applyRoom(m, room)
		b.takeSnapshot()
	}

	logger.Log.WithField("rooms", len(b.rooms)).Debug("bsp interior carved")

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

// subdivide replaces the most recent rect with a random horizontal or
// vertical bisection, recursing while halves remain above the minimum size.
func (b *BSPInteriorBuilder) subdivide(rect world.Rect, rng *rand.Rand) {
	if len(b.rects) > 0 {
		b.rects = b.rects[:len(b.rects)-1]
	}

	halfW := rect.Width() / 2
	halfH := rect.Height() / 2

	if rng.Intn(2) == 0 {
		// Vertical cut: side-by-side halves.
		h1 := world.NewRect(rect.X1, rect.Y1, halfW-1, rect.Height())
		b.rects = append(b.rects, h1)
		if halfW > minInteriorSize {
			b.subdivide(h1, rng)
		}
		h2 := world.NewRect(rect.X1+halfW, rect.Y1, halfW, rect.Height())
		b.rects = append(b.rects, h2)
		if halfW > minInteriorSize {
			b.subdivide(h2, rng)
		}
	} else {
		// Horizontal cut: stacked halves.
		v1 := world.NewRect(rect.X1, rect.Y1, rect.Width(), halfH-1)
		b.rects = append(b.rects, v1)
		if halfH > minInteriorSize {
			b.subdivide(v1, rng)
		}
		v2 := world.NewRect(rect.X1, rect.Y1+halfH, rect.Width(), halfH)
		b.rects = append(b.rects, v2)
		if halfH > minInteriorSize {
			b.subdivide(v2, rng)
		}
	}
}
