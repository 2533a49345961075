package mapgen

import (
	"math/rand"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/logger"
)

// Room sampling bounds for the rectangular builders.
const (
	maxRoomAttempts = 30
	minRoomSize     = 6
	maxRoomSize     = 10
)

// SimpleRoomsBuilder carves random non-overlapping rectangular rooms and
// joins consecutive rooms with L-shaped tunnels.
type SimpleRoomsBuilder struct {
	baseBuilder
	rooms []world.Rect
}

// NewSimpleRoomsBuilder creates a simple-rooms builder for one level.
func NewSimpleRoomsBuilder(width, height, depth int, snapshot bool) *SimpleRoomsBuilder {
	return &SimpleRoomsBuilder{baseBuilder: newBaseBuilder(width, height, depth, snapshot)}
}

// Name returns the algorithm's human-readable name.
func (b *SimpleRoomsBuilder) Name() string {
	return "Simple Rooms"
}

// Build carves the level. Rooms that overlap a previously accepted room are
// rejected; the accepted count is whatever survives the attempt budget.
func (b *SimpleRoomsBuilder) Build(rng *rand.Rand) {
	m := b.m

	for i := 0; i < maxRoomAttempts; i++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		if m.Width-w-2 <= 1 || m.Height-h-2 <= 1 {
			continue
		}
		x := 1 + rng.Intn(m.Width-w-2)
		y := 1 + rng.Intn(m.Height-h-2)

		room := world.NewRect(x, y, w, h)
		overlaps := false
		for _, other := range b.rooms {
			if room.Intersect(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		applyRoom(m, room)

		if len(b.rooms) > 0 {
			newX, newY := room.Center()
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			if rng.Intn(2) == 1 {
				applyHorizontalTunnel(m, prevX, newX, prevY)
				applyVerticalTunnel(m, prevY, newY, newX)
			} else {
				applyVerticalTunnel(m, prevY, newY, prevX)
				applyHorizontalTunnel(m, prevX, newX, newY)
			}
		}

		b.rooms = append(b.rooms, room)
		b.takeSnapshot()
	}

	logger.Log.WithField("rooms", len(b.rooms)).Debug("simple rooms carved")

	if len(b.rooms) == 0 {
		// Pathological attempt budget; keep the level playable.
		fallback := world.NewRect(m.Width/2-3, m.Height/2-3, 6, 6)
		applyRoom(m, fallback)
		b.rooms = append(b.rooms, fallback)
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
