package world

// ComputeFOV calculates which tiles an observer at (cx, cy) can see within
// the given integer range. Every tile inside the Euclidean circle r² gets a
// Bresenham ray traced from the observer; the walk marks each cell on the ray
// visible and stops the moment it hits a wall, with that wall included in the
// visible set. The full set is recomputed from scratch on every call.
// Returns the visible tile indices in deterministic scan order.
func ComputeFOV(m *Map, cx, cy, radius int) []int {
	if !m.InBounds(cx, cy) {
		return nil
	}

	seen := make([]bool, len(m.Tiles))
	visible := make([]int, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !m.InBounds(x, y) {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			for _, cell := range Line(cx, cy, x, y) {
				idx := m.Index(cell[0], cell[1])
				if !seen[idx] {
					seen[idx] = true
					visible = append(visible, idx)
				}
				if m.Tiles[idx].Opaque() {
					break
				}
			}
		}
	}
	return visible
}

// ApplyVisibility writes an observer's visible set into the map's bitmaps:
// the Visible bitmap is replaced wholesale and every visible tile is also
// marked Revealed. Intended for the player's own field of view; other
// observers should consume the ComputeFOV result directly.
func ApplyVisibility(m *Map, visible []int) {
	for i := range m.Visible {
		m.Visible[i] = false
	}
	for _, idx := range visible {
		m.Visible[idx] = true
		m.Revealed[idx] = true
	}
}
