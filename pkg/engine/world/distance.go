package world

import "math"

// Unreachable is the sentinel distance carried by tiles the flood fill never
// reached.
const Unreachable = math.MaxFloat64

// DistanceField holds the result of a multi-source flood fill: one shortest
// distance per tile, Unreachable where no floor path exists.
type DistanceField struct {
	Values []float64
}

// FloodFill runs a multi-source breadth-first flood fill over the map's
// 8-connected floor graph with uniform step cost 1.0. Diagonal steps are not
// corner-restricted here, unlike pathfinding. Source indices start at
// distance 0; wall tiles and anything cut off from every source stay at
// Unreachable.
func FloodFill(m *Map, sources ...int) *DistanceField {
	values := make([]float64, len(m.Tiles))
	for i := range values {
		values[i] = Unreachable
	}

	queue := make([]int, 0, len(sources))
	for _, src := range sources {
		if values[src] == Unreachable {
			values[src] = 0
			queue = append(queue, src)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		next := values[current] + 1
		for _, exit := range m.Exits(current, false) {
			if values[exit.Idx] == Unreachable {
				values[exit.Idx] = next
				queue = append(queue, exit.Idx)
			}
		}
	}

	return &DistanceField{Values: values}
}

// Reachable reports whether a tile was reached by any source.
func (d *DistanceField) Reachable(idx int) bool {
	return d.Values[idx] != Unreachable
}

// Farthest returns the tile of maximum finite distance and that distance.
// Exit placement uses this to put the stairs as far from the start as the
// floor graph allows. Returns (-1, 0) when nothing was reachable.
func (d *DistanceField) Farthest() (idx int, dist float64) {
	idx = -1
	for i, v := range d.Values {
		if v == Unreachable {
			continue
		}
		if idx == -1 || v > dist {
			idx, dist = i, v
		}
	}
	if idx == -1 {
		return -1, 0
	}
	return idx, dist
}
