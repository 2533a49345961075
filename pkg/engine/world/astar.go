package world

import (
	"github.com/zyedidia/generic/heap"
)

// aStarNode is one open-set entry: a tile index with its accumulated cost
// and heap priority (f = g + heuristic).
type aStarNode struct {
	idx int
	g   float64
	f   float64
}

// FindPath runs A* between two tile indices over the map's exit enumeration.
// With entityAware set the search respects live occupancy; without it only
// walls block, which lets AI plan through tiles occupied by other agents.
// The heuristic is unweighted Chebyshev distance against a cost model where
// diagonal steps cost 1.45; keep the two in sync with PathingDistance and
// Exits if either ever changes.
// The returned path runs from start to goal inclusive; ok is false when the
// open set empties without reaching the goal.
func FindPath(m *Map, start, goal int, entityAware bool) (path []int, ok bool) {
	if start == goal {
		return []int{start}, true
	}

	open := heap.New[aStarNode](func(a, b aStarNode) bool {
		return a.f < b.f
	})
	open.Push(aStarNode{idx: start, g: 0, f: m.PathingDistance(start, goal)})

	best := make(map[int]float64, 64)
	best[start] = 0
	cameFrom := make(map[int]int, 64)
	closed := make(map[int]bool, 64)

	for {
		node, more := open.Pop()
		if !more {
			return nil, false
		}
		if closed[node.idx] {
			continue
		}
		closed[node.idx] = true

		if node.idx == goal {
			return reconstructPath(cameFrom, start, goal), true
		}

		for _, exit := range m.Exits(node.idx, entityAware) {
			tentative := node.g + exit.Cost
			if known, seen := best[exit.Idx]; seen && tentative >= known {
				continue
			}
			best[exit.Idx] = tentative
			cameFrom[exit.Idx] = node.idx
			open.Push(aStarNode{
				idx: exit.Idx,
				g:   tentative,
				f:   tentative + m.PathingDistance(exit.Idx, goal),
			})
		}
	}
}

// reconstructPath walks parent pointers from the goal back to the start and
// reverses the result.
func reconstructPath(cameFrom map[int]int, start, goal int) []int {
	path := []int{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
