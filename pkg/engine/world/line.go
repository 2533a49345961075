package world

// Line rasterizes the straight line from (x0, y0) to (x1, y1) using
// Bresenham's integer algorithm and returns every cell on it, endpoints
// included, in walk order from the first point. The same primitive drives
// both field-of-view rays and the DLA central-attractor walk.
func Line(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	cells := [][2]int{{x0, y0}}
	err := dx + dy
	x, y := x0, y0
	for x != x1 || y != y1 {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		cells = append(cells, [2]int{x, y})
	}
	return cells
}
