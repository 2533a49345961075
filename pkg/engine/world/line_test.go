package world

import "testing"

func TestLine_IncludesBothEndpoints(t *testing.T) {
	cells := Line(1, 1, 5, 3)
	if cells[0] != [2]int{1, 1} {
		t.Errorf("line starts at %v, want (1,1)", cells[0])
	}
	if cells[len(cells)-1] != [2]int{5, 3} {
		t.Errorf("line ends at %v, want (5,3)", cells[len(cells)-1])
	}
}

func TestLine_StraightAndDiagonal(t *testing.T) {
	horizontal := Line(0, 0, 4, 0)
	if len(horizontal) != 5 {
		t.Errorf("horizontal line has %d cells, want 5", len(horizontal))
	}
	for i, c := range horizontal {
		if c != [2]int{i, 0} {
			t.Errorf("horizontal cell %d = %v", i, c)
		}
	}

	diagonal := Line(0, 0, 3, 3)
	if len(diagonal) != 4 {
		t.Errorf("diagonal line has %d cells, want 4", len(diagonal))
	}
	for i, c := range diagonal {
		if c != [2]int{i, i} {
			t.Errorf("diagonal cell %d = %v", i, c)
		}
	}
}

func TestLine_StepsAreAdjacent(t *testing.T) {
	cells := Line(7, 2, 1, 9)
	for i := 1; i < len(cells); i++ {
		dx := abs(cells[i][0] - cells[i-1][0])
		dy := abs(cells[i][1] - cells[i-1][1])
		if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("cells %v and %v are not single-step adjacent", cells[i-1], cells[i])
		}
	}
}

func TestLine_SinglePoint(t *testing.T) {
	cells := Line(3, 3, 3, 3)
	if len(cells) != 1 || cells[0] != [2]int{3, 3} {
		t.Errorf("degenerate line = %v, want just (3,3)", cells)
	}
}
