package world

import "testing"

func TestWallMask_IsolatedWallIsPillar(t *testing.T) {
	// Solid rock: neighbors are walls, but none of them face floor.
	m := NewMap(5, 5, 1)
	if mask := m.WallMask(2, 2); mask != 0 {
		t.Errorf("mask = %d, want 0", mask)
	}
	if WallGlyph(0) != '○' {
		t.Errorf("glyph for mask 0 = %c, want ○", WallGlyph(0))
	}
}

func TestWallMask_VerticalRun(t *testing.T) {
	// A wall column at x=2 flanked by floor columns.
	m := NewMap(5, 5, 1)
	for y := 0; y < 5; y++ {
		m.SetTile(1, y, TileFloor)
		m.SetTile(3, y, TileFloor)
	}

	mask := m.WallMask(2, 2)
	if mask != MaskNorth|MaskSouth {
		t.Fatalf("mask = %d, want %d", mask, MaskNorth|MaskSouth)
	}
	if WallGlyph(mask) != '│' {
		t.Errorf("glyph = %c, want │", WallGlyph(mask))
	}
}

func TestWallMask_SouthOpeningTee(t *testing.T) {
	// Wall neighbors to the north, west and east all face floor; the south
	// neighbor is floor itself.
	m := NewMap(7, 7, 1)
	m.SetTile(3, 1, TileFloor)
	m.SetTile(3, 4, TileFloor)

	mask := m.WallMask(3, 3)
	if mask != MaskNorth|MaskWest|MaskEast {
		t.Fatalf("mask = %d, want %d", mask, MaskNorth|MaskWest|MaskEast)
	}
	if WallGlyph(mask) != '┴' {
		t.Errorf("glyph = %c, want ┴", WallGlyph(mask))
	}
}

func TestWallGlyph_StraightRuns(t *testing.T) {
	if WallGlyph(MaskWest|MaskEast) != '─' {
		t.Error("west+east should map to the horizontal run")
	}
	if WallGlyph(MaskNorth) != '│' && WallGlyph(MaskSouth) != '│' {
		t.Error("single vertical neighbors should map to the vertical run")
	}
	if WallGlyph(MaskNorth|MaskSouth|MaskWest|MaskEast) != '┼' {
		t.Error("all four neighbors should map to the cross")
	}
}

func TestWallGlyph_Corners(t *testing.T) {
	cases := []struct {
		mask int
		want rune
	}{
		{MaskNorth | MaskWest, '┘'},
		{MaskSouth | MaskWest, '┐'},
		{MaskNorth | MaskEast, '└'},
		{MaskSouth | MaskEast, '┌'},
		{MaskNorth | MaskSouth | MaskWest, '┤'},
		{MaskNorth | MaskSouth | MaskEast, '├'},
		{MaskSouth | MaskWest | MaskEast, '┬'},
	}
	for _, c := range cases {
		if got := WallGlyph(c.mask); got != c.want {
			t.Errorf("glyph for mask %d = %c, want %c", c.mask, got, c.want)
		}
	}
}
