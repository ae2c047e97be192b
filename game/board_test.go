package game

import "testing"

func TestEmptyBoard(t *testing.T) {
	var b Board
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := b.At(Coord{x, y})
			if c.HasShip || c.WasShot {
				t.Errorf("cell (%d,%d) not empty: %+v", x, y, *c)
			}
		}
	}
	if n := b.ShipCells(); n != 0 {
		t.Errorf("empty board has %d ship cells", n)
	}
}

func TestAtReturnsReference(t *testing.T) {
	var b Board
	b.At(Coord{3, 7}).HasShip = true
	if !b[7][3].HasShip {
		t.Error("At(3,7) did not address row 7, column 3")
	}
	if b.ShipCells() != 1 {
		t.Errorf("ShipCells = %d, want 1", b.ShipCells())
	}
}

func TestViewIsSnapshot(t *testing.T) {
	g := New()
	g.PlaceShip(PlayerA, Coord{0, 0}, 2, Right)

	v := g.View(PlayerA)
	v.At(Coord{5, 5}).HasShip = true

	fresh := g.View(PlayerA)
	if fresh.At(Coord{5, 5}).HasShip {
		t.Error("mutating a view leaked into the game board")
	}
}
