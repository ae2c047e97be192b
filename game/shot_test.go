package game

import "testing"

func TestIsValidShot(t *testing.T) {
	g := New()
	if g.IsValidShot(PlayerA, Coord{10, 0}) {
		t.Error("out-of-bounds shot accepted")
	}
	if g.IsValidShot(PlayerA, Coord{0, -1}) {
		t.Error("negative shot accepted")
	}
	if !g.IsValidShot(PlayerA, Coord{0, 0}) {
		t.Error("fresh cell rejected")
	}
}

func TestFireShotHitAndMiss(t *testing.T) {
	g := New()
	g.PlaceShip(PlayerB, Coord{0, 0}, 2, Right)

	if res := g.FireShot(PlayerA, Coord{0, 0}); res != Hit {
		t.Errorf("shot at ship cell = %v, want hit", res)
	}
	if res := g.FireShot(PlayerA, Coord{5, 5}); res != Miss {
		t.Errorf("shot at water = %v, want miss", res)
	}

	b := g.View(PlayerB)
	if !b.At(Coord{0, 0}).WasShot || !b.At(Coord{5, 5}).WasShot {
		t.Error("shot cells not marked on the opponent board")
	}
	// The shooter's own board is untouched.
	own := g.View(PlayerA)
	if own.At(Coord{0, 0}).WasShot {
		t.Error("shot marked the shooter's own board")
	}
}

func TestSecondShotAtSameCellIsInvalid(t *testing.T) {
	g := New()
	g.FireShot(PlayerA, Coord{4, 4})

	if g.IsValidShot(PlayerA, Coord{4, 4}) {
		t.Error("repeat shot accepted")
	}
	assertPanics(t, "repeat FireShot", func() {
		g.FireShot(PlayerA, Coord{4, 4})
	})
	// The same cell on the other board is still fresh.
	if !g.IsValidShot(PlayerB, Coord{4, 4}) {
		t.Error("repeat check crossed boards")
	}
}

func TestIsSunkProgression(t *testing.T) {
	g := New()
	s := g.PlaceShip(PlayerB, Coord{3, 3}, 2, Down)

	if s.IsSunk() {
		t.Error("fresh ship reported sunk")
	}
	g.FireShot(PlayerA, Coord{3, 3})
	if s.IsSunk() {
		t.Error("half-shot ship reported sunk")
	}
	g.FireShot(PlayerA, Coord{3, 4})
	if !s.IsSunk() {
		t.Error("fully shot ship not reported sunk")
	}
}

func TestHasLost(t *testing.T) {
	g := New()
	g.PlaceShip(PlayerB, Coord{0, 0}, 2, Right)

	if g.HasLost(PlayerB) {
		t.Error("lost before any shot")
	}
	g.FireShot(PlayerA, Coord{0, 0})
	if g.HasLost(PlayerB) {
		t.Error("lost with one ship cell intact")
	}
	g.FireShot(PlayerA, Coord{1, 0})
	if !g.HasLost(PlayerB) {
		t.Error("not lost after the last cell was shot")
	}
	if g.HasLost(PlayerA) {
		t.Error("winner reported as lost")
	}
}

func TestShipAt(t *testing.T) {
	g := New()
	short := g.PlaceShip(PlayerA, Coord{0, 0}, 2, Right)
	long := g.PlaceShip(PlayerA, Coord{0, 2}, 5, Right)

	if got := g.ShipAt(PlayerA, Coord{1, 0}); got != short {
		t.Error("ShipAt missed the length-2 ship")
	}
	if got := g.ShipAt(PlayerA, Coord{4, 2}); got != long {
		t.Error("ShipAt missed the length-5 ship")
	}
	if got := g.ShipAt(PlayerA, Coord{9, 9}); got != nil {
		t.Errorf("ShipAt on water = %v, want nil", got)
	}
	if got := g.ShipAt(PlayerB, Coord{0, 0}); got != nil {
		t.Error("ShipAt crossed into the other fleet")
	}
}

func TestFleetShipAtAndContains(t *testing.T) {
	g := New()
	s := g.PlaceShip(PlayerA, Coord{7, 1}, 3, Down)

	if !s.Contains(Coord{7, 2}) {
		t.Error("Contains missed an occupied cell")
	}
	if s.Contains(Coord{8, 1}) {
		t.Error("Contains matched a free cell")
	}
	if s.Length() != 3 {
		t.Errorf("Length = %d, want 3", s.Length())
	}
}
