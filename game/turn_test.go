package game

import "testing"

// driveSetup places both fleets through the controller, each ship in its
// own row so nothing overlaps.
func driveSetup(t *testing.T, c *Controller) {
	t.Helper()
	for c.Phase() == PhaseSetup {
		placed := false
		for y := 0; y < GridSize && !placed; y++ {
			placed = c.Place(Coord{0, y}, Right)
		}
		if !placed {
			t.Fatal("could not place a ship anywhere")
		}
	}
}

func TestSetupOrder(t *testing.T) {
	c := NewController(New())

	if c.Phase() != PhaseSetup {
		t.Fatalf("initial phase = %v, want setup", c.Phase())
	}
	for _, p := range []Player{PlayerA, PlayerB} {
		for i, length := range ShipLengths {
			if c.Active() != p {
				t.Fatalf("ship %d: active = %v, want %v", i, c.Active(), p)
			}
			if c.PendingLength() != length {
				t.Fatalf("ship %d: pending length = %d, want %d", i, c.PendingLength(), length)
			}
			if !c.Place(Coord{0, 2 * i}, Right) {
				t.Fatalf("placement %d for %v rejected", i, p)
			}
		}
	}
	if c.Phase() != PhaseCombat {
		t.Fatalf("phase after setup = %v, want combat", c.Phase())
	}
	if c.Active() != PlayerA {
		t.Errorf("first shooter = %v, want player A", c.Active())
	}
}

func TestSetupRejectionKeepsState(t *testing.T) {
	c := NewController(New())

	if c.Place(Coord{9, 9}, Right) {
		t.Fatal("out-of-bounds placement accepted")
	}
	if c.Active() != PlayerA || c.PendingLength() != ShipLengths[0] {
		t.Error("rejected placement advanced the controller")
	}
	if !c.Place(Coord{0, 0}, Right) {
		t.Fatal("valid placement rejected after a rejection")
	}
	if c.PendingLength() != ShipLengths[1] {
		t.Error("accepted placement did not advance to the next length")
	}
}

func TestCombatTurnFlow(t *testing.T) {
	c := NewController(New())
	driveSetup(t, c)

	// driveSetup fills rows 0-4 from x=0, so (9,9) is water and (0,0)
	// is the first cell of the length-2 ship.
	if out, ok := c.Fire(Coord{9, 9}); !ok || out.Result != Miss {
		t.Fatalf("expected an accepted miss, got %+v ok=%v", out, ok)
	}
	if c.Active() != PlayerB {
		t.Fatal("miss did not pass the turn")
	}

	if out, ok := c.Fire(Coord{0, 0}); !ok || out.Result != Hit {
		t.Fatalf("expected an accepted hit, got %+v ok=%v", out, ok)
	} else if out.Sunk {
		t.Error("first hit on a length-2 ship reported sunk")
	}
	if c.Active() != PlayerB {
		t.Fatal("hit did not keep the turn")
	}

	out, ok := c.Fire(Coord{1, 0})
	if !ok || out.Result != Hit || !out.Sunk {
		t.Fatalf("expected a sinking hit, got %+v ok=%v", out, ok)
	}
	if out.Ship == nil || out.Ship.Length() != 2 {
		t.Error("sinking hit did not report the struck ship")
	}
	if out.Won {
		t.Error("sinking one of five ships ended the match")
	}
}

func TestInvalidShotKeepsActivePlayer(t *testing.T) {
	c := NewController(New())
	driveSetup(t, c)

	if _, ok := c.Fire(Coord{10, 3}); ok {
		t.Fatal("out-of-bounds shot accepted")
	}
	if c.Active() != PlayerA {
		t.Error("rejected shot moved the turn")
	}

	c.Fire(Coord{9, 9}) // A misses, turn passes to B
	c.Fire(Coord{9, 9}) // B misses on A's board, turn returns to A
	if _, ok := c.Fire(Coord{9, 9}); ok {
		t.Fatal("repeat shot at B's board accepted")
	}
	if c.Active() != PlayerA {
		t.Error("rejected repeat shot moved the turn")
	}
}

func TestWinEndsMatch(t *testing.T) {
	g := New()
	c := NewController(g)
	driveSetup(t, c)

	// Player A shoots out every B ship cell; hits keep the turn so the
	// whole fleet falls in one run.
	var last Outcome
	for _, s := range g.Fleet(PlayerB) {
		for _, cell := range s.Cells() {
			out, ok := c.Fire(cell)
			if !ok || out.Result != Hit {
				t.Fatalf("expected hit at %v, got %+v ok=%v", cell, out, ok)
			}
			last = out
		}
	}
	if !last.Sunk || !last.Won {
		t.Fatalf("final shot outcome = %+v, want sunk and won", last)
	}
	if c.Phase() != PhaseOver {
		t.Fatalf("phase = %v, want over", c.Phase())
	}
	if w, ok := c.Winner(); !ok || w != PlayerA {
		t.Errorf("winner = %v ok=%v, want player A", w, ok)
	}
	assertPanics(t, "fire after game over", func() {
		c.Fire(Coord{9, 9})
	})
}

// End-to-end on the resolver alone: a single length-2 ship at (0,0)
// right, shot out cell by cell, flips HasLost with the final cell.
func TestSingleShipScenario(t *testing.T) {
	g := New()
	s := g.PlaceShip(PlayerB, Coord{0, 0}, 2, Right)
	if !s.Contains(Coord{1, 0}) {
		t.Fatal("length-2 ship at (0,0) right must occupy (1,0)")
	}

	if g.FireShot(PlayerA, Coord{0, 0}) != Hit {
		t.Fatal("first shot should hit")
	}
	if s.IsSunk() || g.HasLost(PlayerB) {
		t.Fatal("ship sunk after one of two cells")
	}
	if g.FireShot(PlayerA, Coord{1, 0}) != Hit {
		t.Fatal("second shot should hit")
	}
	if !s.IsSunk() || !g.HasLost(PlayerB) {
		t.Fatal("ship with all cells shot must be sunk and the fleet lost")
	}
}

func TestWinnerBeforeGameOver(t *testing.T) {
	c := NewController(New())
	if _, ok := c.Winner(); ok {
		t.Error("winner reported during setup")
	}
	assertPanics(t, "fire during setup", func() {
		c.Fire(Coord{0, 0})
	})
}
