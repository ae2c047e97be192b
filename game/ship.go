package game

// Ship is a contiguous run of cells on a single board. The cell set is
// fixed at placement; only the cells' shot flags change afterwards.
type Ship struct {
	board *Board
	cells []Coord
}

// Length returns the number of cells the ship occupies.
func (s *Ship) Length() int {
	return len(s.cells)
}

// Cells returns the coordinates the ship occupies, in placement order.
func (s *Ship) Cells() []Coord {
	return s.cells
}

// Contains reports whether c is one of the ship's cells.
func (s *Ship) Contains(c Coord) bool {
	for _, sc := range s.cells {
		if sc == c {
			return true
		}
	}
	return false
}

// IsSunk reports whether every cell of the ship has been shot.
func (s *Ship) IsSunk() bool {
	for _, c := range s.cells {
		if !s.board.At(c).WasShot {
			return false
		}
	}
	return true
}

// Fleet is one player's ships in placement order.
type Fleet []*Ship

// ShipAt returns the ship occupying c, or nil if the cell holds none.
func (f Fleet) ShipAt(c Coord) *Ship {
	for _, s := range f {
		if s.Contains(c) {
			return s
		}
	}
	return nil
}

// IsDefeated reports whether every ship in the fleet is sunk. Combat only
// starts once the fleet is complete, so a partial fleet never reaches this
// check in play.
func (f Fleet) IsDefeated() bool {
	for _, s := range f {
		if !s.IsSunk() {
			return false
		}
	}
	return true
}
