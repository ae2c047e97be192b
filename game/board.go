package game

// Cell is one board position. HasShip is set at most once, during
// placement. WasShot never reverts once set.
type Cell struct {
	HasShip bool
	WasShot bool
}

// Board is a fixed 10x10 grid of cells, indexed [y][x].
type Board [GridSize][GridSize]Cell

// At returns the cell at c. Bounds must be validated by the caller;
// an out-of-range coordinate is a caller bug and panics.
func (b *Board) At(c Coord) *Cell {
	return &b[c.Y][c.X]
}

// ShipCells counts the cells currently occupied by ships.
func (b *Board) ShipCells() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x].HasShip {
				n++
			}
		}
	}
	return n
}
