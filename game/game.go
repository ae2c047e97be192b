package game

// Player identifies one of the two sides of a match.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	if p == PlayerA {
		return "player A"
	}
	return "player B"
}

// GridSize is the side length of every board.
const GridSize = 10

// ShipLengths is the fixed fleet each player places, in placement order.
var ShipLengths = [...]int{2, 3, 3, 4, 5}

// TotalShipCells is the number of occupied cells in a complete fleet.
const TotalShipCells = 2 + 3 + 3 + 4 + 5

// Coord addresses a single board cell. X grows to the right, Y grows
// downward, both in [0, GridSize).
type Coord struct {
	X int
	Y int
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Direction is the axis a ship extends along from its starting cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) step() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// span lists the length cells covered by a ship starting at start and
// extending in d. ok is false when the segment leaves the board.
func span(start Coord, length int, d Direction) ([]Coord, bool) {
	dx, dy := d.step()
	cells := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		c := Coord{X: start.X + i*dx, Y: start.Y + i*dy}
		if !c.InBounds() {
			return nil, false
		}
		cells = append(cells, c)
	}
	return cells, true
}

// ShotResult is the outcome of a single resolved shot.
type ShotResult int

const (
	Miss ShotResult = iota
	Hit
)

func (r ShotResult) String() string {
	if r == Hit {
		return "hit"
	}
	return "miss"
}
