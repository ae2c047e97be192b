package game

import (
	"sync"

	"github.com/rs/zerolog"
)

// Game holds the full state of one match: a board and a fleet per player.
// One Game is built per match and passed by reference; nothing here is
// process-global. Every multi-cell mutation happens under the mutex, so
// placements and shots are indivisible to any other observer even though
// the turn controller is normally the only writer.
type Game struct {
	mu     sync.RWMutex
	boards [2]Board
	fleets [2]Fleet
	log    zerolog.Logger
}

// New returns an empty game that logs nowhere.
func New() *Game {
	return NewWithLogger(zerolog.Nop())
}

// NewWithLogger returns an empty game that records engine events to log.
func NewWithLogger(log zerolog.Logger) *Game {
	return &Game{log: log}
}

// View returns a snapshot copy of p's board for rendering. Callers never
// get live cell references.
func (g *Game) View(p Player) Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.boards[p]
}

// Fleet returns p's ships in placement order.
func (g *Game) Fleet(p Player) Fleet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(Fleet, len(g.fleets[p]))
	copy(out, g.fleets[p])
	return out
}

// IsValidPlacement reports whether a ship of the given length can start at
// start on p's board and extend in d: both endpoints on the board and no
// cell of the span already occupied. Pure predicate, no mutation.
func (g *Game) IsValidPlacement(p Player, start Coord, length int, d Direction) bool {
	cells, ok := span(start, length, d)
	if !ok {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	b := &g.boards[p]
	for _, c := range cells {
		if b.At(c).HasShip {
			return false
		}
	}
	return true
}

// PlaceShip marks the span as occupied and appends the new ship to p's
// fleet. The caller must have confirmed IsValidPlacement first; a bad
// placement here is a caller bug and panics.
func (g *Game) PlaceShip(p Player, start Coord, length int, d Direction) *Ship {
	cells, ok := span(start, length, d)
	if !ok {
		panic("game: PlaceShip out of bounds")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	b := &g.boards[p]
	for _, c := range cells {
		if b.At(c).HasShip {
			panic("game: PlaceShip over an existing ship")
		}
	}
	for _, c := range cells {
		b.At(c).HasShip = true
	}
	s := &Ship{board: b, cells: cells}
	g.fleets[p] = append(g.fleets[p], s)
	g.log.Debug().
		Stringer("player", p).
		Int("x", start.X).Int("y", start.Y).
		Int("length", length).
		Stringer("direction", d).
		Msg("ship placed")
	return s
}

// IsValidShot reports whether p may fire at target: on the board and the
// opponent's cell not yet shot. Pure predicate, no mutation.
func (g *Game) IsValidShot(p Player, target Coord) bool {
	if !target.InBounds() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return !g.boards[p.Opponent()].At(target).WasShot
}

// FireShot resolves p's shot at the opponent's board. The caller must have
// confirmed IsValidShot first; firing at a shot cell panics. The cell's
// shot flag is set irreversibly.
func (g *Game) FireShot(p Player, target Coord) ShotResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell := g.boards[p.Opponent()].At(target)
	if cell.WasShot {
		panic("game: FireShot at a cell already shot")
	}
	cell.WasShot = true
	res := Miss
	if cell.HasShip {
		res = Hit
	}
	g.log.Debug().
		Stringer("player", p).
		Int("x", target.X).Int("y", target.Y).
		Stringer("result", res).
		Msg("shot fired")
	return res
}

// ShipAt returns the ship in p's fleet occupying c, or nil.
func (g *Game) ShipAt(p Player, c Coord) *Ship {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.fleets[p].ShipAt(c)
}

// HasLost reports whether every ship in p's fleet is sunk.
func (g *Game) HasLost(p Player) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.fleets[p].IsDefeated()
}
