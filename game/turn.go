package game

// Phase is the controller's position in the match.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseCombat
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseCombat:
		return "combat"
	default:
		return "over"
	}
}

// Outcome describes one accepted shot.
type Outcome struct {
	Result ShotResult
	Ship   *Ship // ship that was struck, nil on a miss
	Sunk   bool  // the struck ship just lost its last cell
	Won    bool  // the shot sank the opponent's last ship
}

// Controller sequences a match: each player places the fixed fleet in
// order, then the players exchange shots until one fleet is sunk. The
// caller drives it with Place and Fire and reads the resulting state; a
// rejected request leaves everything unchanged, so the caller simply
// re-prompts. A hit keeps the turn, a miss passes it.
type Controller struct {
	game      *Game
	phase     Phase
	active    Player
	shipIndex int
	winner    Player
}

// NewController starts a match over g. PlayerA places first and, once
// setup completes, also fires first.
func NewController(g *Game) *Controller {
	return &Controller{game: g, phase: PhaseSetup, active: PlayerA}
}

// Game returns the underlying game state.
func (c *Controller) Game() *Game {
	return c.game
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Active returns the player expected to act next.
func (c *Controller) Active() Player {
	return c.active
}

// PendingLength returns the length of the ship the active player places
// next. Only meaningful during setup.
func (c *Controller) PendingLength() int {
	return ShipLengths[c.shipIndex]
}

// Winner returns the winning player once the match is over.
func (c *Controller) Winner() (Player, bool) {
	if c.phase != PhaseOver {
		return PlayerA, false
	}
	return c.winner, true
}

// Place tries to place the active player's pending ship at start extending
// in d. It reports false, changing nothing, when the placement is out of
// bounds or overlaps; the caller re-prompts. On success the controller
// advances to the next ship, the next player, or combat.
func (c *Controller) Place(start Coord, d Direction) bool {
	if c.phase != PhaseSetup {
		panic("game: Place outside the setup phase")
	}
	length := ShipLengths[c.shipIndex]
	if !c.game.IsValidPlacement(c.active, start, length, d) {
		return false
	}
	c.game.PlaceShip(c.active, start, length, d)
	c.shipIndex++
	if c.shipIndex < len(ShipLengths) {
		return true
	}
	if c.active == PlayerA {
		c.active = PlayerB
		c.shipIndex = 0
	} else {
		c.phase = PhaseCombat
		c.active = PlayerA
	}
	return true
}

// Fire tries to resolve the active player's shot at target. It reports
// false, changing nothing, when the shot is off the board or repeats an
// earlier shot; the same player retries. An accepted miss passes the turn,
// an accepted hit keeps it, and a hit that sinks the last ship ends the
// match with the active player as winner.
func (c *Controller) Fire(target Coord) (Outcome, bool) {
	if c.phase != PhaseCombat {
		panic("game: Fire outside the combat phase")
	}
	if !c.game.IsValidShot(c.active, target) {
		return Outcome{}, false
	}
	out := Outcome{Result: c.game.FireShot(c.active, target)}
	if out.Result == Miss {
		c.active = c.active.Opponent()
		return out, true
	}
	opp := c.active.Opponent()
	if s := c.game.ShipAt(opp, target); s != nil {
		out.Ship = s
		out.Sunk = s.IsSunk()
	}
	if c.game.HasLost(opp) {
		out.Won = true
		c.winner = c.active
		c.phase = PhaseOver
	}
	return out, true
}
