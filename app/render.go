package app

import (
	"strings"

	gui "github.com/grupawp/warships-gui/v2"

	"warships/game"
)

// ownBoardStates maps a player's own board to widget states: their ships,
// plus every shot the opponent has taken at them.
func ownBoardStates(b game.Board) [10][10]gui.State {
	states := [10][10]gui.State{}
	for y := 0; y < game.GridSize; y++ {
		for x := 0; x < game.GridSize; x++ {
			c := b.At(game.Coord{X: x, Y: y})
			switch {
			case c.HasShip && c.WasShot:
				states[x][y] = gui.Hit
			case c.HasShip:
				states[x][y] = gui.Ship
			case c.WasShot:
				states[x][y] = gui.Miss
			default:
				states[x][y] = gui.Empty
			}
		}
	}
	return states
}

// trackingStates maps the opponent's board to what the shooter is allowed
// to see: their own hits and misses, never unshot ships.
func trackingStates(b game.Board) [10][10]gui.State {
	states := [10][10]gui.State{}
	for y := 0; y < game.GridSize; y++ {
		for x := 0; x < game.GridSize; x++ {
			c := b.At(game.Coord{X: x, Y: y})
			switch {
			case c.WasShot && c.HasShip:
				states[x][y] = gui.Hit
			case c.WasShot:
				states[x][y] = gui.Miss
			default:
				states[x][y] = gui.Empty
			}
		}
	}
	return states
}

// boardText renders a player's own board as text for the placement
// screens: columns A-J across, rows 1-10 down, S for ship cells.
func boardText(b game.Board) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < game.GridSize; x++ {
		sb.WriteByte(byte('A' + x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for y := 0; y < game.GridSize; y++ {
		sb.WriteString(rowLabel(y + 1))
		for x := 0; x < game.GridSize; x++ {
			if b.At(game.Coord{X: x, Y: y}).HasShip {
				sb.WriteString("S ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func rowLabel(n int) string {
	if n < 10 {
		return " " + string(rune('0'+n)) + " "
	}
	return "10 "
}
