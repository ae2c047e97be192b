package app

import (
	"errors"
	"strconv"
	"strings"

	"warships/game"
)

var (
	ErrInvalidCoord     = errors.New("invalid coordinate")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidPlacement = errors.New("invalid placement, want e.g. B4 right")
)

// stringCoordToCoord converts a text coordinate like "B4" to an engine
// coordinate: the letter is the column, the number the 1-based row.
func stringCoordToCoord(coord string) (game.Coord, error) {
	if len(coord) < 2 || len(coord) > 3 {
		return game.Coord{}, ErrInvalidCoord
	}
	coord = strings.ToUpper(coord)
	if coord[0] < 'A' || coord[0] > 'J' {
		return game.Coord{}, ErrInvalidCoord
	}
	x := int(coord[0] - 'A')
	y, err := strconv.Atoi(coord[1:])
	if err != nil || y < 1 || y > 10 {
		return game.Coord{}, ErrInvalidCoord
	}
	return game.Coord{X: x, Y: y - 1}, nil
}

// coordToString renders an engine coordinate as "B4"-style text.
func coordToString(c game.Coord) (string, error) {
	if !c.InBounds() {
		return "", ErrInvalidCoord
	}
	return string(rune('A'+c.X)) + strconv.Itoa(c.Y+1), nil
}

func parseDirection(s string) (game.Direction, error) {
	switch strings.ToLower(s) {
	case "u", "up":
		return game.Up, nil
	case "d", "down":
		return game.Down, nil
	case "l", "left":
		return game.Left, nil
	case "r", "right":
		return game.Right, nil
	}
	return game.Up, ErrInvalidDirection
}

// parsePlacement reads a typed placement like "B4 right" or "b4 r" into a
// starting coordinate and a direction.
func parsePlacement(s string) (game.Coord, game.Direction, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return game.Coord{}, game.Up, ErrInvalidPlacement
	}
	start, err := stringCoordToCoord(fields[0])
	if err != nil {
		return game.Coord{}, game.Up, err
	}
	dir, err := parseDirection(fields[1])
	if err != nil {
		return game.Coord{}, game.Up, err
	}
	return start, dir, nil
}
