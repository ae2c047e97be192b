package app

import (
	gui "github.com/grupawp/warships-gui/v2"
	"github.com/rs/zerolog"

	"warships/game"
)

// App drives one hot-seat match: it owns the screens, the input parsing
// and the per-player shot tally, and calls into the game engine for
// everything rule-shaped.
type App struct {
	Ctrl  *game.Controller
	Nicks [2]string
	Log   zerolog.Logger

	shots [2]int
	hits  [2]int
}

// GuiBattle is the set of widgets making up one combat screen, drawn from
// the active player's side of the table.
type GuiBattle struct {
	PlayerBoard         *gui.Board
	PlayerBoardStates   [10][10]gui.State
	OpponentBoard       *gui.Board
	OpponentBoardStates [10][10]gui.State
	PlayerNick          *gui.Text
	OpponentNick        *gui.Text
	PlayerAccuracy      *gui.Text
	ShouldFire          *gui.Text
	ShotResult          *gui.Text
	Exit                *gui.Text
	Ui                  *gui.GUI
}

// New builds an app around a fresh match.
func New(log zerolog.Logger) *App {
	return &App{
		Ctrl: game.NewController(game.NewWithLogger(log)),
		Log:  log,
	}
}
