package app

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"warships/game"
)

// Start runs one full match: nick entry, alternating fleet placement,
// combat until a fleet is sunk, then the winner screen.
func (a *App) Start() {
	a.Nicks[game.PlayerA] = a.getPlayerName(game.PlayerA)
	a.Nicks[game.PlayerB] = a.getPlayerName(game.PlayerB)
	a.Log.Info().
		Str("playerA", a.Nicks[game.PlayerA]).
		Str("playerB", a.Nicks[game.PlayerB]).
		Msg("match started")

	a.runSetup()
	a.runBattle()
	a.showWinner()
}

func (a *App) runSetup() {
	for a.Ctrl.Phase() == game.PhaseSetup {
		p := a.Ctrl.Active()
		a.handOver(fmt.Sprintf("Pass the keyboard to %s to place their fleet, then press Enter", a.Nicks[p]))
		a.placeFleet(p)
	}
}

func (a *App) runBattle() {
	for a.Ctrl.Phase() == game.PhaseCombat {
		p := a.Ctrl.Active()
		a.handOver(fmt.Sprintf("Pass the keyboard to %s, then press Enter", a.Nicks[p]))
		a.playTurn()
	}
}

func (a *App) showWinner() {
	winner, ok := a.Ctrl.Winner()
	if !ok {
		return
	}
	a.Log.Info().Str("winner", a.Nicks[winner]).Msg("match over")

	if err := termui.Init(); err != nil {
		a.Log.Fatal().Err(err).Msg("termui.Init")
	}
	defer termui.Close()

	winMsg := widgets.NewParagraph()
	winMsg.Text = fmt.Sprintf("Winner: %s\nPress Enter to exit", a.Nicks[winner])
	winMsg.TextStyle = termui.NewStyle(termui.ColorGreen)
	winMsg.SetRect(0, 0, 50, 4)
	termui.Render(winMsg)

	uiEvents := termui.PollEvents()
	for {
		ev := <-uiEvents
		if ev.Type != termui.KeyboardEvent {
			continue
		}
		switch ev.ID {
		case "<Enter>":
			return
		case "<Escape>":
			a.exitByCtrlC()
		}
	}
}
