package app

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/micmonay/keybd_event"

	"warships/config"
	"warships/game"
)

// exitByCtrlC synthesises a Ctrl+C after tearing the UI down, so Escape
// behaves like the advertised exit key everywhere.
func (a *App) exitByCtrlC() {
	termui.Close()
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		a.Log.Fatal().Err(err).Msg("keybd_event.NewKeyBonding")
	}
	if runtime.GOOS == "linux" {
		time.Sleep(2 * time.Second)
	}

	kb.SetKeys(keybd_event.VK_C)
	kb.HasCTRL(true)

	if err = kb.Launching(); err != nil {
		a.Log.Fatal().Err(err).Msg("keybd_event launch")
	}
	if err = kb.Press(); err != nil {
		a.Log.Fatal().Err(err).Msg("keybd_event press")
	}
	time.Sleep(10 * time.Millisecond)
	if err = kb.Release(); err != nil {
		a.Log.Fatal().Err(err).Msg("keybd_event release")
	}
}

// getPlayerName prompts one player for a nick. Enter on an empty field
// keeps the configured default.
func (a *App) getPlayerName(p game.Player) string {
	if err := termui.Init(); err != nil {
		a.Log.Fatal().Err(err).Msg("termui.Init")
	}
	defer termui.Close()

	preset := config.GetString("playerA.nick")
	if p == game.PlayerB {
		preset = config.GetString("playerB.nick")
	}

	nameInput := widgets.NewParagraph()
	nameInput.Title = fmt.Sprintf("%s: enter your name. Press Enter to keep %q", strings.ToUpper(p.String()[:1])+p.String()[1:], preset)
	nameInput.TextStyle = termui.NewStyle(termui.ColorYellow)
	nameInput.SetRect(0, 0, 80, 3)

	errorMsg := widgets.NewParagraph()
	errorMsg.TextStyle = termui.NewStyle(termui.ColorRed)
	errorMsg.SetRect(0, 4, 50, 7)

	termui.Render(nameInput, errorMsg)

	name := ""
	nameEvents := termui.PollEvents()
	for {
		nameEv := <-nameEvents
		if nameEv.Type != termui.KeyboardEvent {
			continue
		}
		switch nameEv.ID {
		case "<Enter>":
			playerName := strings.TrimSpace(name)
			if playerName == "" {
				return preset
			}
			if validateName(playerName) {
				return playerName
			}
			termui.Render(nameInput) // Clear error message from the screen
			if len(playerName) < 2 || len(playerName) > 10 {
				errorMsg.Text = "Please enter a name between 2 and 10 characters."
			} else {
				errorMsg.Text = "Name cannot contain symbols.\nPlease enter a valid name."
			}
			termui.Render(errorMsg)
		case "<Escape>":
			a.exitByCtrlC()
		case "<Backspace>":
			if len(name) > 0 {
				name = name[:len(name)-1]
				nameInput.Text = name
				termui.Render(nameInput)
			}
		default:
			if len(nameEv.ID) == 1 && len(name) < 10 {
				name += nameEv.ID
				nameInput.Text = name
				termui.Render(nameInput)
			}
		}
	}
}

func validateName(name string) bool {
	return len(name) >= 2 && len(name) <= 10 && !containsSymbols(name)
}

func containsSymbols(name string) bool {
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == ' ':
		default:
			return true
		}
	}
	return false
}

// handOver blanks the screen between players so neither sees the other's
// fleet. Enter continues, Escape exits.
func (a *App) handOver(msg string) {
	if err := termui.Init(); err != nil {
		a.Log.Fatal().Err(err).Msg("termui.Init")
	}
	defer termui.Close()

	passMsg := widgets.NewParagraph()
	passMsg.Text = msg
	passMsg.TextStyle = termui.NewStyle(termui.ColorYellow)
	passMsg.SetRect(0, 0, 80, 3)
	termui.Render(passMsg)

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

// placeFleet runs one player's whole setup session: for every pending ship
// it shows the grid so far and reads placements until the engine accepts
// one. Bad text and rejected placements only re-prompt; the engine state
// is untouched.
func (a *App) placeFleet(p game.Player) {
	if err := termui.Init(); err != nil {
		a.Log.Fatal().Err(err).Msg("termui.Init")
	}
	defer termui.Close()

	boardView := widgets.NewParagraph()
	boardView.Title = fmt.Sprintf("%s's waters", a.Nicks[p])
	boardView.SetRect(0, 4, 40, 17)

	placeInput := widgets.NewParagraph()
	placeInput.TextStyle = termui.NewStyle(termui.ColorYellow)
	placeInput.SetRect(0, 0, 80, 3)

	errorMsg := widgets.NewParagraph()
	errorMsg.TextStyle = termui.NewStyle(termui.ColorRed)
	errorMsg.SetRect(0, 18, 80, 21)

	uiEvents := termui.PollEvents()

	for a.Ctrl.Phase() == game.PhaseSetup && a.Ctrl.Active() == p {
		length := a.Ctrl.PendingLength()
		placeInput.Title = fmt.Sprintf("Place your ship of length %d, e.g. B4 right (up/down/left/right)", length)
		placeInput.Text = ""
		boardView.Text = boardText(a.Ctrl.Game().View(p))
		termui.Render(placeInput, boardView, errorMsg)

		input := ""
	inputLoop:
		for {
			ev := <-uiEvents
			if ev.Type != termui.KeyboardEvent {
				continue
			}
			switch ev.ID {
			case "<Enter>":
				start, dir, err := parsePlacement(input)
				if err != nil {
					errorMsg.Text = err.Error()
					termui.Render(errorMsg)
					input = ""
					placeInput.Text = ""
					termui.Render(placeInput)
					continue
				}
				if !a.Ctrl.Place(start, dir) {
					errorMsg.Text = "You can't place it there!"
					termui.Render(errorMsg)
					input = ""
					placeInput.Text = ""
					termui.Render(placeInput)
					continue
				}
				errorMsg.Text = ""
				break inputLoop
			case "<Escape>":
				a.exitByCtrlC()
			case "<Backspace>":
				if len(input) > 0 {
					input = input[:len(input)-1]
					placeInput.Text = input
					termui.Render(placeInput)
				}
			case "<Space>":
				input += " "
				placeInput.Text = input
				termui.Render(placeInput)
			default:
				if len(ev.ID) == 1 && len(input) < 10 {
					input += ev.ID
					placeInput.Text = input
					termui.Render(placeInput)
				}
			}
		}
	}
}
