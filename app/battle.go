package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dariubs/percent"
	gui "github.com/grupawp/warships-gui/v2"

	"warships/game"
)

const (
	missDelay = time.Second
	yBoards   = 8
	xPBoard   = 1
	xOBoard   = 50
)

var pCtx = context.Background()

// buildBattlefield lays out the combat screen for the active player: own
// board on the left, the tracking board of the opponent's waters on the
// right.
func (a *App) buildBattlefield(ui *gui.GUI, p game.Player) *GuiBattle {
	guiBattle := GuiBattle{Ui: ui}
	opp := p.Opponent()

	accConfig := gui.TextConfig{BgColor: gui.Grey, FgColor: gui.Blue}
	pAcc := gui.NewText(xPBoard, yBoards-7, "Accuracy", &accConfig)
	ui.Draw(pAcc)
	guiBattle.PlayerAccuracy = pAcc

	exit := gui.NewText(xPBoard, yBoards-6, "To exit press CTRL+C", nil)
	ui.Draw(exit)
	guiBattle.Exit = exit

	shouldFire := gui.NewText(xPBoard, yBoards-4, "Fire!", nil)
	shouldFire.SetBgColor(gui.Black)
	shouldFire.SetFgColor(gui.Green)
	ui.Draw(shouldFire)
	guiBattle.ShouldFire = shouldFire

	shotRes := gui.NewText(xPBoard, yBoards-2, "", nil)
	ui.Draw(shotRes)
	guiBattle.ShotResult = shotRes

	pBoard := gui.NewBoard(xPBoard, yBoards, nil)
	ui.Draw(pBoard)
	guiBattle.PlayerBoard = pBoard
	guiBattle.PlayerBoardStates = ownBoardStates(a.Ctrl.Game().View(p))
	pBoard.SetStates(guiBattle.PlayerBoardStates)

	oBoard := gui.NewBoard(xOBoard, yBoards, nil)
	ui.Draw(oBoard)
	guiBattle.OpponentBoard = oBoard
	guiBattle.OpponentBoardStates = trackingStates(a.Ctrl.Game().View(opp))
	oBoard.SetStates(guiBattle.OpponentBoardStates)

	nickConfig := gui.TextConfig{BgColor: gui.Black, FgColor: gui.White}
	pNick := gui.NewText(xPBoard, yBoards+22, a.Nicks[p], &nickConfig)
	ui.Draw(pNick)
	guiBattle.PlayerNick = pNick
	oNick := gui.NewText(xOBoard, yBoards+22, a.Nicks[opp], &nickConfig)
	ui.Draw(oNick)
	guiBattle.OpponentNick = oNick

	a.updateAccuracy(&guiBattle, p)
	return &guiBattle
}

func (a *App) updateAccuracy(guiB *GuiBattle, p game.Player) {
	if a.shots[p] == 0 {
		guiB.PlayerAccuracy.SetText("Accuracy: -")
		return
	}
	guiB.PlayerAccuracy.SetText(fmt.Sprintf("Accuracy: %d/%d (%.0f%%)",
		a.hits[p], a.shots[p], percent.PercentOf(a.hits[p], a.shots[p])))
}

// playTurn runs one player's stretch of the combat phase on its own
// battle screen. Hits keep the screen alive for a follow-up shot; the
// screen closes when the player misses or wins.
func (a *App) playTurn() {
	p := a.Ctrl.Active()
	ctx, cancelCtx := context.WithCancel(pCtx)
	ui := gui.NewGUI(true)
	guiB := a.buildBattlefield(ui, p)
	go a.takeShots(guiB, p, ctx, cancelCtx)
	ui.Start(ctx, nil)
}

func (a *App) takeShots(guiB *GuiBattle, p game.Player, ctx context.Context, cancelCtx context.CancelFunc) {
	for {
		char := guiB.OpponentBoard.Listen(ctx)
		select {
		case <-ctx.Done():
			return
		default:
		}
		target, err := stringCoordToCoord(char)
		if err != nil {
			continue
		}
		for !a.Ctrl.Game().IsValidShot(p, target) {
			guiB.ShouldFire.SetText("You can't fire there!")
			guiB.ShouldFire.SetFgColor(gui.Red)
			char = guiB.OpponentBoard.Listen(ctx)
			select {
			case <-ctx.Done():
				return
			default:
			}
			if target, err = stringCoordToCoord(char); err != nil {
				continue
			}
		}

		out, ok := a.Ctrl.Fire(target)
		if !ok {
			continue
		}
		a.shots[p]++
		if out.Result == game.Hit {
			a.hits[p]++
			guiB.OpponentBoardStates[target.X][target.Y] = gui.Hit
		} else {
			guiB.OpponentBoardStates[target.X][target.Y] = gui.Miss
		}
		guiB.OpponentBoard.SetStates(guiB.OpponentBoardStates)
		a.updateAccuracy(guiB, p)

		res := out.Result.String()
		if out.Sunk {
			res = "sunk"
		}
		guiB.ShotResult.SetText(fmt.Sprintf("%s, %s on %s", a.Nicks[p], res, char))

		if out.Won {
			guiB.ShouldFire.SetText(fmt.Sprintf("Winner: %s", a.Nicks[p]))
			guiB.ShouldFire.SetFgColor(gui.Green)
			time.Sleep(missDelay)
			cancelCtx()
			return
		}
		if out.Result == game.Miss {
			guiB.ShouldFire.SetText("Miss - turn passes")
			guiB.ShouldFire.SetFgColor(gui.White)
			time.Sleep(missDelay)
			cancelCtx()
			return
		}
		guiB.ShouldFire.SetText("Hit! Fire again")
		guiB.ShouldFire.SetFgColor(gui.Green)
	}
}
