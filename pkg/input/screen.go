package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// FromTcell maps a full-screen key event to a game action
func FromTcell(ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ActionUp
	case tcell.KeyDown:
		return game.ActionDown
	case tcell.KeyLeft:
		return game.ActionLeft
	case tcell.KeyRight:
		return game.ActionRight
	case tcell.KeyEnter:
		return game.ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionQuit
	case tcell.KeyRune:
		return parseRune(ev.Rune())
	}
	return game.ActionNone
}

// PollScreen forwards key events from screen as actions. It stops after a
// quit action or when the screen is finalised.
func PollScreen(screen tcell.Screen) <-chan game.Action {
	out := make(chan game.Action)
	go func() {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			a := FromTcell(key)
			if a == game.ActionNone {
				continue
			}
			out <- a
			if a == game.ActionQuit {
				return
			}
		}
	}()
	return out
}
