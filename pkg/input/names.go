package input

import "github.com/trytobebee/gridsnake/pkg/game"

var actionNames = map[string]game.Action{
	"up":      game.ActionUp,
	"down":    game.ActionDown,
	"left":    game.ActionLeft,
	"right":   game.ActionRight,
	"start":   game.ActionStart,
	"restart": game.ActionRestart,
}

// FromName maps a browser action name. Quit is not accepted from clients.
func FromName(name string) game.Action {
	return actionNames[name]
}
