package server

import "github.com/trytobebee/gridsnake/pkg/game"

// Message types sent to the browser
const (
	MsgConfig = "config"
	MsgState  = "state"
)

// ServerMessage is the envelope for everything sent to the browser
type ServerMessage struct {
	Type    string            `json:"type"`
	Session string            `json:"session,omitempty"`
	Config  *game.BoardConfig `json:"config,omitempty"`
	State   *State            `json:"state,omitempty"`
}

// State is what the page needs to draw one frame
type State struct {
	Cells []game.CellState `json:"cells"` // Row-major, 0 empty, 1 snake, 2 food
	Score int              `json:"score"`
	Best  int              `json:"best"`
	Over  bool             `json:"over"`
}

// ClientMessage carries one action name from the browser
type ClientMessage struct {
	Action string `json:"action"`
}
