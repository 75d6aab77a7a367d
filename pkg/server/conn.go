package server

import (
	"log"

	"github.com/gorilla/websocket"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// Conn wraps one browser socket. Only the handler goroutine writes to it,
// which also runs the game loop; readLoop only reads.
type Conn struct {
	ID string
	ws *websocket.Conn
}

// Send writes msg as JSON
func (c *Conn) Send(msg ServerMessage) error {
	return c.ws.WriteJSON(msg)
}

// socketDisplay turns game display calls into state frames
type socketDisplay struct {
	conn  *Conn
	state State
}

func (d *socketDisplay) DrawBoard(b *game.Board) {
	d.state.Cells = b.Cells()
	d.push()
}

func (d *socketDisplay) DrawScore(score, best int) {
	d.state.Score, d.state.Best = score, best
	d.push()
}

func (d *socketDisplay) SetRoundOver(over bool) {
	d.state.Over = over
	d.push()
}

func (d *socketDisplay) push() {
	if d.state.Cells == nil {
		return
	}
	state := d.state
	if err := d.conn.Send(ServerMessage{Type: MsgState, State: &state}); err != nil {
		log.Printf("write error (%s): %v", d.conn.ID, err)
	}
}
