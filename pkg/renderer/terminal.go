package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// TerminalRenderer redraws the whole frame with ANSI escapes on every change
type TerminalRenderer struct {
	out    io.Writer
	buffer strings.Builder

	cells     []game.CellState
	size      int
	score     int
	best      int
	roundOver bool
}

// NewTerminalRenderer creates a renderer writing frames to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

func (r *TerminalRenderer) DrawBoard(b *game.Board) {
	r.cells = b.Cells()
	r.size = b.Size()
	r.flush()
}

func (r *TerminalRenderer) DrawScore(score, best int) {
	r.score, r.best = score, best
	r.flush()
}

func (r *TerminalRenderer) SetRoundOver(over bool) {
	r.roundOver = over
	r.flush()
}

func (r *TerminalRenderer) flush() {
	if r.size == 0 {
		return
	}
	r.buffer.Reset()
	r.buffer.WriteString("\033[H\033[2J\033[3J")

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Best: %d\n\n", r.score, r.best))

	edge := strings.Repeat(config.CharEdge, r.size+2)
	r.buffer.WriteString("  " + edge + "\n")
	for y := 0; y < r.size; y++ {
		r.buffer.WriteString("  " + config.CharEdge)
		for x := 0; x < r.size; x++ {
			switch r.cells[y*r.size+x] {
			case game.CellSnake:
				r.buffer.WriteString(config.CharSnake)
			case game.CellFood:
				r.buffer.WriteString(config.CharFood)
			default:
				r.buffer.WriteString(config.CharEmpty)
			}
		}
		r.buffer.WriteString(config.CharEdge + "\n")
	}
	r.buffer.WriteString("  " + edge + "\n")

	r.buffer.WriteString("\n  SPACE to start, WASD or Arrow keys to move\n")
	r.buffer.WriteString("  Q to quit\n")
	if r.roundOver {
		r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart or Q to quit\n")
	}

	io.WriteString(r.out, r.buffer.String())
}
