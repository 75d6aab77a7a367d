package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// Board placement on the screen. Each board cell is two columns wide.
const (
	boardLeft = 1
	boardTop  = 3
)

var (
	styleDefault = tcell.StyleDefault
	styleSnake   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOver    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// ScreenRenderer draws the game full-screen through tcell
type ScreenRenderer struct {
	screen tcell.Screen

	cells     []game.CellState
	size      int
	score     int
	best      int
	roundOver bool
}

// NewScreenRenderer wraps an initialised screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

func (r *ScreenRenderer) DrawBoard(b *game.Board) {
	r.cells = b.Cells()
	r.size = b.Size()
	r.draw()
}

func (r *ScreenRenderer) DrawScore(score, best int) {
	r.score, r.best = score, best
	r.draw()
}

func (r *ScreenRenderer) SetRoundOver(over bool) {
	r.roundOver = over
	r.draw()
}

// CellOrigin returns the screen column and row of the left half of board cell p
func CellOrigin(p game.Point) (int, int) {
	return boardLeft + 2*p.X, boardTop + p.Y
}

func (r *ScreenRenderer) draw() {
	if r.size == 0 {
		return
	}
	r.screen.Clear()

	r.text(1, 0, fmt.Sprintf("SNAKE   Score: %d   Best: %d", r.score, r.best), styleDefault)

	right := boardLeft + 2*r.size
	bottom := boardTop + r.size
	for x := boardLeft - 1; x <= right; x++ {
		r.screen.SetContent(x, boardTop-1, tcell.RuneHLine, nil, styleDefault)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleDefault)
	}
	for y := boardTop - 1; y <= bottom; y++ {
		r.screen.SetContent(boardLeft-1, y, tcell.RuneVLine, nil, styleDefault)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, styleDefault)
	}
	r.screen.SetContent(boardLeft-1, boardTop-1, tcell.RuneULCorner, nil, styleDefault)
	r.screen.SetContent(right, boardTop-1, tcell.RuneURCorner, nil, styleDefault)
	r.screen.SetContent(boardLeft-1, bottom, tcell.RuneLLCorner, nil, styleDefault)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleDefault)

	for i, c := range r.cells {
		x, y := CellOrigin(game.Point{X: i % r.size, Y: i / r.size})
		ch, style := config.RuneEmpty, styleEmpty
		switch c {
		case game.CellSnake:
			ch, style = config.RuneSnake, styleSnake
		case game.CellFood:
			ch, style = config.RuneFood, styleFood
		}
		r.screen.SetContent(x, y, ch, nil, style)
		if c == game.CellSnake {
			r.screen.SetContent(x+1, y, ch, nil, style)
		} else {
			r.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	r.text(1, bottom+2, "Enter/Space start  Arrows/WASD move  Q quit", styleDefault)
	if r.roundOver {
		r.text(1, bottom+3, "GAME OVER - press R to restart", styleOver)
	}
	r.screen.Show()
}

func (r *ScreenRenderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
