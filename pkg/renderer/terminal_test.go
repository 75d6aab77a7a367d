package renderer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
	"golang.org/x/exp/rand"
)

func newGame(t *testing.T, d game.Display) *game.Game {
	t.Helper()
	g, err := game.NewGame(context.Background(), game.Config{
		BoardSize: 10,
		Rand:      rand.New(rand.NewSource(1)),
	}, d, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestTerminalRendererFrame(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out)
	g := newGame(t, r)

	frame := out.String()
	if !strings.HasPrefix(frame, "\033[H\033[2J") {
		t.Error("Frame should start by clearing the screen")
	}
	if !strings.Contains(frame, "Score: 0  |  Best: 0") {
		t.Errorf("Frame should show scores, got:\n%s", frame)
	}
	if n := strings.Count(frame, config.CharSnake); n != 1 {
		t.Errorf("Expected one snake cell, got %d", n)
	}
	if g.Food().Pos() != g.Snake().Head() && strings.Count(frame, config.CharFood) != 1 {
		t.Error("Expected one food cell")
	}
	if strings.Contains(frame, "GAME OVER") {
		t.Error("Fresh round should not show game over")
	}

	out.Reset()
	r.SetRoundOver(true)
	if !strings.Contains(out.String(), "GAME OVER") {
		t.Error("Round-over affordance should be drawn")
	}

	out.Reset()
	r.DrawScore(3, 8)
	if !strings.Contains(out.String(), "Score: 3  |  Best: 8") {
		t.Error("Score update should redraw the header")
	}
}

func TestTerminalRendererSkipsUntilBoardKnown(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out)
	r.DrawScore(1, 2)
	if out.Len() != 0 {
		t.Error("Nothing should be written before the first board")
	}
}

func screenRune(t *testing.T, s tcell.Screen, x, y int) rune {
	t.Helper()
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestScreenRenderer(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(40, 20)

	r := NewScreenRenderer(s)
	g := newGame(t, r)

	hx, hy := CellOrigin(g.Snake().Head())
	head := config.RuneSnake
	if g.Food().Pos() == g.Snake().Head() {
		head = config.RuneFood
	}
	if got := screenRune(t, s, hx, hy); got != head {
		t.Errorf("Expected %q at head, got %q", head, got)
	}
	fx, fy := CellOrigin(g.Food().Pos())
	if got := screenRune(t, s, fx, fy); got != config.RuneFood {
		t.Errorf("Expected food at %v, got %q", g.Food().Pos(), got)
	}
	if got := screenRune(t, s, 0, boardTop-1); got != tcell.RuneULCorner {
		t.Errorf("Expected border corner, got %q", got)
	}

	r.SetRoundOver(true)
	w, _ := s.Size()
	var row strings.Builder
	y := boardTop + 10 + 3
	for x := 0; x < w; x++ {
		row.WriteRune(screenRune(t, s, x, y))
	}
	if !strings.Contains(row.String(), "GAME OVER") {
		t.Errorf("Expected game over line, got %q", row.String())
	}
}
