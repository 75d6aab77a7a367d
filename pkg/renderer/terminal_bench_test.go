package renderer

import (
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/gridsnake/pkg/game"
	"golang.org/x/exp/rand"
)

func benchBoard() *game.Board {
	b := game.NewBoard(10)
	s := game.NewSnake(10)
	for i := 0; i < 6; i++ {
		s.Grow()
		s.Move()
	}
	b.Render(s, game.NewFood(10, rand.New(rand.NewSource(1))))
	return b
}

// BenchmarkStringBuilderRender measures one buffered ANSI frame
func BenchmarkStringBuilderRender(b *testing.B) {
	board := benchBoard()
	r := NewTerminalRenderer(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.DrawBoard(board)
	}
}

// BenchmarkScreenRender measures one tcell frame on a simulation screen
func BenchmarkScreenRender(b *testing.B) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		b.Fatal(err)
	}
	defer s.Fini()
	board := benchBoard()
	r := NewScreenRenderer(s)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.DrawBoard(board)
	}
}
