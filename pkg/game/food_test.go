package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRelocateStaysOnBoard(t *testing.T) {
	f := NewFood(10, rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		f.Relocate()
		p := f.Pos()
		if p.X < 0 || p.X >= 10 || p.Y < 0 || p.Y >= 10 {
			t.Fatalf("Food out of range: %v", p)
		}
	}
}

// TestRelocateCoversWholeGrid shows every cell is reachable, the snake's
// centre cell included
func TestRelocateCoversWholeGrid(t *testing.T) {
	f := NewFood(10, rand.New(rand.NewSource(7)))
	seen := make(map[Point]bool)
	for i := 0; i < 5000; i++ {
		f.Relocate()
		seen[f.Pos()] = true
	}
	if len(seen) != 100 {
		t.Errorf("Expected all 100 cells to be hit, got %d", len(seen))
	}
	if !seen[NewSnake(10).Head()] {
		t.Error("Food should be able to land on the snake")
	}
}

func TestRelocateDeterministic(t *testing.T) {
	a := NewFood(10, rand.New(rand.NewSource(99)))
	b := NewFood(10, rand.New(rand.NewSource(99)))
	for i := 0; i < 20; i++ {
		if a.Pos() != b.Pos() {
			t.Fatalf("Same seed should give same positions, got %v and %v", a.Pos(), b.Pos())
		}
		a.Relocate()
		b.Relocate()
	}
}
