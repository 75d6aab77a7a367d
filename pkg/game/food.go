package game

import "golang.org/x/exp/rand"

// Food is a single item on the board
type Food struct {
	pos       Point
	boardSize int
	rng       *rand.Rand
}

// NewFood creates food at a random position drawn from rng
func NewFood(boardSize int, rng *rand.Rand) *Food {
	f := &Food{boardSize: boardSize, rng: rng}
	f.Relocate()
	return f
}

// Relocate picks each axis uniformly over the whole board. Cells under the
// snake are not excluded.
func (f *Food) Relocate() {
	f.pos = Point{
		X: f.rng.Intn(f.boardSize),
		Y: f.rng.Intn(f.boardSize),
	}
}

// Pos returns the food coordinate
func (f *Food) Pos() Point {
	return f.pos
}
