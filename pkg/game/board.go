package game

// Board is the display surface: a fixed square grid of cells
type Board struct {
	size  int
	cells []CellState
}

// NewBoard creates an empty board with size*size cells
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]CellState, size*size),
	}
}

// Size returns the number of cells per side
func (b *Board) Size() int {
	return b.size
}

// Render clears every cell, then marks the snake body and the food.
// Food is marked last so it stays visible when it lies under the body.
// Coordinates outside the grid panic.
func (b *Board) Render(s *Snake, f *Food) {
	for i := range b.cells {
		b.cells[i] = CellEmpty
	}
	for _, p := range s.body {
		b.cells[b.index(p)] = CellSnake
	}
	b.cells[b.index(f.pos)] = CellFood
}

// At returns the state of the cell at p
func (b *Board) At(p Point) CellState {
	return b.cells[b.index(p)]
}

// Cells returns a row-major copy of the grid (index y*size+x)
func (b *Board) Cells() []CellState {
	out := make([]CellState, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Board) index(p Point) int {
	if p.X < 0 || p.X >= b.size || p.Y < 0 || p.Y >= b.size {
		panic("game: point " + p.String() + " outside board")
	}
	return p.Y*b.size + p.X
}
