package game

// Snake is an ordered body, head first, on a toroidal board
type Snake struct {
	body      []Point
	direction Direction
	growing   bool
	boardSize int
}

// NewSnake creates a single-segment snake at the board centre heading right
func NewSnake(boardSize int) *Snake {
	return &Snake{
		body:      []Point{{X: boardSize / 2, Y: boardSize / 2}},
		direction: Right,
		boardSize: boardSize,
	}
}

// Move advances the head one cell, wrapping at the edges. The tail is kept
// when growth is pending, and the pending flag is cleared.
func (s *Snake) Move() {
	newHead := s.wrap(s.body[0].Add(s.direction.Offset()))

	s.body = append([]Point{newHead}, s.body...)
	if !s.growing {
		s.body = s.body[:len(s.body)-1]
	}
	s.growing = false
}

func (s *Snake) wrap(p Point) Point {
	x := p.X % s.boardSize
	y := p.Y % s.boardSize
	if x < 0 {
		x += s.boardSize
	}
	if y < 0 {
		y += s.boardSize
	}
	return Point{X: x, Y: y}
}

// ChangeDirection sets the heading unless d reverses it. Reversals are dropped.
func (s *Snake) ChangeDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// SelfCollision reports whether the head overlaps any other segment
func (s *Snake) SelfCollision() bool {
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Grow makes the next Move keep the tail
func (s *Snake) Grow() {
	s.growing = true
}

// Head returns the head coordinate
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() Direction {
	return s.direction
}

// Growing reports whether growth is pending for the next move
func (s *Snake) Growing() bool {
	return s.growing
}
