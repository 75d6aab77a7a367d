package game

import (
	"fmt"
	"time"
)

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the heading of the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Offset returns the unit step for the heading. Y grows downwards.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// CellState is the visual state of a board cell
type CellState int

const (
	CellEmpty CellState = iota
	CellSnake
	CellFood
)

// Status is the lifecycle of the current round
type Status int

const (
	StatusIdle    Status = iota // Round built, waiting for the player to start it
	StatusRunning               // Tick task scheduled
	StatusOver                  // Round ended, restart available
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Action is a user intent delivered to the game loop
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStart
	ActionRestart
	ActionQuit
)

// Direction reports the heading carried by a directional action
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return 0, false
}

// RoundResult summarises a finished round
type RoundResult struct {
	Round     int       `json:"round"`
	Score     int       `json:"score"`
	Best      int       `json:"best"`
	NewBest   bool      `json:"newBest"`
	Length    int       `json:"length"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}

// BoardConfig is sent to clients on connect
type BoardConfig struct {
	Size   int   `json:"size"`
	TickMs int64 `json:"tickMs"`
}
