package config

import (
	"os"
	"time"
)

// Game board and timing
const (
	BoardSize    = 10                     // Cells per side, the board is square
	TickInterval = 500 * time.Millisecond // Time between snake moves
)

// Persistence settings
const (
	BestScoreKey  = "highScore"    // Key of the best score entry in the kv table
	DefaultDBPath = "data/game.db" // SQLite file holding the kv table
)

// Server settings
const (
	DefaultAddr   = ":8080"
	WebSocketPath = "/ws"
	RecordDir     = "records" // Round history directory
)

// Characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharSnake = "🟩"
	CharFood  = "🔴"
	CharEdge  = "⬜"
)

// Runes for the full-screen renderer (one cell per board column pair)
const (
	RuneSnake = '█'
	RuneFood  = '●'
	RuneEmpty = '·'
)

// Options holds process-level settings. Board size and tick interval are fixed
// for the lifetime of a process.
type Options struct {
	BoardSize    int
	TickInterval time.Duration
	DBPath       string
	Addr         string
	StaticDir    string // Empty means the embedded page
	RecordDir    string // Empty disables round history
}

// Default returns the reference settings: a 10x10 board ticking every 500ms.
func Default() Options {
	return Options{
		BoardSize:    BoardSize,
		TickInterval: TickInterval,
		DBPath:       DefaultDBPath,
		Addr:         DefaultAddr,
	}
}

// FromEnv applies GRIDSNAKE_* environment overrides on top of o.
func FromEnv(o Options) Options {
	if v := os.Getenv("GRIDSNAKE_DB"); v != "" {
		o.DBPath = v
	}
	if v := os.Getenv("GRIDSNAKE_ADDR"); v != "" {
		o.Addr = v
	}
	if v := os.Getenv("GRIDSNAKE_STATIC_DIR"); v != "" {
		o.StaticDir = v
	}
	if v := os.Getenv("GRIDSNAKE_RECORD_DIR"); v != "" {
		o.RecordDir = v
	}
	return o
}
