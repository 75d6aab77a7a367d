package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/trytobebee/gridsnake/pkg/config"
	"golang.org/x/exp/rand"
)

// Display receives every visible change of the game
type Display interface {
	DrawBoard(b *Board)
	DrawScore(score, best int)
	SetRoundOver(over bool)
}

// ScoreStore persists the best score across processes
type ScoreStore interface {
	LoadBest(ctx context.Context) (int, error)
	SaveBest(ctx context.Context, best int) error
}

// Config tunes a Game. Zero fields take the config package defaults.
type Config struct {
	BoardSize    int
	TickInterval time.Duration
	Rand         *rand.Rand
	NewTicker    func(time.Duration) Ticker
	OnRoundEnd   func(RoundResult) // Optional, called once per finished round
}

// Game is the controller: it owns one round of state and the tick task.
// All methods must be called from a single goroutine, normally via Run.
type Game struct {
	cfg     Config
	display Display
	store   ScoreStore

	board  *Board
	snake  *Snake
	food   *Food
	score  int
	best   int
	status Status

	round     int
	startedAt time.Time
	ticker    Ticker
}

// NewGame loads the best score and builds the first round without starting it.
// A nil store keeps the best score in memory only.
func NewGame(ctx context.Context, cfg Config, display Display, store ScoreStore) (*Game, error) {
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = config.BoardSize
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = config.TickInterval
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if cfg.NewTicker == nil {
		cfg.NewTicker = NewTimeTicker
	}

	g := &Game{
		cfg:     cfg,
		display: display,
		store:   store,
		board:   NewBoard(cfg.BoardSize),
	}

	if store != nil {
		best, err := store.LoadBest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load best score: %w", err)
		}
		g.best = best
	}

	g.resetRound()
	g.display.DrawScore(g.score, g.best)
	g.renderBoard()
	return g, nil
}

func (g *Game) resetRound() {
	g.snake = NewSnake(g.cfg.BoardSize)
	g.food = NewFood(g.cfg.BoardSize, g.cfg.Rand)
	g.score = 0
	g.status = StatusIdle
}

func (g *Game) renderBoard() {
	g.board.Render(g.snake, g.food)
	g.display.DrawBoard(g.board)
}

// StartRound cancels any scheduled tick, rebuilds the snake and food, resets
// the score and schedules a fresh tick task.
func (g *Game) StartRound(ctx context.Context) {
	g.stopTicker()
	g.resetRound()
	g.display.DrawScore(g.score, g.best)
	g.renderBoard()
	g.schedule()
}

// schedule starts the tick task. Round numbers count started rounds only.
func (g *Game) schedule() {
	g.round++
	g.ticker = g.cfg.NewTicker(g.cfg.TickInterval)
	g.startedAt = time.Now()
	g.status = StatusRunning
}

func (g *Game) stopTicker() {
	if g.ticker != nil {
		g.ticker.Stop()
		g.ticker = nil
	}
}

// Tick advances the round by one move. It does nothing unless the round is running.
func (g *Game) Tick(ctx context.Context) {
	if g.status != StatusRunning {
		return
	}

	g.snake.Move()
	if g.snake.SelfCollision() {
		g.EndRound(ctx)
		return
	}

	if g.snake.Head() == g.food.Pos() {
		g.snake.Grow()
		g.food.Relocate()
		g.score++
		g.display.DrawScore(g.score, g.best)
	}
	g.renderBoard()
}

// EndRound stops ticking, persists an improved best score and shows the
// round-over affordance.
func (g *Game) EndRound(ctx context.Context) {
	g.stopTicker()
	g.status = StatusOver

	prevBest := g.best
	newBest := g.score > g.best
	if newBest {
		g.best = g.score
		if g.store != nil {
			if err := g.store.SaveBest(ctx, g.best); err != nil {
				log.Printf("failed to save best score %d: %v", g.best, err)
			}
		}
	}
	// The store may be shared, so another player can hold a higher best
	if g.store != nil {
		if stored, err := g.store.LoadBest(ctx); err != nil {
			log.Printf("failed to reload best score: %v", err)
		} else if stored > g.best {
			g.best = stored
			newBest = false
		}
	}
	if g.best != prevBest {
		g.display.DrawScore(g.score, g.best)
	}
	g.display.SetRoundOver(true)

	if g.cfg.OnRoundEnd != nil {
		g.cfg.OnRoundEnd(RoundResult{
			Round:     g.round,
			Score:     g.score,
			Best:      g.best,
			NewBest:   newBest,
			Length:    g.snake.Len(),
			StartedAt: g.startedAt,
			EndedAt:   time.Now(),
		})
	}
}

// OnDirectionKey applies a heading change; the latest key wins
func (g *Game) OnDirectionKey(d Direction) {
	g.snake.ChangeDirection(d)
}

// Activate starts the idle round. Activating a running or finished round is ignored.
func (g *Game) Activate(ctx context.Context) {
	if g.status != StatusIdle {
		return
	}
	g.schedule()
}

// OnRestartRequested hides the round-over affordance and starts a new round
func (g *Game) OnRestartRequested(ctx context.Context) {
	g.display.SetRoundOver(false)
	g.StartRound(ctx)
}

// Handle dispatches one action. It returns false when the player quits.
func (g *Game) Handle(ctx context.Context, a Action) bool {
	if d, ok := a.Direction(); ok {
		g.OnDirectionKey(d)
		return true
	}
	switch a {
	case ActionStart:
		g.Activate(ctx)
	case ActionRestart:
		g.OnRestartRequested(ctx)
	case ActionQuit:
		return false
	}
	return true
}

// tickC returns the channel of the scheduled task, or nil when nothing is scheduled
func (g *Game) tickC() <-chan time.Time {
	if g.ticker == nil {
		return nil
	}
	return g.ticker.C()
}

// Run is the game's event loop. Actions and ticks are handled on the calling
// goroutine only. It returns nil when actions closes or a quit arrives.
func (g *Game) Run(ctx context.Context, actions <-chan Action) error {
	defer g.stopTicker()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-actions:
			if !ok || !g.Handle(ctx, a) {
				return nil
			}
		case <-g.tickC():
			g.Tick(ctx)
		}
	}
}

func (g *Game) Score() int { return g.score }
func (g *Game) Best() int { return g.best }
func (g *Game) Status() Status { return g.status }
func (g *Game) Round() int { return g.round }
func (g *Game) Snake() *Snake { return g.snake }
func (g *Game) Food() *Food { return g.food }
func (g *Game) Board() *Board { return g.board }

// BoardConfig describes the board for clients
func (g *Game) BoardConfig() BoardConfig {
	return BoardConfig{
		Size:   g.cfg.BoardSize,
		TickMs: g.cfg.TickInterval.Milliseconds(),
	}
}
