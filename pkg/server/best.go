package server

import (
	"context"
	"sync"

	"github.com/trytobebee/gridsnake/pkg/game"
)

// sharedBest lets many connections share one store. A connection that loaded
// an older best must not overwrite a higher score saved by another one.
type sharedBest struct {
	store game.ScoreStore
	mu    sync.Mutex
}

func (s *sharedBest) LoadBest(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadBest(ctx)
}

func (s *sharedBest) SaveBest(ctx context.Context, best int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.store.LoadBest(ctx)
	if err != nil {
		return err
	}
	if best <= current {
		return nil
	}
	return s.store.SaveBest(ctx, best)
}
