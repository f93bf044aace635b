package service

import (
	"fmt"
	"math/rand"
	"sync"

	"sonar/internal/config"
	"sonar/internal/game"

	"github.com/rs/zerolog/log"
)

// Service is a state manager for active games, keyed by game ID. The
// terminal entrypoint runs one game per process; the registry shape
// keeps creation and teardown symmetric anyway.
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
}

func New() *Service {
	return &Service{
		games: make(map[string]*game.Game),
	}
}

// CreateGame validates cfg, builds a game, and registers it. The rng
// is optional; tests pass a seeded source.
func (s *Service) CreateGame(cfg *config.Config, rng *rand.Rand) (*game.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure ID uniqueness (handle potential UUID conflicts)
	var g *game.Game
	for {
		g = game.New(cfg, rng)
		if _, exists := s.games[g.ID()]; !exists {
			break
		}
	}
	s.games[g.ID()] = g

	log.Debug().
		Str("game_id", g.ID()).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("ships", g.ShipsRemaining()).
		Int("max_moves", g.MaxMoves()).
		Msg("game created")

	return g, nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}
	delete(s.games, gameID)

	log.Debug().
		Str("game_id", gameID).
		Str("status", g.Status().String()).
		Int("moves_made", g.MovesMade()).
		Msg("game deleted")

	return nil
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)
	return nil
}
