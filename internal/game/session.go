// Package game owns the lifecycle of the current game. A Session holds at
// most one engine plus its price source and serializes all access behind a
// mutex, since the engine itself is not safe for concurrent callers.
package game

import (
	"errors"
	"sync"

	"botwars/internal/engine"
	"botwars/internal/prices"
)

// ErrNoGame is returned when Tick or State is called before NewGame.
var ErrNoGame = errors.New("no game in progress")

// Session is the explicitly owned "current game" handle that transports
// call through. A fresh Session has no game until NewGame is called.
type Session struct {
	mu  sync.Mutex
	cfg Config
	src engine.PriceSource
	eng *engine.Engine
}

// NewSession creates a session with the given configuration. The price
// source is built once and shared across games, keeping its quote cache
// warm through resets.
func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg, src: sourceFor(cfg.PriceSource)}
}

// NewGame discards any game in progress and starts a fresh one, returning
// its initial snapshot.
func (s *Session) NewGame() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eng = engine.New(s.cfg.Engine, s.src)
	return s.eng.Snapshot()
}

// Tick advances the current game by one sub-tick.
func (s *Session) Tick() (engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eng == nil {
		return engine.Snapshot{}, ErrNoGame
	}
	return s.eng.Tick(), nil
}

// State returns the current snapshot without advancing the game.
func (s *Session) State() (engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eng == nil {
		return engine.Snapshot{}, ErrNoGame
	}
	return s.eng.Snapshot(), nil
}

func sourceFor(name string) engine.PriceSource {
	switch name {
	case SourceBinance:
		return prices.Binance()
	case SourceStatic:
		return prices.Static()
	default:
		return prices.CoinGecko()
	}
}
