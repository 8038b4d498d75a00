// Package app implements the game service: every player-facing operation,
// composed from the progression mechanics, the content catalogs and the
// record store. All mutating operations serialize on one mutex, so each
// runs against the latest stored state and partial writes cannot
// interleave.
package app

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/storage"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/random"
)

// Cooldown windows for the gated operations.
const (
	WorkCooldown       = time.Hour
	DailyCooldown      = 24 * time.Hour
	ExpeditionCooldown = 3 * time.Hour
	ActCooldown        = 12 * time.Hour
)

// Service exposes the game operations over a record store and a loaded
// content set.
type Service struct {
	store   storage.Store
	content *content.Content

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRand overrides the random source. Tests inject seeded sources for
// deterministic outcomes.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service. Without options it uses a crypto-seeded random
// source and the wall clock.
func New(store storage.Store, contentSet *content.Content, opts ...Option) (*Service, error) {
	s := &Service{
		store:   store,
		content: contentSet,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	return s, nil
}
