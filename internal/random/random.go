package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/hangman/internal/random Roller

// Roller picks uniformly random indexes
type Roller interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Generator is the math/rand backed Roller. It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random index in [0, n). It returns 0 when n < 1.
func (g *Generator) Intn(n int) int {
	if n < 1 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.random.Intn(n)
}
