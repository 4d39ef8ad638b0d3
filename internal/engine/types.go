package engine

import (
	"github.com/KirkDiggler/hangman/internal/common/clock"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/random"
)

// Placeholder is shown in the masked word for letters not yet revealed
const Placeholder = '_'

// Config holds the parameters of a new round
type Config struct {
	// Secret is the word to guess; it is lowercased before validation
	Secret string

	// Lives is the number of penalties tolerated before the round is lost
	Lives int

	// Difficulty selects the score multiplier
	Difficulty models.Difficulty

	// Category is the category the secret came from
	Category string

	// Service dependencies
	Roller random.Roller
	Clock  clock.Clock
}

// RestoreConfig holds the dependencies used to rebuild a saved round
type RestoreConfig struct {
	Roller random.Roller
	Clock  clock.Clock
}
