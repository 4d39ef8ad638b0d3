package game

import (
	"github.com/KirkDiggler/hangman/internal/common/clock"
	"github.com/KirkDiggler/hangman/internal/common/uuid"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/random"
	ledgerRepo "github.com/KirkDiggler/hangman/internal/repositories/ledger"
	saveRepo "github.com/KirkDiggler/hangman/internal/repositories/save"
)

// WordCatalog resolves categories to secret words
type WordCatalog interface {
	// PickWord returns the resolved category and a word from it
	PickWord(category string) (string, string)

	// Categories returns the known category names
	Categories() []string
}

// Config holds configuration for the game service
type Config struct {
	// Catalog supplies secret words for single-player rounds
	Catalog WordCatalog

	// Repository dependencies
	LedgerRepo ledgerRepo.Repository
	SaveRepo   saveRepo.Repository

	// Service dependencies
	Roller        random.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// RoundView is the read-only state of a round that drivers render
type RoundView struct {
	// Masked is the secret with unrevealed letters as underscores, space separated
	Masked string

	// WrongLetters are the missed letters in alphabetical order
	WrongLetters []string

	// Lives is the lives budget of the round
	Lives int

	// RemainingLives is never negative
	RemainingLives int

	// HintsUsed is the number of hints taken
	HintsUsed int

	// Status is in_progress, won or lost
	Status models.GameStatus

	// Secret is only set once the round is finished
	Secret string

	Difficulty models.Difficulty
	Category   string
}

// ListCategoriesOutput contains the available categories
type ListCategoriesOutput struct {
	Categories []string
}

// StartRoundInput contains parameters for starting a round
type StartRoundInput struct {
	// Category picks the word list; empty or unknown means random
	Category string

	// CustomWord is the secret supplied by player one in two-player mode.
	// When set, Category is ignored.
	CustomWord string

	// Difficulty selects lives and score multiplier; empty means Normal
	Difficulty models.Difficulty

	// CustomLives is required for the Custom difficulty
	CustomLives int
}

// StartRoundOutput contains the new round
type StartRoundOutput struct {
	Round *RoundView
}

// GuessInput contains a letter guess
type GuessInput struct {
	Letter string
}

// GuessOutput contains the result of a guess
type GuessOutput struct {
	// Correct is true when the letter is in the secret
	Correct bool

	Round *RoundView
}

// UseHintOutput contains the revealed letter
type UseHintOutput struct {
	Letter string

	Round *RoundView
}

// GetRoundOutput contains the active round
type GetRoundOutput struct {
	Round *RoundView
}

// ResumeRoundOutput reports whether a saved round was resumed
type ResumeRoundOutput struct {
	// Found is false when there was no usable save
	Found bool

	Round *RoundView
}

// RoundResult summarizes a finished round
type RoundResult struct {
	Secret     string
	Won        bool
	Score      int
	Difficulty models.Difficulty
	Category   string
}

// EndRoundOutput contains the result of the finished round
type EndRoundOutput struct {
	Result *RoundResult
}

// RecordScoreInput contains parameters for recording a score
type RecordScoreInput struct {
	// PlayerName is truncated to 20 characters
	PlayerName string

	Result *RoundResult
}

// RecordScoreOutput contains the recorded entry
type RecordScoreOutput struct {
	Entry *models.LeaderboardEntry
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries; zero or less returns all
	Limit int
}

// GetLeaderboardOutput contains the ranked entries
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}
