package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hangman/internal/services/game Service

import "context"

// Service defines the interface for playing rounds of hangman
type Service interface {
	// ListCategories returns the categories a round can be started from
	ListCategories(ctx context.Context) (*ListCategoriesOutput, error)

	// StartRound begins a new round, replacing any round in memory
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// Guess submits a letter for the active round
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// UseHint reveals a letter of the active round at the cost of a life
	UseHint(ctx context.Context) (*UseHintOutput, error)

	// GetRound returns the observable state of the active round
	GetRound(ctx context.Context) (*GetRoundOutput, error)

	// SaveRound persists the active round so it can be resumed later
	SaveRound(ctx context.Context) error

	// HasSavedRound reports whether a usable save exists
	HasSavedRound(ctx context.Context) bool

	// ResumeRound makes the saved round the active round
	ResumeRound(ctx context.Context) (*ResumeRoundOutput, error)

	// EndRound scores a finished round, clears its save and releases it
	EndRound(ctx context.Context) (*EndRoundOutput, error)

	// RecordScore adds a finished round to the leaderboard
	RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error)

	// GetLeaderboard returns the best recorded scores
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
