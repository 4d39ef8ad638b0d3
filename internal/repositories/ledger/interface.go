package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hangman/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for leaderboard persistence
type Repository interface {
	// Record adds an entry, keeping the best MaxLeaderboardEntries by score
	Record(ctx context.Context, input *RecordInput) error

	// TopN returns the highest scores first, ties in insertion order
	TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error)
}
