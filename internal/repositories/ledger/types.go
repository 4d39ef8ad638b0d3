package ledger

import "github.com/KirkDiggler/hangman/internal/models"

type RecordInput struct {
	Entry *models.LeaderboardEntry
}

type TopNInput struct {
	// Limit caps the number of entries returned; zero or less returns all
	Limit int
}

type TopNOutput struct {
	Entries []*models.LeaderboardEntry
}
