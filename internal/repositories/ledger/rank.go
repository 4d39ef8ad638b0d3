package ledger

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/hangman/internal/models"
)

var (
	errNilEntry      = errors.New("input and entry cannot be nil")
	errNegativeScore = errors.New("score cannot be negative")
)

// rank sorts entries by score descending, keeping insertion order for ties,
// and drops everything past MaxLeaderboardEntries
func rank(entries []*models.LeaderboardEntry) []*models.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > models.MaxLeaderboardEntries {
		entries = entries[:models.MaxLeaderboardEntries]
	}
	return entries
}

// limit returns the first n entries, or all of them when n <= 0
func limit(entries []*models.LeaderboardEntry, n int) []*models.LeaderboardEntry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

func validateEntry(input *RecordInput) error {
	if input == nil || input.Entry == nil {
		return errNilEntry
	}
	if input.Entry.Score < 0 {
		return errNegativeScore
	}
	return nil
}
