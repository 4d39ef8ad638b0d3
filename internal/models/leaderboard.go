package models

// MaxLeaderboardEntries is the number of results the ledger retains
const MaxLeaderboardEntries = 50

// MaxPlayerNameLength is the longest name stored on the leaderboard
const MaxPlayerNameLength = 20

// LeaderboardEntry represents one finished round on the leaderboard
type LeaderboardEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id,omitempty"`

	// Name is the player's display name
	Name string `json:"name"`

	// Score is the final score of the round, never negative
	Score int `json:"score"`

	// Difficulty is the difficulty tag the round was played at
	Difficulty Difficulty `json:"difficulty"`

	// Category is the category the secret word came from
	Category string `json:"category"`

	// Time is when the entry was recorded, in epoch seconds
	Time int64 `json:"time"`
}

// TruncateName shortens a player name to MaxPlayerNameLength runes
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) > MaxPlayerNameLength {
		return string(r[:MaxPlayerNameLength])
	}
	return name
}
