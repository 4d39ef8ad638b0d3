package models

// GameStatus represents the current state of a round
type GameStatus string

const (
	// GameStatusInProgress indicates the round still accepts guesses and hints
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusWon indicates every letter of the secret word was revealed
	GameStatusWon GameStatus = "won"

	// GameStatusLost indicates the penalties reached the lives budget
	GameStatusLost GameStatus = "lost"
)

// Finished reports whether the status is terminal
func (s GameStatus) Finished() bool {
	return s == GameStatusWon || s == GameStatusLost
}

// TwoPlayerCategory is the category tag for rounds where a player supplied the secret
const TwoPlayerCategory = "two-player"
