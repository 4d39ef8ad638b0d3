package engine

// RoundError is a custom error type for rejected round operations
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidGuess    RoundError = "guess must be exactly one letter"
	ErrDuplicateGuess  RoundError = "letter has already been guessed"
	ErrRoundFinished   RoundError = "round is already finished"
	ErrNothingToReveal RoundError = "no letters left to reveal"
	ErrInvalidWord     RoundError = "secret word must contain only letters and apostrophes"
	ErrInvalidLives    RoundError = "lives must be at least 1"
	ErrInvalidRecord   RoundError = "save record is invalid"
	ErrNilConfig       RoundError = "config cannot be nil"
	ErrNilRoller       RoundError = "roller cannot be nil"
	ErrNilClock        RoundError = "clock cannot be nil"
)
