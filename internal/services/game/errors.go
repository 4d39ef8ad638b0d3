package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveRound     GameError = "no round in progress"
	ErrRoundNotFinished  GameError = "round is not finished"
	ErrInvalidDifficulty GameError = "unknown difficulty"
	ErrInvalidLives      GameError = "custom lives must be between 1 and 20"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilCatalog        GameError = "word catalog cannot be nil"
	ErrNilLedgerRepo     GameError = "ledger repository cannot be nil"
	ErrNilSaveRepo       GameError = "save repository cannot be nil"
	ErrNilRoller         GameError = "roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
	ErrNilRoundResult    GameError = "round result cannot be nil"
)
