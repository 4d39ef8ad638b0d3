// Package engine implements the state machine of a single hangman round.
//
// A Game starts in progress and moves to won or lost; neither transition
// can be undone. Every state-changing operation checks for a win before it
// checks for a loss, so a hint that reveals the last letter wins the round
// even when it also spends the last life.
package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/random"
)

// Game is one round of hangman. It is not safe for concurrent use.
type Game struct {
	secret     string
	letters    []rune // distinct letters of the secret in first-occurrence order
	lives      int
	difficulty models.Difficulty
	category   string
	createdAt  time.Time

	revealed    map[rune]bool
	revealOrder []rune
	missed      map[rune]bool

	// penalties holds missed letters and hint tokens in the order they happened
	penalties []string
	hintCount int

	status models.GameStatus
	roller random.Roller
}

// New creates a round in progress
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	secret := strings.ToLower(cfg.Secret)
	if !models.IsSecretWord(secret) {
		return nil, ErrInvalidWord
	}
	if cfg.Lives < 1 {
		return nil, ErrInvalidLives
	}

	difficulty := cfg.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyNormal
	}

	g := &Game{
		secret:     secret,
		letters:    distinctLetters(secret),
		lives:      cfg.Lives,
		difficulty: difficulty,
		category:   cfg.Category,
		createdAt:  cfg.Clock.Now(),
		revealed:   make(map[rune]bool),
		missed:     make(map[rune]bool),
		status:     models.GameStatusInProgress,
		roller:     cfg.Roller,
	}

	return g, nil
}

// Restore rebuilds a round from a save record. The returned game has the
// same secret, lives, tags, revealed and missed letters and hint count as
// the round that produced the record.
func Restore(record *models.SaveRecord, cfg *RestoreConfig) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	g, err := New(&Config{
		Secret:     record.Secret,
		Lives:      record.Lives,
		Difficulty: record.Difficulty,
		Category:   record.Category,
		Roller:     cfg.Roller,
		Clock:      cfg.Clock,
	})
	if err != nil {
		return nil, err
	}

	for _, letter := range record.Guessed {
		g.reveal(firstRune(letter))
	}
	for _, token := range record.Wrong {
		if models.IsHintToken(token) {
			g.penalties = append(g.penalties, token)
			continue
		}
		g.missed[firstRune(token)] = true
		g.penalties = append(g.penalties, token)
	}
	g.hintCount = record.HintsUsed
	g.evaluate()

	return g, nil
}

// GuessLetter applies a letter guess and reports whether the letter is in
// the secret. Rejected guesses return an error and leave the round untouched.
func (g *Game) GuessLetter(ch string) (bool, error) {
	if g.status.Finished() {
		return false, ErrRoundFinished
	}
	if utf8.RuneCountInString(ch) != 1 {
		return false, ErrInvalidGuess
	}
	r := unicode.ToLower(firstRune(ch))
	if !unicode.IsLetter(r) {
		return false, ErrInvalidGuess
	}
	if g.revealed[r] || g.missed[r] {
		return false, ErrDuplicateGuess
	}

	correct := strings.ContainsRune(g.secret, r)
	if correct {
		g.reveal(r)
	} else {
		g.missed[r] = true
		g.penalties = append(g.penalties, string(r))
	}
	g.evaluate()

	return correct, nil
}

// UseHint reveals one random unrevealed letter at the cost of one life
func (g *Game) UseHint() (rune, error) {
	var hidden []rune
	for _, r := range g.letters {
		if !g.revealed[r] {
			hidden = append(hidden, r)
		}
	}
	if len(hidden) == 0 {
		return 0, ErrNothingToReveal
	}
	if g.status.Finished() {
		return 0, ErrRoundFinished
	}

	letter := hidden[g.roller.Intn(len(hidden))]
	g.reveal(letter)
	g.hintCount++
	g.penalties = append(g.penalties, g.nextHintToken())
	g.evaluate()

	return letter, nil
}

// RemainingLives returns the lives left, never less than zero
func (g *Game) RemainingLives() int {
	remaining := g.lives - len(g.penalties)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// MaskedWord mirrors the secret with unrevealed letters replaced by Placeholder
func (g *Game) MaskedWord() []rune {
	masked := make([]rune, 0, len(g.secret))
	for _, r := range g.secret {
		if unicode.IsLetter(r) && !g.revealed[r] {
			masked = append(masked, Placeholder)
			continue
		}
		masked = append(masked, r)
	}
	return masked
}

// MaskedString returns the masked word with a space between positions
func (g *Game) MaskedString() string {
	masked := g.MaskedWord()
	parts := make([]string, len(masked))
	for i, r := range masked {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// ComputeScore returns the round score:
//
//	max(0, trunc((10*distinct + 5*remaining - 15*hints) * multiplier))
//
// It can be called at any point and does not change the round.
func (g *Game) ComputeScore() int {
	raw := 10*len(g.letters) + 5*g.RemainingLives() - 15*g.hintCount
	if raw <= 0 {
		return 0
	}
	return raw * g.difficulty.MultiplierTenths() / 10
}

// Snapshot returns a save record describing the round
func (g *Game) Snapshot() *models.SaveRecord {
	guessed := make([]string, len(g.revealOrder))
	for i, r := range g.revealOrder {
		guessed[i] = string(r)
	}
	wrong := make([]string, len(g.penalties))
	copy(wrong, g.penalties)

	return &models.SaveRecord{
		Secret:     g.secret,
		Lives:      g.lives,
		Difficulty: g.difficulty,
		Category:   g.category,
		Guessed:    guessed,
		Wrong:      wrong,
		HintsUsed:  g.hintCount,
	}
}

// Secret returns the secret word once the round is finished
func (g *Game) Secret() (string, bool) {
	if !g.status.Finished() {
		return "", false
	}
	return g.secret, true
}

// WrongLetters returns the missed letters in alphabetical order. Hint
// penalties are not included.
func (g *Game) WrongLetters() []string {
	letters := make([]string, 0, len(g.missed))
	for r := range g.missed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)
	return letters
}

// Revealed returns the revealed letters in the order they were revealed
func (g *Game) Revealed() []string {
	letters := make([]string, len(g.revealOrder))
	for i, r := range g.revealOrder {
		letters[i] = string(r)
	}
	return letters
}

func (g *Game) Status() models.GameStatus     { return g.status }
func (g *Game) Finished() bool                { return g.status.Finished() }
func (g *Game) Won() bool                     { return g.status == models.GameStatusWon }
func (g *Game) HintCount() int                { return g.hintCount }
func (g *Game) Lives() int                    { return g.lives }
func (g *Game) Difficulty() models.Difficulty { return g.difficulty }
func (g *Game) Category() string              { return g.category }
func (g *Game) CreatedAt() time.Time          { return g.createdAt }
func (g *Game) Penalties() int                { return len(g.penalties) }

func (g *Game) reveal(r rune) {
	if g.revealed[r] {
		return
	}
	g.revealed[r] = true
	g.revealOrder = append(g.revealOrder, r)
}

// evaluate checks win before loss
func (g *Game) evaluate() {
	if g.status.Finished() {
		return
	}
	if g.allRevealed() {
		g.status = models.GameStatusWon
		return
	}
	if len(g.penalties) >= g.lives {
		g.status = models.GameStatusLost
	}
}

func (g *Game) allRevealed() bool {
	for _, r := range g.letters {
		if !g.revealed[r] {
			return false
		}
	}
	return true
}

func (g *Game) nextHintToken() string {
	used := make(map[string]bool, len(g.penalties))
	for _, p := range g.penalties {
		used[p] = true
	}
	n := g.hintCount
	for used[models.HintToken(n)] {
		n++
	}
	return models.HintToken(n)
}

func distinctLetters(word string) []rune {
	seen := make(map[rune]bool)
	var letters []rune
	for _, r := range word {
		if !unicode.IsLetter(r) || seen[r] {
			continue
		}
		seen[r] = true
		letters = append(letters, r)
	}
	return letters
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
