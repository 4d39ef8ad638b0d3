package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HintTokenPrefix marks hint penalties in the wrong list of a SaveRecord
const HintTokenPrefix = "hint-"

// SaveRecord is the persisted snapshot of one in-progress round
type SaveRecord struct {
	// Secret is the lowercase secret word
	Secret string `json:"secret"`

	// Lives is the lives budget of the round
	Lives int `json:"lives"`

	// Difficulty is the difficulty tag of the round
	Difficulty Difficulty `json:"difficulty"`

	// Category is the category tag of the round
	Category string `json:"category"`

	// Guessed holds the revealed letters in the order they were revealed
	Guessed []string `json:"guessed"`

	// Wrong holds missed letters and hint tokens in the order they were recorded
	Wrong []string `json:"wrong"`

	// HintsUsed is the number of hints taken
	HintsUsed int `json:"hints_used"`
}

// HintToken returns the wrong-list token for the n-th hint (1-based)
func HintToken(n int) string {
	return HintTokenPrefix + strconv.Itoa(n)
}

// IsHintToken reports whether token is a hint penalty marker
func IsHintToken(token string) bool {
	rest, ok := strings.CutPrefix(token, HintTokenPrefix)
	if !ok || rest == "" {
		return false
	}
	n, err := strconv.Atoi(rest)
	return err == nil && n > 0
}

// IsSecretWord reports whether s is a usable secret: lowercase letters and
// apostrophes with at least one letter
func IsSecretWord(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case r == '\'':
		case unicode.IsLetter(r) && unicode.ToLower(r) == r:
			letters++
		default:
			return false
		}
	}
	return letters > 0
}

// IsLetterToken reports whether s is exactly one lowercase letter
func IsLetterToken(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) && unicode.ToLower(r) == r
}

// Validate checks that the record describes a reachable round state
func (r *SaveRecord) Validate() error {
	if r == nil {
		return errors.New("save record is nil")
	}
	if !IsSecretWord(r.Secret) {
		return fmt.Errorf("invalid secret %q", r.Secret)
	}
	if r.Lives < 1 {
		return fmt.Errorf("invalid lives %d", r.Lives)
	}
	if r.HintsUsed < 0 {
		return fmt.Errorf("invalid hints_used %d", r.HintsUsed)
	}

	seen := make(map[string]bool, len(r.Guessed)+len(r.Wrong))
	for _, g := range r.Guessed {
		if !IsLetterToken(g) {
			return fmt.Errorf("invalid guessed letter %q", g)
		}
		if seen[g] {
			return fmt.Errorf("duplicate letter %q", g)
		}
		if !strings.Contains(r.Secret, g) {
			return fmt.Errorf("guessed letter %q not in secret", g)
		}
		seen[g] = true
	}

	hints := 0
	for _, w := range r.Wrong {
		switch {
		case IsHintToken(w):
			hints++
		case IsLetterToken(w):
			if strings.Contains(r.Secret, w) {
				return fmt.Errorf("wrong letter %q is in secret", w)
			}
		default:
			return fmt.Errorf("invalid wrong token %q", w)
		}
		if seen[w] {
			return fmt.Errorf("duplicate token %q", w)
		}
		seen[w] = true
	}
	if hints != r.HintsUsed {
		return fmt.Errorf("hint tokens (%d) do not match hints_used (%d)", hints, r.HintsUsed)
	}

	return nil
}
