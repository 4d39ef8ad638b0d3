package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/hangman/internal/engine"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/services/game"
)

// LeaderboardSize is how many entries the console shows
const LeaderboardSize = 20

func renderRound(w io.Writer, round *game.RoundView) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, "Word:", round.Masked)
	fmt.Fprintf(w, "Wrong guesses: %s\n", strings.Join(round.WrongLetters, " "))
	fmt.Fprintf(w, "Lives left: %d   Hints used: %d\n", round.RemainingLives, round.HintsUsed)
	fmt.Fprintln(w, "Commands: guess <letter> | hint | save | leaderboard | quit")
}

func renderResult(w io.Writer, result *game.RoundResult) {
	if result.Won {
		fmt.Fprintln(w, "\nCONGRATS! You guessed the word:", result.Secret)
	} else {
		fmt.Fprintln(w, "\nYou lost. The word was:", result.Secret)
	}
	fmt.Fprintf(w, "Your score: %d\n", result.Score)
}

func renderLeaderboard(w io.Writer, entries []*models.LeaderboardEntry) {
	fmt.Fprintln(w, "\nLeaderboard")
	if len(entries) == 0 {
		fmt.Fprintln(w, "No scores yet.")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%2d. %-20s %5d  %s/%s\n", i+1, e.Name, e.Score, e.Difficulty, e.Category)
	}
}

// describeError turns a rejected action into a line for the player
func describeError(err error) string {
	switch {
	case errors.Is(err, engine.ErrDuplicateGuess):
		return "You already guessed that."
	case errors.Is(err, engine.ErrInvalidGuess):
		return "Invalid guess."
	case errors.Is(err, engine.ErrNothingToReveal):
		return "No letters to reveal."
	case errors.Is(err, engine.ErrRoundFinished):
		return "The round is over."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
