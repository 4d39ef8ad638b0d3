package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hangman/internal/catalog"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/services/game"
)

// Console drives the game service from a line based terminal
type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	gameService game.Service
}

// Config holds the configuration for the console
type Config struct {
	// In is read one line per answer
	In io.Reader

	Out io.Writer

	GameService game.Service
}

// outcome is how a round left the play loop
type outcome int

const (
	outcomeFinished outcome = iota
	outcomeSaved
	outcomeQuit
)

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Console{
		in:          bufio.NewScanner(cfg.In),
		out:         cfg.Out,
		gameService: cfg.GameService,
	}, nil
}

// Run plays rounds until the player quits, saves or input ends
func (c *Console) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out, "\nGoodbye.")
		return nil
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to Hangman Pro (Console mode)")

	resumed, err := c.offerResume(ctx)
	if err != nil {
		return err
	}

	for {
		if !resumed {
			if err := c.setupRound(ctx); err != nil {
				return err
			}
		}
		resumed = false

		result, err := c.play(ctx)
		if err != nil {
			return err
		}
		if result != outcomeFinished {
			return nil
		}

		answer, err := c.prompt("Play again? (y/n): ")
		if err != nil {
			return err
		}
		if !isYes(answer) {
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}
	}
}

// prompt writes the question and reads one line. io.EOF means input is closed.
func (c *Console) prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) offerResume(ctx context.Context) (bool, error) {
	if !c.gameService.HasSavedRound(ctx) {
		return false, nil
	}

	answer, err := c.prompt("A saved game was found. Resume? (y/n): ")
	if err != nil {
		return false, err
	}
	if !isYes(answer) {
		return false, nil
	}

	out, err := c.gameService.ResumeRound(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to resume round: %w", err)
	}
	if !out.Found {
		fmt.Fprintln(c.out, "The saved game could not be loaded. Starting a new one.")
		return false, nil
	}

	fmt.Fprintln(c.out, "Resumed saved game.")
	return true, nil
}

func (c *Console) setupRound(ctx context.Context) error {
	input := &game.StartRoundInput{}

	mode := ""
	for mode != "1" && mode != "2" {
		var err error
		mode, err = c.prompt("Choose mode: (1) Single-player (random word)  (2) Two-player: ")
		if err != nil {
			return err
		}
	}

	if mode == "1" {
		categories, err := c.gameService.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		fmt.Fprintln(c.out, "Available categories:", strings.Join(categories.Categories, ", "))

		input.Category, err = c.prompt("Choose category (or press Enter for random): ")
		if err != nil {
			return err
		}
	} else {
		word, err := c.askSecretWord()
		if err != nil {
			return err
		}
		input.CustomWord = word
	}

	if err := c.askDifficulty(input); err != nil {
		return err
	}

	if _, err := c.gameService.StartRound(ctx, input); err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	return nil
}

func (c *Console) askSecretWord() (string, error) {
	question := "Player 1, enter the secret word (letters only): "
	for {
		answer, err := c.prompt(question)
		if err != nil {
			return "", err
		}

		word, err := catalog.AcceptCustomWord(answer)
		if err == nil {
			return word, nil
		}

		fmt.Fprintln(c.out, "Please enter alphabetic characters only.")
		question = "Player 1, enter the secret word: "
	}
}

func (c *Console) askDifficulty(input *game.StartRoundInput) error {
	fmt.Fprintln(c.out, "Choose difficulty:")

	presets := []models.Difficulty{}
	for _, d := range models.Difficulties() {
		if d == models.DifficultyCustom {
			continue
		}
		presets = append(presets, d)
		fmt.Fprintf(c.out, "%d. %s (%d lives)\n", len(presets), d, d.Lives())
	}
	fmt.Fprintf(c.out, "%d. %s\n", len(presets)+1, models.DifficultyCustom)

	answer, err := c.prompt("Enter choice number: ")
	if err != nil {
		return err
	}

	// anything that is not a preset number means Custom
	if choice, convErr := strconv.Atoi(answer); convErr == nil && choice >= 1 && choice <= len(presets) {
		input.Difficulty = presets[choice-1]
		return nil
	}

	input.Difficulty = models.DifficultyCustom
	for {
		answer, err := c.prompt(fmt.Sprintf("Enter number of lives (%d-%d): ", models.MinCustomLives, models.MaxCustomLives))
		if err != nil {
			return err
		}

		lives, convErr := strconv.Atoi(answer)
		if convErr == nil && lives >= models.MinCustomLives && lives <= models.MaxCustomLives {
			input.CustomLives = lives
			return nil
		}
		fmt.Fprintln(c.out, "Invalid number.")
	}
}

func (c *Console) play(ctx context.Context) (outcome, error) {
	current, err := c.gameService.GetRound(ctx)
	if err != nil {
		return outcomeQuit, fmt.Errorf("failed to get round: %w", err)
	}
	round := current.Round

	for !round.Status.Finished() {
		renderRound(c.out, round)

		line, err := c.prompt("Enter command or letter: ")
		if err != nil {
			return outcomeQuit, err
		}

		cmd := parseCommand(line)
		switch cmd.kind {
		case commandQuit:
			fmt.Fprintln(c.out, "Goodbye.")
			return outcomeQuit, nil

		case commandSave:
			if err := c.gameService.SaveRound(ctx); err != nil {
				log.Printf("console: save failed: %v", err)
				fmt.Fprintln(c.out, "Could not save the game. Keep playing or try again.")
				continue
			}
			fmt.Fprintln(c.out, "Game saved to disk. You can resume later.")
			return outcomeSaved, nil

		case commandHint:
			out, err := c.gameService.UseHint(ctx)
			if err != nil {
				fmt.Fprintln(c.out, describeError(err))
				continue
			}
			fmt.Fprintf(c.out, "Hint: revealed letter '%s' (penalty applied).\n", out.Letter)
			round = out.Round

		case commandGuess:
			out, err := c.gameService.Guess(ctx, &game.GuessInput{Letter: cmd.letter})
			if err != nil {
				fmt.Fprintln(c.out, describeError(err))
				continue
			}
			if out.Correct {
				fmt.Fprintln(c.out, "Correct!")
			} else {
				fmt.Fprintln(c.out, "Incorrect.")
			}
			round = out.Round

		case commandLeaderboard:
			c.showLeaderboard(ctx)

		default:
			fmt.Fprintln(c.out, "Unknown command. Try again.")
		}
	}

	return outcomeFinished, c.finish(ctx)
}

func (c *Console) finish(ctx context.Context) error {
	out, err := c.gameService.EndRound(ctx)
	if err != nil {
		return fmt.Errorf("failed to end round: %w", err)
	}
	renderResult(c.out, out.Result)

	name, err := c.prompt("Enter your name for leaderboard (or press Enter to skip): ")
	if err != nil {
		return err
	}

	if name != "" {
		if _, err := c.gameService.RecordScore(ctx, &game.RecordScoreInput{
			PlayerName: name,
			Result:     out.Result,
		}); err != nil {
			log.Printf("console: failed to record score: %v", err)
			fmt.Fprintln(c.out, "Could not save your score.")
		} else {
			fmt.Fprintln(c.out, "Score saved.")
		}
	}

	c.showLeaderboard(ctx)
	return nil
}

func (c *Console) showLeaderboard(ctx context.Context) {
	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{
		Limit: LeaderboardSize,
	})
	if err != nil {
		log.Printf("console: failed to read leaderboard: %v", err)
		fmt.Fprintln(c.out, "Leaderboard unavailable.")
		return
	}

	renderLeaderboard(c.out, out.Entries)
}
