package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/hangman/internal/catalog"
	"github.com/KirkDiggler/hangman/internal/common/clock"
	"github.com/KirkDiggler/hangman/internal/common/uuid"
	"github.com/KirkDiggler/hangman/internal/engine"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/random"
	ledgerRepo "github.com/KirkDiggler/hangman/internal/repositories/ledger"
	saveRepo "github.com/KirkDiggler/hangman/internal/repositories/save"
	"golang.org/x/text/unicode/norm"
)

// service implements the Service interface. It owns at most one round; mu
// guards the round and every use of the shared roller.
type service struct {
	catalog       WordCatalog
	ledgerRepo    ledgerRepo.Repository
	saveRepo      saveRepo.Repository
	roller        random.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID

	mu    sync.Mutex
	round *engine.Game
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.SaveRepo == nil {
		return nil, ErrNilSaveRepo
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		catalog:       cfg.Catalog,
		ledgerRepo:    cfg.LedgerRepo,
		saveRepo:      cfg.SaveRepo,
		roller:        cfg.Roller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// ListCategories returns the categories a round can be started from
func (s *service) ListCategories(ctx context.Context) (*ListCategoriesOutput, error) {
	return &ListCategoriesOutput{
		Categories: s.catalog.Categories(),
	}, nil
}

// StartRound begins a new round
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyNormal
	}
	if !difficulty.Known() {
		return nil, ErrInvalidDifficulty
	}

	lives := difficulty.Lives()
	if difficulty == models.DifficultyCustom {
		if input.CustomLives < models.MinCustomLives || input.CustomLives > models.MaxCustomLives {
			return nil, ErrInvalidLives
		}
		lives = input.CustomLives
	}

	// any custom word means a two-player round, even a blank one
	var secret, category string
	if input.CustomWord != "" {
		word, err := catalog.AcceptCustomWord(input.CustomWord)
		if err != nil {
			return nil, err
		}
		secret, category = word, models.TwoPlayerCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "" {
		category, secret = s.catalog.PickWord(input.Category)
	}

	round, err := engine.New(&engine.Config{
		Secret:     secret,
		Lives:      lives,
		Difficulty: difficulty,
		Category:   category,
		Roller:     s.roller,
		Clock:      s.clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}
	s.round = round

	return &StartRoundOutput{
		Round: newRoundView(round),
	}, nil
}

// Guess submits a letter. Invalid and repeated letters come back as
// engine.ErrInvalidGuess and engine.ErrDuplicateGuess; the round carries on.
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return nil, ErrNoActiveRound
	}

	correct, err := s.round.GuessLetter(input.Letter)
	if err != nil {
		return nil, err
	}

	return &GuessOutput{
		Correct: correct,
		Round:   newRoundView(s.round),
	}, nil
}

// UseHint reveals one letter of the active round
func (s *service) UseHint(ctx context.Context) (*UseHintOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return nil, ErrNoActiveRound
	}

	letter, err := s.round.UseHint()
	if err != nil {
		return nil, err
	}

	return &UseHintOutput{
		Letter: string(letter),
		Round:  newRoundView(s.round),
	}, nil
}

// GetRound returns the active round
func (s *service) GetRound(ctx context.Context) (*GetRoundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return nil, ErrNoActiveRound
	}

	return &GetRoundOutput{
		Round: newRoundView(s.round),
	}, nil
}

// SaveRound persists the active round. A failed save leaves the round as it was.
func (s *service) SaveRound(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return ErrNoActiveRound
	}
	if s.round.Finished() {
		return engine.ErrRoundFinished
	}

	if err := s.saveRepo.Save(ctx, &saveRepo.SaveInput{
		Record: s.round.Snapshot(),
	}); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// HasSavedRound reports whether ResumeRound would find a round
func (s *service) HasSavedRound(ctx context.Context) bool {
	_, err := s.saveRepo.Load(ctx)
	return err == nil
}

// ResumeRound restores the saved round. A missing or unusable save is
// reported through Found, not as an error.
func (s *service) ResumeRound(ctx context.Context) (*ResumeRoundOutput, error) {
	out, err := s.saveRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, saveRepo.ErrSaveNotFound) {
			log.Printf("game: save unavailable: %v", err)
		}
		return &ResumeRoundOutput{Found: false}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	round, err := engine.Restore(out.Record, &engine.RestoreConfig{
		Roller: s.roller,
		Clock:  s.clock,
	})
	if err != nil {
		log.Printf("game: cannot restore saved round: %v", err)
		return &ResumeRoundOutput{Found: false}, nil
	}
	s.round = round

	return &ResumeRoundOutput{
		Found: true,
		Round: newRoundView(round),
	}, nil
}

// EndRound scores the finished round and clears the save
func (s *service) EndRound(ctx context.Context) (*EndRoundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return nil, ErrNoActiveRound
	}
	if !s.round.Finished() {
		return nil, ErrRoundNotFinished
	}

	secret, _ := s.round.Secret()
	result := &RoundResult{
		Secret:     secret,
		Won:        s.round.Won(),
		Score:      s.round.ComputeScore(),
		Difficulty: s.round.Difficulty(),
		Category:   s.round.Category(),
	}
	s.round = nil

	if err := s.saveRepo.Clear(ctx); err != nil {
		log.Printf("game: failed to clear save: %v", err)
	}

	return &EndRoundOutput{
		Result: result,
	}, nil
}

// RecordScore adds a finished round to the leaderboard
func (s *service) RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Result == nil {
		return nil, ErrNilRoundResult
	}

	// NFC first so truncation never splits a letter from its accent
	name := models.TruncateName(norm.NFC.String(strings.TrimSpace(input.PlayerName)))
	if name == "" {
		return nil, errors.New("player name cannot be empty")
	}

	entry := &models.LeaderboardEntry{
		ID:         s.uuidGenerator.NewUUID(),
		Name:       name,
		Score:      input.Result.Score,
		Difficulty: input.Result.Difficulty,
		Category:   input.Result.Category,
		Time:       s.clock.Now().Unix(),
	}

	if err := s.ledgerRepo.Record(ctx, &ledgerRepo.RecordInput{
		Entry: entry,
	}); err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}

	return &RecordScoreOutput{
		Entry: entry,
	}, nil
}

// GetLeaderboard returns the best recorded scores
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	out, err := s.ledgerRepo.TopN(ctx, &ledgerRepo.TopNInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{
		Entries: out.Entries,
	}, nil
}

func newRoundView(round *engine.Game) *RoundView {
	secret, _ := round.Secret()

	return &RoundView{
		Masked:         round.MaskedString(),
		WrongLetters:   round.WrongLetters(),
		Lives:          round.Lives(),
		RemainingLives: round.RemainingLives(),
		HintsUsed:      round.HintCount(),
		Status:         round.Status(),
		Secret:         secret,
		Difficulty:     round.Difficulty(),
		Category:       round.Category(),
	}
}
