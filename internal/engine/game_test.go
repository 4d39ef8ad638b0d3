package engine

import (
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/hangman/internal/common/clock/mocks"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/random"
	randomMocks "github.com/KirkDiggler/hangman/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *randomMocks.MockRoller
	mockClock  *clockMocks.MockClock
	testTime   time.Time
}

func (s *GameTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = randomMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *GameTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func (s *GameTestSuite) newGame(secret string, lives int, difficulty models.Difficulty) *Game {
	g, err := New(&Config{
		Secret:     secret,
		Lives:      lives,
		Difficulty: difficulty,
		Category:   "test",
		Roller:     s.mockRoller,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	return g
}

// assertConsistent checks the finished/won invariant against the raw counters
func (s *GameTestSuite) assertConsistent(g *Game) {
	allRevealed := true
	for _, r := range g.MaskedWord() {
		if r == Placeholder {
			allRevealed = false
		}
	}
	lost := len(g.WrongLetters())+g.HintCount() >= g.Lives()

	if !g.Finished() {
		s.False(allRevealed)
		s.False(lost)
		return
	}
	if g.Won() {
		s.True(allRevealed)
	} else {
		s.True(lost)
		s.False(allRevealed)
	}
}

func (s *GameTestSuite) TestNewValidation() {
	testCases := []struct {
		name string
		cfg  *Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "nil roller", cfg: &Config{Secret: "cat", Lives: 6, Clock: s.mockClock}, err: ErrNilRoller},
		{name: "nil clock", cfg: &Config{Secret: "cat", Lives: 6, Roller: s.mockRoller}, err: ErrNilClock},
		{name: "digits in secret", cfg: &Config{Secret: "c4t", Lives: 6, Roller: s.mockRoller, Clock: s.mockClock}, err: ErrInvalidWord},
		{name: "empty secret", cfg: &Config{Secret: "", Lives: 6, Roller: s.mockRoller, Clock: s.mockClock}, err: ErrInvalidWord},
		{name: "zero lives", cfg: &Config{Secret: "cat", Lives: 0, Roller: s.mockRoller, Clock: s.mockClock}, err: ErrInvalidLives},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g, err := New(tc.cfg)
			s.ErrorIs(err, tc.err)
			s.Nil(g)
		})
	}
}

func (s *GameTestSuite) TestNewNormalizesSecret() {
	g := s.newGame("CaT", 6, "")

	s.Equal(models.DifficultyNormal, g.Difficulty())
	s.Equal(s.testTime, g.CreatedAt())
	s.Equal(models.GameStatusInProgress, g.Status())
	s.Equal([]rune("___"), g.MaskedWord())

	_, ok := g.Secret()
	s.False(ok)
}

func (s *GameTestSuite) TestWinScenario() {
	g := s.newGame("cat", 6, models.DifficultyNormal)

	correct, err := g.GuessLetter("c")
	s.Require().NoError(err)
	s.True(correct)
	s.Equal([]string{"c"}, g.Revealed())

	correct, err = g.GuessLetter("z")
	s.Require().NoError(err)
	s.False(correct)
	s.Equal([]string{"z"}, g.WrongLetters())

	correct, err = g.GuessLetter("a")
	s.Require().NoError(err)
	s.True(correct)
	s.False(g.Finished())

	correct, err = g.GuessLetter("t")
	s.Require().NoError(err)
	s.True(correct)

	s.True(g.Finished())
	s.True(g.Won())
	s.Equal(5, g.RemainingLives())
	s.Equal(55, g.ComputeScore())

	secret, ok := g.Secret()
	s.True(ok)
	s.Equal("cat", secret)
	s.assertConsistent(g)
}

func (s *GameTestSuite) TestLossScenario() {
	g := s.newGame("ox", 2, models.DifficultyNormal)

	_, err := g.GuessLetter("z")
	s.Require().NoError(err)
	s.False(g.Finished())

	_, err = g.GuessLetter("q")
	s.Require().NoError(err)

	s.True(g.Finished())
	s.False(g.Won())
	s.Equal(models.GameStatusLost, g.Status())
	s.Equal(0, g.RemainingLives())
	s.assertConsistent(g)
}

func (s *GameTestSuite) TestHintsCompletingWordWin() {
	g := s.newGame("go", 3, models.DifficultyNormal)

	s.mockRoller.EXPECT().Intn(2).Return(1)
	s.mockRoller.EXPECT().Intn(1).Return(0)

	letter, err := g.UseHint()
	s.Require().NoError(err)
	s.Equal('o', letter)
	s.False(g.Finished())

	letter, err = g.UseHint()
	s.Require().NoError(err)
	s.Equal('g', letter)

	s.True(g.Finished())
	s.True(g.Won())
	s.Equal(2, g.HintCount())
	s.Equal(1, g.RemainingLives())
	s.Empty(g.WrongLetters())
	s.assertConsistent(g)
}

func (s *GameTestSuite) TestHintOnLastLifeStillWins() {
	g := s.newGame("go", 2, models.DifficultyNormal)

	_, err := g.GuessLetter("g")
	s.Require().NoError(err)
	_, err = g.GuessLetter("x")
	s.Require().NoError(err)
	s.Equal(1, g.RemainingLives())

	s.mockRoller.EXPECT().Intn(1).Return(0)

	letter, err := g.UseHint()
	s.Require().NoError(err)
	s.Equal('o', letter)

	s.True(g.Finished())
	s.True(g.Won())
	s.Equal(0, g.RemainingLives())
	s.assertConsistent(g)
}

func (s *GameTestSuite) TestHintCanLoseRound() {
	g := s.newGame("gopher", 1, models.DifficultyNormal)

	s.mockRoller.EXPECT().Intn(6).Return(0)

	_, err := g.UseHint()
	s.Require().NoError(err)

	s.True(g.Finished())
	s.False(g.Won())
	s.assertConsistent(g)
}

func (s *GameTestSuite) TestHintNeverRevealsKnownLetter() {
	g := s.newGame("banana", 6, models.DifficultyNormal)

	_, err := g.GuessLetter("a")
	s.Require().NoError(err)

	// distinct hidden letters in first-occurrence order are b, n
	s.mockRoller.EXPECT().Intn(2).Return(1)

	letter, err := g.UseHint()
	s.Require().NoError(err)
	s.Equal('n', letter)
	s.Equal([]string{"a", "n"}, g.Revealed())
}

func (s *GameTestSuite) TestHintNothingToReveal() {
	g := s.newGame("ab", 6, models.DifficultyNormal)
	_, _ = g.GuessLetter("a")
	_, _ = g.GuessLetter("b")
	s.Require().True(g.Won())

	before := g.Snapshot()

	_, err := g.UseHint()
	s.ErrorIs(err, ErrNothingToReveal)
	s.Equal(before, g.Snapshot())
	s.Equal(0, g.HintCount())
}

func (s *GameTestSuite) TestHintAfterLoss() {
	g := s.newGame("ab", 1, models.DifficultyNormal)
	_, _ = g.GuessLetter("z")
	s.Require().True(g.Finished())

	_, err := g.UseHint()
	s.ErrorIs(err, ErrRoundFinished)
}

func (s *GameTestSuite) TestDuplicateGuessLeavesStateUnchanged() {
	g := s.newGame("cat", 6, models.DifficultyNormal)

	_, err := g.GuessLetter("c")
	s.Require().NoError(err)
	_, err = g.GuessLetter("z")
	s.Require().NoError(err)

	before := g.Snapshot()
	lives := g.RemainingLives()

	for _, letter := range []string{"c", "C", "z", "Z"} {
		correct, err := g.GuessLetter(letter)
		s.ErrorIs(err, ErrDuplicateGuess)
		s.False(correct)
	}

	s.Equal(before, g.Snapshot())
	s.Equal(lives, g.RemainingLives())
}

func (s *GameTestSuite) TestInvalidGuesses() {
	g := s.newGame("cat", 6, models.DifficultyNormal)

	for _, guess := range []string{"", "ab", "1", "'", " ", "-"} {
		_, err := g.GuessLetter(guess)
		s.ErrorIs(err, ErrInvalidGuess, "guess %q", guess)
	}

	s.Equal(6, g.RemainingLives())
	s.Empty(g.Revealed())
}

func (s *GameTestSuite) TestNoGuessesAfterFinish() {
	g := s.newGame("a", 6, models.DifficultyNormal)
	_, err := g.GuessLetter("a")
	s.Require().NoError(err)
	s.Require().True(g.Won())

	_, err = g.GuessLetter("b")
	s.ErrorIs(err, ErrRoundFinished)
	s.Empty(g.WrongLetters())
}

func (s *GameTestSuite) TestApostropheIsShownAndNotRequired() {
	g := s.newGame("don't", 6, models.DifficultyNormal)

	s.Equal([]rune("___'_"), g.MaskedWord())
	s.Equal("_ _ _ ' _", g.MaskedString())

	for _, letter := range []string{"d", "o", "n", "t"} {
		_, err := g.GuessLetter(letter)
		s.Require().NoError(err)
	}

	s.True(g.Won())
	s.Equal([]rune("don't"), g.MaskedWord())
}

func (s *GameTestSuite) TestMaskedWordMirrorsSecret() {
	g := s.newGame("letter", 6, models.DifficultyNormal)
	_, _ = g.GuessLetter("t")
	_, _ = g.GuessLetter("x")

	s.Equal([]rune("__tt__"), g.MaskedWord())
	s.Len(g.MaskedWord(), len("letter"))
}

func (s *GameTestSuite) TestComputeScore() {
	testCases := []struct {
		name       string
		secret     string
		lives      int
		difficulty models.Difficulty
		wrong      []string
		hints      int
		expected   int
	}{
		// 10*3 + 5*6 = 60
		{name: "normal no mistakes", secret: "cat", lives: 6, difficulty: models.DifficultyNormal, expected: 60},
		// 60 * 0.8 = 48
		{name: "easy multiplier", secret: "cat", lives: 6, difficulty: models.DifficultyEasy, expected: 48},
		// (10*4 + 5*4) * 1.4 = 84
		{name: "hard multiplier", secret: "hello", lives: 4, difficulty: models.DifficultyHard, expected: 84},
		// (10*4 + 5*5) * 1.4 = 91 in tenths arithmetic; int(65 * 1.4) in
		// floating point would give 90
		{name: "hard truncation", secret: "bird", lives: 6, difficulty: models.DifficultyHard, wrong: []string{"x"}, expected: 91},
		// (10*3 + 5*3) * 1.4 = 63; floating point gives 62
		{name: "hard truncation low", secret: "cat", lives: 4, difficulty: models.DifficultyHard, wrong: []string{"x"}, expected: 63},
		{name: "custom multiplier", secret: "cat", lives: 10, difficulty: models.DifficultyCustom, expected: 80},
		{name: "unknown difficulty", secret: "cat", lives: 6, difficulty: "Nightmare", expected: 60},
		// 10*1 + 5*0 - 15*1 < 0
		{name: "floored at zero", secret: "a", lives: 1, difficulty: models.DifficultyNormal, hints: 1, expected: 0},
		// 10*3 + 5*0 = 30 * 0.8 = 24
		{name: "lost round", secret: "cat", lives: 2, difficulty: models.DifficultyEasy, wrong: []string{"x", "y"}, expected: 24},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g := s.newGame(tc.secret, tc.lives, tc.difficulty)
			for _, w := range tc.wrong {
				_, err := g.GuessLetter(w)
				s.Require().NoError(err)
			}
			for i := 0; i < tc.hints; i++ {
				s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0)
				_, err := g.UseHint()
				s.Require().NoError(err)
			}

			s.Equal(tc.expected, g.ComputeScore())
			s.Equal(tc.expected, g.ComputeScore())
		})
	}
}

func (s *GameTestSuite) TestSnapshotRestoreRoundTrip() {
	g := s.newGame("gopher", 6, models.DifficultyHard)

	_, _ = g.GuessLetter("o")
	_, _ = g.GuessLetter("z")
	s.mockRoller.EXPECT().Intn(5).Return(2)
	_, err := g.UseHint()
	s.Require().NoError(err)
	_, _ = g.GuessLetter("q")

	record := g.Snapshot()
	s.Equal([]string{"z", "hint-1", "q"}, record.Wrong)
	s.Equal(1, record.HintsUsed)

	restored, err := Restore(record, &RestoreConfig{Roller: s.mockRoller, Clock: s.mockClock})
	s.Require().NoError(err)

	s.Equal(record, restored.Snapshot())
	s.Equal(g.MaskedWord(), restored.MaskedWord())
	s.Equal(g.RemainingLives(), restored.RemainingLives())
	s.Equal(g.WrongLetters(), restored.WrongLetters())
	s.Equal(g.HintCount(), restored.HintCount())
	s.Equal(g.Category(), restored.Category())
	s.Equal(g.Difficulty(), restored.Difficulty())
	s.Equal(g.Status(), restored.Status())
}

func (s *GameTestSuite) TestRestoreContinuesHintNumbering() {
	record := &models.SaveRecord{
		Secret:     "gopher",
		Lives:      6,
		Difficulty: models.DifficultyNormal,
		Category:   "tech",
		Guessed:    []string{"g", "o"},
		Wrong:      []string{"hint-2", "hint-1"},
		HintsUsed:  2,
	}

	g, err := Restore(record, &RestoreConfig{Roller: s.mockRoller, Clock: s.mockClock})
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Intn(4).Return(0)
	_, err = g.UseHint()
	s.Require().NoError(err)

	s.Equal([]string{"hint-2", "hint-1", "hint-3"}, g.Snapshot().Wrong)
	s.Equal(3, g.RemainingLives())
}

func (s *GameTestSuite) TestRestoreFinishedRecord() {
	record := &models.SaveRecord{
		Secret:     "ox",
		Lives:      2,
		Difficulty: models.DifficultyNormal,
		Category:   "default",
		Wrong:      []string{"z", "q"},
	}

	g, err := Restore(record, &RestoreConfig{Roller: s.mockRoller, Clock: s.mockClock})
	s.Require().NoError(err)
	s.True(g.Finished())
	s.False(g.Won())
}

func (s *GameTestSuite) TestRestoreRejectsInvalidRecord() {
	record := &models.SaveRecord{
		Secret: "cat",
		Lives:  6,
		Wrong:  []string{"c"},
	}

	g, err := Restore(record, &RestoreConfig{Roller: s.mockRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrInvalidRecord)
	s.Nil(g)
}

func TestSeededHintsAreDeterministic(t *testing.T) {
	play := func() []rune {
		g, err := New(&Config{
			Secret:     "algorithm",
			Lives:      20,
			Difficulty: models.DifficultyNormal,
			Roller:     random.New(&random.Config{Seed: 7}),
			Clock:      fixedClock{},
		})
		if err != nil {
			t.Fatal(err)
		}
		var revealed []rune
		for !g.Finished() {
			letter, err := g.UseHint()
			if err != nil {
				t.Fatal(err)
			}
			revealed = append(revealed, letter)
		}
		return revealed
	}

	first := play()
	second := play()
	if string(first) != string(second) {
		t.Fatalf("hints differ: %q vs %q", string(first), string(second))
	}
	if len(first) != 9 {
		t.Fatalf("expected 9 hints, got %d", len(first))
	}
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Unix(0, 0) }
