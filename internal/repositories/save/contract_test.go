package save

import (
	"context"

	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/stretchr/testify/suite"
)

// contractSuite holds the behaviour every save backend must share
type contractSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *contractSuite) record() *models.SaveRecord {
	return &models.SaveRecord{
		Secret:     "gopher",
		Lives:      6,
		Difficulty: models.DifficultyHard,
		Category:   "tech",
		Guessed:    []string{"o", "h"},
		Wrong:      []string{"z", "hint-1", "q"},
		HintsUsed:  1,
	}
}

func (s *contractSuite) TestLoadWithoutSave() {
	out, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrSaveNotFound)
	s.Nil(out)
}

func (s *contractSuite) TestSaveLoadRoundTrip() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Record: s.record()}))

	out, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.record(), out.Record)
}

func (s *contractSuite) TestSaveOverwrites() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Record: s.record()}))

	next := &models.SaveRecord{
		Secret:     "ox",
		Lives:      2,
		Difficulty: models.DifficultyCustom,
		Category:   models.TwoPlayerCategory,
		Guessed:    []string{},
		Wrong:      []string{},
	}
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Record: next}))

	out, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(next, out.Record)
}

func (s *contractSuite) TestClear() {
	// clearing with nothing saved is fine
	s.Require().NoError(s.repo.Clear(s.ctx))

	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Record: s.record()}))
	s.Require().NoError(s.repo.Clear(s.ctx))

	_, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrSaveNotFound)

	s.NoError(s.repo.Clear(s.ctx))
}

func (s *contractSuite) TestSaveRejectsInvalidRecord() {
	s.Error(s.repo.Save(s.ctx, nil))
	s.Error(s.repo.Save(s.ctx, &SaveInput{}))

	bad := s.record()
	bad.Lives = 0
	s.Error(s.repo.Save(s.ctx, &SaveInput{Record: bad}))

	_, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrSaveNotFound)
}
