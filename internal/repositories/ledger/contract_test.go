package ledger

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/stretchr/testify/suite"
)

// contractSuite holds the behaviour every ledger backend must share. Backend
// suites embed it and set repo in their SetupTest.
type contractSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *contractSuite) entry(name string, score int) *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		ID:         "id-" + name,
		Name:       name,
		Score:      score,
		Difficulty: models.DifficultyNormal,
		Category:   "animals",
		Time:       1744800000,
	}
}

func (s *contractSuite) record(name string, score int) {
	s.Require().NoError(s.repo.Record(s.ctx, &RecordInput{Entry: s.entry(name, score)}))
}

func (s *contractSuite) names(limit int) []string {
	out, err := s.repo.TopN(s.ctx, &TopNInput{Limit: limit})
	s.Require().NoError(err)
	names := make([]string, len(out.Entries))
	for i, e := range out.Entries {
		names[i] = e.Name
	}
	return names
}

func (s *contractSuite) TestEmptyLedger() {
	out, err := s.repo.TopN(s.ctx, &TopNInput{})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *contractSuite) TestRecordSortsByScore() {
	s.record("low", 10)
	s.record("high", 30)
	s.record("mid", 20)

	s.Equal([]string{"high", "mid", "low"}, s.names(0))

	out, err := s.repo.TopN(s.ctx, &TopNInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal(s.entry("high", 30), out.Entries[0])
}

func (s *contractSuite) TestTiesKeepInsertionOrder() {
	s.record("first", 10)
	s.record("top", 20)
	s.record("second", 10)
	s.record("third", 10)

	s.Equal([]string{"top", "first", "second", "third"}, s.names(0))
}

func (s *contractSuite) TestKeepsOnlyBestFifty() {
	for i := 1; i <= 60; i++ {
		s.record(fmt.Sprintf("p%02d", i), i)
	}

	out, err := s.repo.TopN(s.ctx, &TopNInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, models.MaxLeaderboardEntries)
	s.Equal(60, out.Entries[0].Score)
	s.Equal(11, out.Entries[len(out.Entries)-1].Score)
	for i := 1; i < len(out.Entries); i++ {
		s.GreaterOrEqual(out.Entries[i-1].Score, out.Entries[i].Score)
	}

	// a score below the cut is dropped immediately
	s.record("late", 5)
	s.NotContains(s.names(0), "late")
}

func (s *contractSuite) TestLimit() {
	s.record("a", 3)
	s.record("b", 2)
	s.record("c", 1)

	s.Equal([]string{"a", "b"}, s.names(2))
	s.Equal([]string{"a", "b", "c"}, s.names(10))
}

func (s *contractSuite) TestRecordRejectsBadInput() {
	s.Error(s.repo.Record(s.ctx, nil))
	s.Error(s.repo.Record(s.ctx, &RecordInput{}))
	s.Error(s.repo.Record(s.ctx, &RecordInput{Entry: s.entry("neg", -1)}))

	s.Empty(s.names(0))
}
