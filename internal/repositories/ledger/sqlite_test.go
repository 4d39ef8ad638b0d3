package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SQLiteStoreTestSuite struct {
	contractSuite
	path  string
	store *SQLiteStore
}

func (s *SQLiteStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "hangman.db")

	store, err := OpenSQLite(&SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.store = store
	s.repo = store
}

func (s *SQLiteStoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func TestSQLiteStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}

func (s *SQLiteStoreTestSuite) TestOpenValidation() {
	_, err := OpenSQLite(nil)
	s.Error(err)

	_, err = OpenSQLite(&SQLiteConfig{Path: "  "})
	s.Error(err)
}

func (s *SQLiteStoreTestSuite) TestPersistsAcrossReopen() {
	s.record("ada", 42)
	s.Require().NoError(s.store.Close())

	reopened, err := OpenSQLite(&SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.store = reopened
	s.repo = reopened

	out, err := s.repo.TopN(s.ctx, &TopNInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal(s.entry("ada", 42), out.Entries[0])
}

func (s *SQLiteStoreTestSuite) TestNilStoreClose() {
	var store *SQLiteStore
	s.NoError(store.Close())
}

func (s *SQLiteStoreTestSuite) TestMigrationsAppliedOnce() {
	s.Require().NoError(s.store.Close())

	reopened, err := OpenSQLite(&SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.store = reopened
	s.repo = reopened

	var applied int
	s.Require().NoError(s.store.sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	s.Equal(1, applied)
}
