package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/hangman/internal/common/sqlitemigrate"
	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/KirkDiggler/hangman/internal/repositories/ledger/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteConfig holds configuration for the SQLite ledger
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// SQLiteStore persists the leaderboard in SQLite
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens the database and applies any pending migrations
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts the entry and prunes everything below the top
// MaxLeaderboardEntries in one transaction
func (s *SQLiteStore) Record(ctx context.Context, input *RecordInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entry := input.Entry
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO leaderboard_entries (entry_id, name, score, difficulty, category, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Name,
		entry.Score,
		string(entry.Difficulty),
		entry.Category,
		entry.Time,
	); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM leaderboard_entries
		 WHERE seq NOT IN (
		   SELECT seq FROM leaderboard_entries ORDER BY score DESC, seq ASC LIMIT ?
		 )`,
		models.MaxLeaderboardEntries,
	); err != nil {
		return fmt.Errorf("prune entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// TopN returns the ranked entries; a failed query reads as an empty ledger
func (s *SQLiteStore) TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := models.MaxLeaderboardEntries
	if input != nil && input.Limit > 0 && input.Limit < n {
		n = input.Limit
	}

	entries, err := s.query(ctx, n)
	if err != nil {
		log.Printf("ledger: treating unreadable leaderboard as empty: %v", err)
		entries = []*models.LeaderboardEntry{}
	}

	return &TopNOutput{Entries: entries}, nil
}

func (s *SQLiteStore) query(ctx context.Context, n int) ([]*models.LeaderboardEntry, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT entry_id, name, score, difficulty, category, recorded_at
		 FROM leaderboard_entries
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.LeaderboardEntry{}
	for rows.Next() {
		var (
			e          models.LeaderboardEntry
			difficulty string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &difficulty, &e.Category, &e.Time); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Difficulty = models.Difficulty(difficulty)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}
