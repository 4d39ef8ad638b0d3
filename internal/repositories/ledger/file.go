package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/KirkDiggler/hangman/internal/common/atomicfile"
	"github.com/KirkDiggler/hangman/internal/models"
)

// FileConfig holds configuration for the JSON file ledger
type FileConfig struct {
	// Path is the ledger file, e.g. hangman_scores.json
	Path string
}

// fileRepository implements the Repository interface on a JSON file
type fileRepository struct {
	path string
}

// NewFile creates a JSON file backed ledger
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Path == "" {
		return nil, errors.New("ledger path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Record appends an entry and rewrites the file in one step
func (r *fileRepository) Record(ctx context.Context, input *RecordInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries := rank(append(r.load(), input.Entry))

	if err := atomicfile.WriteJSON(r.path, entries); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}

// TopN reads the ledger file; a missing or corrupt file is an empty ledger
func (r *fileRepository) TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := 0
	if input != nil {
		n = input.Limit
	}

	return &TopNOutput{
		Entries: limit(rank(r.load()), n),
	}, nil
}

func (r *fileRepository) load() []*models.LeaderboardEntry {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("ledger: reading %s: %v", r.path, err)
		}
		return []*models.LeaderboardEntry{}
	}

	var entries []*models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("ledger: ignoring corrupt %s: %v", r.path, err)
		return []*models.LeaderboardEntry{}
	}

	valid := entries[:0]
	for _, e := range entries {
		if e != nil {
			valid = append(valid, e)
		}
	}
	return valid
}
