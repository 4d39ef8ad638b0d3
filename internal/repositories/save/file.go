package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/KirkDiggler/hangman/internal/common/atomicfile"
)

// FileConfig holds configuration for the JSON file save store
type FileConfig struct {
	// Path is the save file, e.g. hangman_save.json
	Path string
}

// fileRepository implements the Repository interface on a JSON file
type fileRepository struct {
	path string
}

// NewFile creates a JSON file backed save store
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Path == "" {
		return nil, errors.New("save path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Save replaces the save file with the record
func (r *fileRepository) Save(ctx context.Context, input *SaveInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicfile.WriteJSON(r.path, input.Record); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// Load reads the save file
func (r *fileRepository) Load(ctx context.Context) (*LoadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("save: reading %s: %v", r.path, err)
		}
		return nil, ErrSaveNotFound
	}

	return decode(r.path, data)
}

// Clear deletes the save file if there is one
func (r *fileRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear save: %w", err)
	}

	return nil
}
