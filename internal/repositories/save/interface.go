package save

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hangman/internal/repositories/save Repository

import (
	"context"
	"errors"
)

// ErrSaveNotFound is returned by Load when there is no usable save. Missing,
// unreadable and invalid records all map to it.
var ErrSaveNotFound = errors.New("no saved game")

// Repository defines the interface for persisting the in-progress round
type Repository interface {
	// Save overwrites the stored record
	Save(ctx context.Context, input *SaveInput) error

	// Load returns the stored record or ErrSaveNotFound
	Load(ctx context.Context) (*LoadOutput, error)

	// Clear removes the stored record; clearing nothing is not an error
	Clear(ctx context.Context) error
}
