package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/hangman/internal/models"
)

func validateInput(input *SaveInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}
	if err := input.Record.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid record: %w", err)
	}
	return nil
}

// decode parses and validates a stored record. Anything unusable is logged
// and reported as ErrSaveNotFound.
func decode(source string, data []byte) (*LoadOutput, error) {
	var record models.SaveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("save: ignoring corrupt %s: %v", source, err)
		return nil, ErrSaveNotFound
	}
	if err := record.Validate(); err != nil {
		log.Printf("save: ignoring invalid %s: %v", source, err)
		return nil, ErrSaveNotFound
	}
	return &LoadOutput{Record: &record}, nil
}
