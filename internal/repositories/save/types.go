package save

import "github.com/KirkDiggler/hangman/internal/models"

type SaveInput struct {
	Record *models.SaveRecord
}

type LoadOutput struct {
	Record *models.SaveRecord
}
