// pkg/generation/client.go

package generation

import (
	"context"

	"lpc/entities"
)

// Request is the wire payload for the question-generation service.
type Request struct {
	Cards          []entities.Card `json:"cards"`
	NumOfQuestions int             `json:"num_of_questions"`
	QuestionType   string          `json:"question_type"` // multiple|short
}

type Client interface {
	// GenerateQuestions asks the service for NumOfQuestions questions per
	// card and returns them mapped to ledger entries.
	GenerateQuestions(ctx context.Context, req Request) ([]entities.Question, error)
}
