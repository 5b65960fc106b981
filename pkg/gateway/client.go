// pkg/gateway/client.go

package gateway

import (
	"context"

	"lpc/entities"
)

// Payload is the wire body for the backend's learning-path endpoints.
type Payload struct {
	Title              string              `json:"title"`
	PathOwner          string              `json:"path_owner"`
	Category           string              `json:"category"`
	NumOfQuestions     int                 `json:"num_of_questions"`
	QuestionType       string              `json:"question_type"`
	VerificationPeriod *string             `json:"verification_period"` // RFC3339 or null
	Status             string              `json:"status"`              // draft|published
	OrgID              string              `json:"org_id"`
	Questions          []entities.Question `json:"questions"`
}

type Client interface {
	// CreatePath POSTs a new learning path and returns the backend id.
	CreatePath(ctx context.Context, p Payload) (string, error)
	// UpdatePath PUTs an existing learning path.
	UpdatePath(ctx context.Context, id string, p Payload) error
}
