// pkg/generation/mock_client.go

package generation

import (
	"context"
	"fmt"

	"lpc/entities"
)

type mockClient struct{}

// NewMock returns a deterministic offline client, used when GEN_ENDPOINT
// is not configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateQuestions(_ context.Context, req Request) ([]entities.Question, error) {
	out := make([]entities.Question, 0, len(req.Cards)*req.NumOfQuestions)
	for _, card := range req.Cards {
		for i := 1; i <= req.NumOfQuestions; i++ {
			q := entities.Question{
				ID:              fmt.Sprintf("mock-%s-%d", card.ID, i),
				QuestionText:    fmt.Sprintf("What does %q cover? (part %d)", card.Title, i),
				AnswerText:      "See card content (mock)",
				SourceCardTitle: card.Title,
			}
			if req.QuestionType == string(entities.QuestionMultiple) {
				q.Type = entities.QuestionMultiple
				q.Options = []string{
					"See card content (mock)",
					"Unrelated material",
					"None of the above",
				}
			} else {
				q.Type = entities.QuestionShort
			}
			out = append(out, q)
		}
	}
	return out, nil
}
