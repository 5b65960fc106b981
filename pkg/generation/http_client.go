// pkg/generation/http_client.go

package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lpc/entities"
)

type httpClient struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func NewHTTP(endpoint, key string) Client {
	return &httpClient{
		endpoint: endpoint,
		key:      key,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ServiceError is a non-2xx answer from the generation service. Message is
// the body's message field when present.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("generation service: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("generation service: status %d", e.Status)
}

type wireQuestion struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"question_text"`
	CorrectAnswer string   `json:"correct_answer"`
	QuestionType  string   `json:"question_type"` // multiple_choice|short_answer|...
	Options       []string `json:"options,omitempty"`
	CardInfo      *struct {
		CardTitle string `json:"card_title"`
	} `json:"card_info,omitempty"`
}

func (c *httpClient) GenerateQuestions(ctx context.Context, reqBody Request) ([]entities.Question, error) {
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(c.endpoint, "/")+"/learningpath/questions-generation", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &ServiceError{Status: resp.StatusCode, Message: body.Message}
	}

	var out struct {
		Questions []wireQuestion `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}

	qs := make([]entities.Question, 0, len(out.Questions))
	for i, wq := range out.Questions {
		qs = append(qs, mapQuestion(wq, i))
	}
	return qs, nil
}

func mapQuestion(wq wireQuestion, ord int) entities.Question {
	q := entities.Question{
		ID:           wq.ID,
		QuestionText: Flatten(wq.QuestionText),
		AnswerText:   Flatten(wq.CorrectAnswer),
	}
	if q.ID == "" {
		q.ID = fmt.Sprintf("gen-%d", ord+1)
	}
	if wq.QuestionType == "multiple_choice" {
		q.Type = entities.QuestionMultiple
		q.Options = make([]string, 0, len(wq.Options))
		for _, o := range wq.Options {
			q.Options = append(q.Options, Flatten(o))
		}
	} else {
		q.Type = entities.QuestionShort
	}
	if wq.CardInfo != nil {
		q.SourceCardTitle = wq.CardInfo.CardTitle
	}
	return q
}
