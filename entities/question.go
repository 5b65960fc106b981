package entities

type QuestionType string

const (
	QuestionMultiple QuestionType = "multiple"
	QuestionShort    QuestionType = "short"
)

// Question is one entry in a learning path's question ledger.
// Options is present only for multiple-choice questions.
type Question struct {
	ID              string       `json:"id"`
	QuestionText    string       `json:"question_text"`
	AnswerText      string       `json:"answer_text"`
	Type            QuestionType `json:"type"`
	Options         []string     `json:"options,omitempty"`
	SourceCardTitle string       `json:"source_card_title,omitempty"`
}
