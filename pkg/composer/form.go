package composer

import (
	"time"

	"lpc/entities"
)

// Verification period tokens accepted on the draft form. CustomDate is
// consulted only for PeriodCustom.
const (
	PeriodCustom   = "custom"
	Period1Week    = "1week"
	Period2Week    = "2week"
	Period1Month   = "1month"
	Period6Months  = "6months"
	Period12Months = "12months"
)

const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusPublished = "published"
)

// DraftForm holds the editable metadata of a learning path draft.
type DraftForm struct {
	Title               string                `json:"title"`
	PathOwnerID         string                `json:"path_owner_id"`
	CategoryID          string                `json:"category_id"`
	NumQuestionsPerCard int                   `json:"num_questions_per_card"`
	QuestionStyle       entities.QuestionType `json:"question_style"`
	VerificationPeriod  string                `json:"verification_period"`
	CustomDate          time.Time             `json:"custom_date,omitempty"`
	Status              string                `json:"status"`
}

// TotalQuestionsNeeded is always derived from the current card count and
// per-card setting, never stored.
func (f DraftForm) TotalQuestionsNeeded(cards []entities.Card) int {
	return len(cards) * f.NumQuestionsPerCard
}
