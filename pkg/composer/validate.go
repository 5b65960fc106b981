package composer

import (
	"strings"
	"unicode/utf8"

	"lpc/entities"
)

const (
	titleMinLen = 4
	titleMaxLen = 30

	questionTextMax = 500
	minOptions      = 2

	numQuestionsMin = 1
	numQuestionsMax = 20
)

// Validate checks a draft form against the current card selection.
// Pure; safe to call at any time. An empty map means the draft is valid.
func Validate(form DraftForm, cards []entities.Card) FieldErrors {
	errs := FieldErrors{}

	title := strings.TrimSpace(form.Title)
	switch {
	case title == "":
		errs["title"] = "title is required"
	case utf8.RuneCountInString(title) < titleMinLen || utf8.RuneCountInString(title) > titleMaxLen:
		errs["title"] = "title must be 4-30 characters"
	}

	if strings.TrimSpace(form.PathOwnerID) == "" {
		errs["path_owner_id"] = "path owner is required"
	}
	if strings.TrimSpace(form.CategoryID) == "" {
		errs["category_id"] = "category is required"
	}
	if strings.TrimSpace(form.VerificationPeriod) == "" {
		errs["verification_period"] = "verification period is required"
	}
	if len(cards) == 0 {
		errs["cards"] = "select at least one card"
	}

	if form.NumQuestionsPerCard < numQuestionsMin || form.NumQuestionsPerCard > numQuestionsMax {
		errs["num_questions_per_card"] = "questions per card must be 1-20"
	}
	switch form.QuestionStyle {
	case entities.QuestionMultiple, entities.QuestionShort:
	default:
		errs["question_style"] = "question style must be multiple or short"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateQuestion checks a single ledger entry on add/update.
func ValidateQuestion(q entities.Question) FieldErrors {
	errs := FieldErrors{}

	text := strings.TrimSpace(q.QuestionText)
	switch {
	case text == "":
		errs["question_text"] = "question text is required"
	case utf8.RuneCountInString(text) > questionTextMax:
		errs["question_text"] = "question text must be at most 500 characters"
	}

	answer := strings.TrimSpace(q.AnswerText)
	switch {
	case answer == "":
		errs["answer_text"] = "answer is required"
	case utf8.RuneCountInString(answer) > questionTextMax:
		errs["answer_text"] = "answer must be at most 500 characters"
	}

	switch q.Type {
	case entities.QuestionMultiple:
		filled := 0
		for _, opt := range q.Options {
			o := strings.TrimSpace(opt)
			if o == "" {
				continue
			}
			if utf8.RuneCountInString(o) > questionTextMax {
				errs["options"] = "options must be at most 500 characters"
			}
			filled++
		}
		if filled < minOptions {
			errs["options"] = "multiple choice needs at least 2 options"
		}
	case entities.QuestionShort:
		if len(q.Options) > 0 {
			errs["options"] = "short answer questions have no options"
		}
	default:
		errs["type"] = "question type must be multiple or short"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
