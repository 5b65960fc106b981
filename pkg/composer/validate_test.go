package composer

import (
	"strings"
	"testing"

	"lpc/entities"
)

func validForm() DraftForm {
	return DraftForm{
		Title:               "Onboarding basics",
		PathOwnerID:         "user_1",
		CategoryID:          "team_1",
		NumQuestionsPerCard: 5,
		QuestionStyle:       entities.QuestionMultiple,
		VerificationPeriod:  Period2Week,
	}
}

func someCards(n int) []entities.Card {
	cards := make([]entities.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, entities.Card{
			ID:      "card_" + string(rune('a'+i)),
			Title:   "Card " + string(rune('A'+i)),
			Content: "content",
			Tags:    []string{"onboarding"},
		})
	}
	return cards
}

func TestValidate_OK(t *testing.T) {
	if errs := Validate(validForm(), someCards(3)); errs != nil {
		t.Fatalf("expected valid draft, got %v", errs)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*DraftForm)
		cards int
		field string
	}{
		{"missing title", func(f *DraftForm) { f.Title = "  " }, 3, "title"},
		{"title too short", func(f *DraftForm) { f.Title = "abc" }, 3, "title"},
		{"title too long", func(f *DraftForm) { f.Title = strings.Repeat("x", 31) }, 3, "title"},
		{"missing owner", func(f *DraftForm) { f.PathOwnerID = "" }, 3, "path_owner_id"},
		{"missing category", func(f *DraftForm) { f.CategoryID = "" }, 3, "category_id"},
		{"missing period", func(f *DraftForm) { f.VerificationPeriod = "" }, 3, "verification_period"},
		{"no cards", func(f *DraftForm) {}, 0, "cards"},
		{"zero questions per card", func(f *DraftForm) { f.NumQuestionsPerCard = 0 }, 3, "num_questions_per_card"},
		{"too many questions per card", func(f *DraftForm) { f.NumQuestionsPerCard = 21 }, 3, "num_questions_per_card"},
		{"bad style", func(f *DraftForm) { f.QuestionStyle = "essay" }, 3, "question_style"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mut(&form)
			errs := Validate(form, someCards(tc.cards))
			if errs == nil {
				t.Fatalf("expected validation error on %s", tc.field)
			}
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidate_TitleBoundaries(t *testing.T) {
	form := validForm()
	form.Title = "abcd" // exactly 4
	if errs := Validate(form, someCards(1)); errs != nil {
		t.Fatalf("4-char title should pass, got %v", errs)
	}
	form.Title = strings.Repeat("x", 30)
	if errs := Validate(form, someCards(1)); errs != nil {
		t.Fatalf("30-char title should pass, got %v", errs)
	}
}

func TestValidateQuestion(t *testing.T) {
	long := strings.Repeat("x", 501)
	cases := []struct {
		name  string
		q     entities.Question
		field string // "" means valid
	}{
		{"valid short", entities.Question{ID: "q1", QuestionText: "What?", AnswerText: "That", Type: entities.QuestionShort}, ""},
		{"valid multiple", entities.Question{ID: "q2", QuestionText: "Pick", AnswerText: "A", Type: entities.QuestionMultiple, Options: []string{"A", "B"}}, ""},
		{"empty text", entities.Question{ID: "q3", AnswerText: "A", Type: entities.QuestionShort}, "question_text"},
		{"text too long", entities.Question{ID: "q4", QuestionText: long, AnswerText: "A", Type: entities.QuestionShort}, "question_text"},
		{"empty answer", entities.Question{ID: "q5", QuestionText: "Q", Type: entities.QuestionShort}, "answer_text"},
		{"one option only", entities.Question{ID: "q6", QuestionText: "Q", AnswerText: "A", Type: entities.QuestionMultiple, Options: []string{"A"}}, "options"},
		{"blank options do not count", entities.Question{ID: "q7", QuestionText: "Q", AnswerText: "A", Type: entities.QuestionMultiple, Options: []string{"A", "  "}}, "options"},
		{"short with options", entities.Question{ID: "q8", QuestionText: "Q", AnswerText: "A", Type: entities.QuestionShort, Options: []string{"A"}}, "options"},
		{"unknown type", entities.Question{ID: "q9", QuestionText: "Q", AnswerText: "A", Type: "essay"}, "type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateQuestion(tc.q)
			if tc.field == "" {
				if errs != nil {
					t.Fatalf("expected valid, got %v", errs)
				}
				return
			}
			if errs == nil {
				t.Fatalf("expected error on %q", tc.field)
			}
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, errs)
			}
		})
	}
}
