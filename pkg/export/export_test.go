package export

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"lpc/entities"
)

func TestQuestionSheet(t *testing.T) {
	qs := []entities.Question{
		{ID: "q1", QuestionText: "Pick one", AnswerText: "A", Type: entities.QuestionMultiple, Options: []string{"A", "B", "C"}, SourceCardTitle: "Card 1"},
		{ID: "q2", QuestionText: "Explain", AnswerText: "Because", Type: entities.QuestionShort},
	}
	buf, err := QuestionSheet("Onboarding basics", qs)
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Questions")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 { // header + 2 questions
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != "Question" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][1] != "Pick one" || rows[1][4] != "A | B | C" {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if rows[2][3] != "short" {
		t.Fatalf("row 2 = %v", rows[2])
	}
}

func TestQuestionSheet_Empty(t *testing.T) {
	buf, err := QuestionSheet("", nil)
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Questions")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header only", len(rows))
	}
}
