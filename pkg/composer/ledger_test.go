package composer

import (
	"errors"
	"testing"

	"lpc/entities"
)

func shortQ(id, text string) entities.Question {
	return entities.Question{ID: id, QuestionText: text, AnswerText: "answer", Type: entities.QuestionShort}
}

func TestLedger_AddRespectsCapacity(t *testing.T) {
	var l Ledger
	for i := 0; i < 3; i++ {
		if err := l.Add(shortQ(string(rune('a'+i)), "q"), 3); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	err := l.Add(shortQ("d", "one too many"), 3)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("ledger grew past capacity: %d", l.Len())
	}
}

func TestLedger_AddExistingIDReplacesWithoutCapacityCheck(t *testing.T) {
	var l Ledger
	if err := l.Add(shortQ("a", "original"), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	// ledger is full, but re-adding the same id edits in place
	if err := l.Add(shortQ("a", "edited"), 1); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("update changed length: %d", l.Len())
	}
	if got := l.Questions()[0].QuestionText; got != "edited" {
		t.Fatalf("expected edited text, got %q", got)
	}
}

func TestLedger_UpdateInPlace(t *testing.T) {
	var l Ledger
	_ = l.Add(shortQ("a", "one"), 5)
	_ = l.Add(shortQ("b", "two"), 5)

	if err := l.Update(shortQ("a", "one edited")); err != nil {
		t.Fatalf("update: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("update changed length: %d", l.Len())
	}
	qs := l.Questions()
	if qs[0].QuestionText != "one edited" || qs[1].QuestionText != "two" {
		t.Fatalf("unexpected ledger after update: %+v", qs)
	}

	var iq *InvalidQuestionError
	if err := l.Update(shortQ("zzz", "missing")); !errors.As(err, &iq) {
		t.Fatalf("expected InvalidQuestionError for unknown id, got %v", err)
	}
}

func TestLedger_InvalidQuestionLeavesLedgerUnchanged(t *testing.T) {
	var l Ledger
	_ = l.Add(shortQ("a", "one"), 5)

	bad := entities.Question{ID: "b", QuestionText: "Pick", AnswerText: "A", Type: entities.QuestionMultiple, Options: []string{"only one"}}
	var iq *InvalidQuestionError
	if err := l.Add(bad, 5); !errors.As(err, &iq) {
		t.Fatalf("expected InvalidQuestionError, got %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("invalid add mutated ledger: %d", l.Len())
	}
}

func TestLedger_RemoveIsNoopWhenAbsent(t *testing.T) {
	var l Ledger
	_ = l.Add(shortQ("a", "one"), 5)
	l.Remove("nope")
	if l.Len() != 1 {
		t.Fatalf("remove of absent id mutated ledger")
	}
	l.Remove("a")
	if l.Len() != 0 {
		t.Fatalf("remove failed")
	}
}

func TestLedger_ReplaceAllCopies(t *testing.T) {
	var l Ledger
	src := []entities.Question{shortQ("a", "one"), shortQ("b", "two")}
	l.ReplaceAll(src)
	src[0].QuestionText = "mutated"
	if l.Questions()[0].QuestionText != "one" {
		t.Fatalf("ReplaceAll aliased caller slice")
	}
}
