package composer

import "lpc/entities"

// Ledger is the authoritative local question list for one draft. It is not
// safe for concurrent use on its own; the owning Session serializes access.
type Ledger struct {
	questions []entities.Question
}

func (l *Ledger) Len() int { return len(l.questions) }

// Questions returns a copy so callers cannot mutate the ledger in place.
func (l *Ledger) Questions() []entities.Question {
	out := make([]entities.Question, len(l.questions))
	copy(out, l.questions)
	return out
}

func (l *Ledger) indexOf(id string) int {
	for i, q := range l.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a question. capacity is the derived total for the current
// selection; an Add that would exceed it is rejected. Adding an id that
// already exists replaces in place (capacity does not apply).
func (l *Ledger) Add(q entities.Question, capacity int) error {
	if errs := ValidateQuestion(q); errs != nil {
		return &InvalidQuestionError{Fields: errs}
	}
	if i := l.indexOf(q.ID); i >= 0 {
		l.questions[i] = q
		return nil
	}
	if len(l.questions) >= capacity {
		return ErrCapacityExceeded
	}
	l.questions = append(l.questions, q)
	return nil
}

// Update replaces an existing question by id. Editing never changes the
// ledger length, so no capacity check applies.
func (l *Ledger) Update(q entities.Question) error {
	if errs := ValidateQuestion(q); errs != nil {
		return &InvalidQuestionError{Fields: errs}
	}
	i := l.indexOf(q.ID)
	if i < 0 {
		return &InvalidQuestionError{Fields: FieldErrors{"id": "question not found"}}
	}
	l.questions[i] = q
	return nil
}

// Remove deletes by id; absent ids are a no-op.
func (l *Ledger) Remove(id string) {
	if i := l.indexOf(id); i >= 0 {
		l.questions = append(l.questions[:i], l.questions[i+1:]...)
	}
}

// ReplaceAll discards the ledger wholesale. Generation orchestrator only.
func (l *Ledger) ReplaceAll(qs []entities.Question) {
	l.questions = make([]entities.Question, len(qs))
	copy(l.questions, qs)
}
