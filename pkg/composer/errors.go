package composer

import (
	"errors"
	"fmt"
)

// FieldErrors maps a form or question field name to a human-readable problem.
type FieldErrors map[string]string

var (
	// ErrCapacityExceeded rejects an Add that would grow the ledger past
	// the derived total for the current card selection.
	ErrCapacityExceeded = errors.New("question capacity exceeded")

	// ErrBusy rejects an action while a generation call is in flight.
	ErrBusy = errors.New("generation in flight")

	// ErrPublished rejects any mutation of a published session.
	ErrPublished = errors.New("session already published")

	// ErrFailed rejects work on a session whose snapshot could not be
	// restored.
	ErrFailed = errors.New("session is unrecoverable")
)

// ValidationError carries the field-error map from a failed draft validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft validation failed: %d field(s)", len(e.Fields))
}

// InvalidQuestionError carries field errors from an Add/Update of a
// malformed question. The ledger is left unchanged.
type InvalidQuestionError struct {
	Fields FieldErrors
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("invalid question: %d field(s)", len(e.Fields))
}

// GenerationError wraps a failed call to the question-generation service.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Reason != "" {
		return "generation failed: " + e.Reason
	}
	return "generation failed"
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed save-draft or publish call.
type PersistenceError struct {
	Op  string // "draft" | "publish"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
