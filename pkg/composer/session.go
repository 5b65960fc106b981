// Package composer owns the learning path composition workflow: a draft
// form, a locally edited question ledger, and the orchestration of the
// external generation and persistence services. All externally observable
// behavior goes through Session transition methods; state is never mutated
// directly.
package composer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"lpc/entities"
	"lpc/pkg/gateway"
	"lpc/pkg/generation"
)

// State is the externally observable workflow status.
type State string

const (
	StateIdle         State = "idle"
	StateGenerating   State = "generating"
	StateGenerated    State = "generated"
	StateRegenerating State = "regenerating"
	StateDrafting     State = "drafting"
	StatePublishing   State = "publishing"
	StatePublished    State = "published"
	StateFailed       State = "failed"
)

// Session drives one learning path draft from idle through generation,
// editing, draft-save, and publish. Methods are safe for concurrent use;
// the mutex is released around network calls so the session stays
// responsive while a call is outstanding.
type Session struct {
	mu sync.Mutex

	ID     string
	OrgID  string
	UserID string

	state    State
	form     DraftForm
	cards    []entities.Card
	ledger   Ledger
	remoteID string

	// Exclusive generation lock. At most one generation call is in flight;
	// later requests coalesce into a single pending retry that fires with
	// the form values current at lock release. reqToken discards stale
	// completions.
	inFlight     bool
	pendingRegen bool
	reqToken     uint64

	persisting bool
	lastErrs   FieldErrors

	gen generation.Client
	gw  gateway.Client
	now func() time.Time
}

func New(id, orgID, userID string, cards []entities.Card, form DraftForm, gen generation.Client, gw gateway.Client) *Session {
	if form.Status == "" {
		form.Status = StatusDraft
	}
	return &Session{
		ID:     id,
		OrgID:  orgID,
		UserID: userID,
		state:  StateIdle,
		form:   form,
		cards:  append([]entities.Card(nil), cards...),
		gen:    gen,
		gw:     gw,
		now:    time.Now,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Form() DraftForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Session) Cards() []entities.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Card(nil), s.cards...)
}

func (s *Session) Questions() []entities.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Questions()
}

func (s *Session) RemoteID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteID
}

// LastValidation returns the error map of the most recent failed
// validation, or nil after a passing one.
func (s *Session) LastValidation() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErrs
}

// TotalQuestionsNeeded is derived; it is never stored on the session.
func (s *Session) TotalQuestionsNeeded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.TotalQuestionsNeeded(s.cards)
}

func (s *Session) guardMutable() error {
	switch s.state {
	case StatePublished:
		return ErrPublished
	case StateFailed:
		return ErrFailed
	}
	return nil
}

// FormPatch updates a subset of draft form fields. Nil fields are left
// untouched.
type FormPatch struct {
	Title               *string                `json:"title,omitempty"`
	PathOwnerID         *string                `json:"path_owner_id,omitempty"`
	CategoryID          *string                `json:"category_id,omitempty"`
	NumQuestionsPerCard *int                   `json:"num_questions_per_card,omitempty"`
	QuestionStyle       *entities.QuestionType `json:"question_style,omitempty"`
	VerificationPeriod  *string                `json:"verification_period,omitempty"`
	CustomDate          *time.Time             `json:"custom_date,omitempty"`
}

// UpdateForm applies the patch. When the session has already generated and
// the patch touches questions-per-card or question style, generation is
// re-run automatically and the ledger is wholesale-replaced, discarding
// manual edits. That wipe is intentional product behavior. The field
// change itself always sticks, even if the triggered regeneration fails;
// the returned error then reports the regeneration failure.
func (s *Session) UpdateForm(ctx context.Context, p FormPatch) error {
	s.mu.Lock()
	if err := s.guardMutable(); err != nil {
		s.mu.Unlock()
		return err
	}

	regenSensitive := false
	if p.Title != nil {
		s.form.Title = *p.Title
	}
	if p.PathOwnerID != nil {
		s.form.PathOwnerID = *p.PathOwnerID
	}
	if p.CategoryID != nil {
		s.form.CategoryID = *p.CategoryID
	}
	if p.VerificationPeriod != nil {
		s.form.VerificationPeriod = *p.VerificationPeriod
	}
	if p.CustomDate != nil {
		s.form.CustomDate = *p.CustomDate
	}
	if p.NumQuestionsPerCard != nil && *p.NumQuestionsPerCard != s.form.NumQuestionsPerCard {
		s.form.NumQuestionsPerCard = *p.NumQuestionsPerCard
		regenSensitive = true
	}
	if p.QuestionStyle != nil && *p.QuestionStyle != s.form.QuestionStyle {
		s.form.QuestionStyle = *p.QuestionStyle
		regenSensitive = true
	}

	trigger := regenSensitive && (s.state == StateGenerated || s.state == StateRegenerating)
	s.mu.Unlock()

	if !trigger {
		return nil
	}
	if err := s.Generate(ctx); err != nil && !errors.Is(err, ErrBusy) {
		return err
	}
	// ErrBusy means the change was coalesced into the pending retry.
	return nil
}

// Generate calls the generation service and replaces the ledger with its
// response. On failure the ledger is untouched and the workflow returns to
// its prior state. A call arriving while one is in flight coalesces into a
// single pending retry and reports ErrBusy.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if err := s.guardMutable(); err != nil {
		s.mu.Unlock()
		return err
	}
	if errs := Validate(s.form, s.cards); errs != nil {
		s.lastErrs = errs
		s.mu.Unlock()
		return &ValidationError{Fields: errs}
	}
	s.lastErrs = nil

	if s.inFlight {
		s.pendingRegen = true
		s.mu.Unlock()
		return ErrBusy
	}
	s.inFlight = true
	s.reqToken++
	token := s.reqToken

	regen := s.state == StateGenerated
	if regen {
		s.state = StateRegenerating
	} else {
		s.state = StateGenerating
	}
	req := generation.Request{
		Cards:          append([]entities.Card(nil), s.cards...),
		NumOfQuestions: s.form.NumQuestionsPerCard,
		QuestionType:   string(s.form.QuestionStyle),
	}
	s.mu.Unlock()

	qs, err := s.gen.GenerateQuestions(ctx, req)

	s.mu.Lock()
	if token != s.reqToken {
		// superseded while resolving; drop this result
		s.mu.Unlock()
		return nil
	}
	s.inFlight = false
	fire := s.pendingRegen
	s.pendingRegen = false

	if err != nil {
		if regen {
			s.state = StateGenerated
		} else {
			s.state = StateIdle
		}
		s.mu.Unlock()
		if fire {
			return s.Generate(ctx)
		}
		reason := err.Error()
		var se *generation.ServiceError
		if errors.As(err, &se) && se.Message != "" {
			reason = se.Message
		}
		return &GenerationError{Reason: reason, Err: err}
	}

	s.ledger.ReplaceAll(qs)
	s.form.Status = StatusGenerated
	s.state = StateGenerated
	s.mu.Unlock()

	if fire {
		// fires with the latest form values, not the ones captured when
		// the coalesced request was dropped
		return s.Generate(ctx)
	}
	return nil
}

// AddQuestion appends a manual question, bounded by the derived total.
func (s *Session) AddQuestion(q entities.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutable(); err != nil {
		return err
	}
	if s.inFlight {
		return ErrBusy
	}
	return s.ledger.Add(q, s.form.TotalQuestionsNeeded(s.cards))
}

// UpdateQuestion edits an existing question in place.
func (s *Session) UpdateQuestion(q entities.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutable(); err != nil {
		return err
	}
	if s.inFlight {
		return ErrBusy
	}
	return s.ledger.Update(q)
}

// RemoveQuestion deletes by id; absent ids are a no-op.
func (s *Session) RemoveQuestion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutable(); err != nil {
		return err
	}
	if s.inFlight {
		return ErrBusy
	}
	s.ledger.Remove(id)
	return nil
}

func (s *Session) buildPayload(status string) (gateway.Payload, error) {
	resolved, err := ResolveVerificationPeriod(s.form.VerificationPeriod, s.form.CustomDate, s.now())
	if err != nil {
		return gateway.Payload{}, err
	}
	vp := resolved.Format(time.RFC3339)
	return gateway.Payload{
		Title:              s.form.Title,
		PathOwner:          s.form.PathOwnerID,
		Category:           s.form.CategoryID,
		NumOfQuestions:     s.form.NumQuestionsPerCard,
		QuestionType:       string(s.form.QuestionStyle),
		VerificationPeriod: &vp,
		Status:             status,
		OrgID:              s.OrgID,
		Questions:          s.ledger.Questions(),
	}, nil
}

// SaveDraft pushes the current draft to the backend. The workflow passes
// through Drafting and returns to its prior state whether the call
// succeeds or fails.
func (s *Session) SaveDraft(ctx context.Context) error {
	s.mu.Lock()
	if err := s.guardMutable(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.inFlight || s.persisting {
		s.mu.Unlock()
		return ErrBusy
	}
	if errs := Validate(s.form, s.cards); errs != nil {
		s.lastErrs = errs
		s.mu.Unlock()
		return &ValidationError{Fields: errs}
	}
	s.lastErrs = nil
	payload, err := s.buildPayload(StatusDraft)
	if err != nil {
		s.mu.Unlock()
		return &ValidationError{Fields: FieldErrors{"verification_period": err.Error()}}
	}
	prior := s.state
	s.state = StateDrafting
	s.persisting = true
	remote := s.remoteID
	s.mu.Unlock()

	var created string
	if remote == "" {
		created, err = s.gw.CreatePath(ctx, payload)
	} else {
		err = s.gw.UpdatePath(ctx, remote, payload)
	}

	s.mu.Lock()
	s.persisting = false
	s.state = prior
	if err != nil {
		s.mu.Unlock()
		return &PersistenceError{Op: "draft", Err: err}
	}
	if created != "" {
		s.remoteID = created
	}
	s.mu.Unlock()
	return nil
}

// Publish pushes the path as published and closes the session. The
// minimum-question guard checks questions-per-card, not the derived total
// across all cards; that asymmetry matches the shipped product behavior.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	if err := s.guardMutable(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.inFlight || s.persisting {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.state != StateGenerated {
		s.mu.Unlock()
		return &ValidationError{Fields: FieldErrors{"status": "generate questions before publishing"}}
	}
	if errs := Validate(s.form, s.cards); errs != nil {
		s.lastErrs = errs
		s.mu.Unlock()
		return &ValidationError{Fields: errs}
	}
	s.lastErrs = nil
	if s.ledger.Len() < s.form.NumQuestionsPerCard {
		s.mu.Unlock()
		return &ValidationError{Fields: FieldErrors{"questions": "not enough questions to publish"}}
	}
	payload, err := s.buildPayload(StatusPublished)
	if err != nil {
		s.mu.Unlock()
		return &ValidationError{Fields: FieldErrors{"verification_period": err.Error()}}
	}
	s.state = StatePublishing
	s.persisting = true
	remote := s.remoteID
	s.mu.Unlock()

	var created string
	if remote == "" {
		created, err = s.gw.CreatePath(ctx, payload)
	} else {
		err = s.gw.UpdatePath(ctx, remote, payload)
	}

	s.mu.Lock()
	s.persisting = false
	if err != nil {
		s.state = StateGenerated
		s.mu.Unlock()
		return &PersistenceError{Op: "publish", Err: err}
	}
	if created != "" {
		s.remoteID = created
	}
	s.form.Status = StatusPublished
	s.state = StatePublished
	s.mu.Unlock()
	return nil
}

type snapshot struct {
	State     State               `json:"state"`
	Form      DraftForm           `json:"form"`
	Cards     []entities.Card     `json:"cards"`
	Questions []entities.Question `json:"questions"`
	RemoteID  string              `json:"remote_id,omitempty"`
}

// Snapshot serializes the session for the sqlite store.
func (s *Session) Snapshot() entities.SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		State:     s.state,
		Form:      s.form,
		Cards:     s.cards,
		Questions: s.ledger.Questions(),
		RemoteID:  s.remoteID,
	}
	b, _ := json.Marshal(snap)
	return entities.SessionRecord{
		SessionID: s.ID,
		OrgID:     s.OrgID,
		UserID:    s.UserID,
		State:     string(s.state),
		Data:      string(b),
	}
}

// Resume rebuilds a session from its snapshot. Transient states settle to
// their resting equivalent; an undecodable snapshot yields a Failed
// session that rejects every mutation.
func Resume(rec entities.SessionRecord, gen generation.Client, gw gateway.Client) *Session {
	s := &Session{
		ID:     rec.SessionID,
		OrgID:  rec.OrgID,
		UserID: rec.UserID,
		gen:    gen,
		gw:     gw,
		now:    time.Now,
	}
	var snap snapshot
	if err := json.Unmarshal([]byte(rec.Data), &snap); err != nil {
		s.state = StateFailed
		return s
	}
	s.form = snap.Form
	s.cards = snap.Cards
	s.ledger.ReplaceAll(snap.Questions)
	s.remoteID = snap.RemoteID
	switch snap.State {
	case StateGenerating:
		s.state = StateIdle
	case StateRegenerating, StateDrafting, StatePublishing:
		s.state = StateGenerated
	case "":
		s.state = StateIdle
	default:
		s.state = snap.State
	}
	return s
}
