package serviceImp

import (
	"fmt"
	"log"
	"sync"
	"time"

	"lpc/entities"
	"lpc/pkg/composer"
	"lpc/pkg/gateway"
	"lpc/pkg/generation"
	"lpc/pkg/session/repository"
)

// Registry owns the live composer sessions and mirrors each of them into
// the sqlite snapshot store after every successful mutation.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*composer.Session

	repo  repository.SessionRepository
	gen   generation.Client
	gw    gateway.Client
	orgID string
}

func NewRegistry(repo repository.SessionRepository, gen generation.Client, gw gateway.Client, orgID string) *Registry {
	return &Registry{
		sessions: map[string]*composer.Session{},
		repo:     repo,
		gen:      gen,
		gw:       gw,
		orgID:    orgID,
	}
}

// Restore re-opens every snapshotted session at boot. Published sessions
// come back read-only; undecodable snapshots come back failed.
func (r *Registry) Restore() error {
	recs, err := r.repo.All()
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range recs {
		s := composer.Resume(rec, r.gen, r.gw)
		if s.State() == composer.StateFailed {
			log.Printf("[registry] session %s snapshot unreadable, resumed as failed", rec.SessionID)
		}
		r.sessions[rec.SessionID] = s
	}
	log.Printf("[registry] restored %d session(s)", len(recs))
	return nil
}

func (r *Registry) Create(uid string, cards []entities.Card, form composer.DraftForm) (*composer.Session, error) {
	id := fmt.Sprintf("lp_%x", time.Now().UnixNano())
	s := composer.New(id, r.orgID, uid, cards, form, r.gen, r.gw)

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	if err := r.Persist(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Registry) Get(id, uid string) (*composer.Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		if s.UserID != uid {
			return nil, fmt.Errorf("session %s not found", id)
		}
		return s, nil
	}
	rec, err := r.repo.FindByID(id, uid)
	if err != nil {
		return nil, fmt.Errorf("session %s not found", id)
	}
	s = composer.Resume(*rec, r.gen, r.gw)
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s, nil
}

func (r *Registry) List(uid string) ([]entities.SessionRecord, error) {
	return r.repo.ListByUser(uid)
}

// Persist snapshots the session into the store.
func (r *Registry) Persist(s *composer.Session) error {
	rec := s.Snapshot()
	if err := r.repo.Save(&rec); err != nil {
		return fmt.Errorf("snapshot session %s: %w", s.ID, err)
	}
	return nil
}
