package repository

import (
	"fmt"
	"sync"

	"github.com/janvipargai1/ai-interview-simulator/internal/model"
)

// SessionRepository keeps active interview sessions in memory. Sessions
// are never persisted; a terminated session survives only until it is
// deleted or the process exits.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*model.InterviewSession
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*model.InterviewSession)}
}

func (r *SessionRepository) Save(session *model.InterviewSession) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID.String()] = session
	return nil
}

func (r *SessionRepository) FindByID(id string) (*model.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return session, nil
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// WithSession runs fn while holding the store lock, giving fn exclusive
// access to the session's state transitions.
func (r *SessionRepository) WithSession(id string, fn func(*model.InterviewSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	return fn(session)
}
