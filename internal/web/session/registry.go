// Package session owns the in-memory registry of in-progress questionnaire
// sessions, keyed by the browser session cookie.
//
// Sessions are single-owner: one browser context drives one session, so the
// registry lock only guards map access, never session mutation.
package session

import (
	"sync"
	"time"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/id"
)

// maxIdle is how long an untouched session survives. Abandoned questionnaires
// are swept on the next Create so the registry cannot grow without bound.
const maxIdle = 2 * time.Hour

type entry struct {
	session  *form.Session
	lastSeen time.Time
}

// Registry maps session ids to live questionnaire sessions. Entries idle for
// longer than maxIdle are evicted; the owning browser then restarts the
// questionnaire from the first step.
type Registry struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]*entry
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Create starts a fresh session and returns its id. Expired entries are
// swept here, off the hot read path.
func (r *Registry) Create() (string, *form.Session) {
	sessionID := id.New()
	s := form.NewSession()
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for existingID, e := range r.entries {
		if now.Sub(e.lastSeen) > maxIdle {
			delete(r.entries, existingID)
		}
	}
	r.entries[sessionID] = &entry{session: s, lastSeen: now}
	return sessionID, s
}

// Get returns the session for id when present and not expired. A hit
// refreshes the idle clock.
func (r *Registry) Get(sessionID string) (*form.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	now := r.now()
	if now.Sub(e.lastSeen) > maxIdle {
		delete(r.entries, sessionID)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// Delete discards a session. Called once a session transitions into a
// persisted result.
func (r *Registry) Delete(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// Len returns the number of live sessions, expired entries included until
// the next sweep.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
