package memory

import (
	"sync"
	"time"

	"vanbook/internal/app/session"
)

// SessionStore keeps live booking sessions in memory. Sessions are ephemeral
// per page view; a TTL sweep reclaims abandoned ones. Nothing here survives a
// restart, which is the intended shape.
type SessionStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]*entry
}

type entry struct {
	sess      *session.Session
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl, m: make(map[string]*entry)}
}

func (st *SessionStore) Put(s *session.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.m[s.ID()] = &entry{sess: s, expiresAt: time.Now().Add(st.ttl)}
}

// Get returns the session and refreshes its expiry; an active visitor keeps
// the session alive.
func (st *SessionStore) Get(id string) (*session.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.m[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(st.m, id)
		return nil, false
	}
	e.expiresAt = time.Now().Add(st.ttl)
	return e.sess, true
}

// Sweep drops every expired session and reports how many were removed.
func (st *SessionStore) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, e := range st.m {
		if now.After(e.expiresAt) {
			delete(st.m, id)
			removed++
		}
	}
	return removed
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.m)
}
