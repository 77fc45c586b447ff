// internal/state/store.go
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store holds every live session, keyed by opaque session id. There is no
// persistence behind it: a restart forgets every cart, order and transcript.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
}

func NewStore(idleTTL, sweepEvery time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
	}
	go st.sweep(sweepEvery)
	return st
}

// Create mints a new session with a fresh opaque id.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString())
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for id, or nil when unknown or expired.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// GetOrCreate resolves id to a live session, minting one for unknown ids so
// a client that lost its session (or a restart) keeps working.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if s := st.Get(id); s != nil {
			return s
		}
	}
	return st.Create()
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// sweep drops sessions idle past the TTL.
func (st *Store) sweep(every time.Duration) {
	for {
		time.Sleep(every)
		cutoff := time.Now().Add(-st.idleTTL)
		var dropped int
		st.mu.Lock()
		for id, s := range st.sessions {
			if s.idleSince().Before(cutoff) {
				delete(st.sessions, id)
				dropped++
			}
		}
		st.mu.Unlock()
		if dropped > 0 {
			logrus.WithField("sessions", dropped).Info("Swept idle sessions")
		}
	}
}
