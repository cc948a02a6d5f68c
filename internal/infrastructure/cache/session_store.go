package cache

import (
	"sync"
	"time"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

// SessionStore is an in-memory store for review sessions with expiration.
// Sessions are transient by design: nothing survives a process restart.
//
// Put and Get both clone, so stored sessions are touched only under the
// store's lock. A caller running a long relay mutates its private copy and
// publishes each phase change with another Put; concurrent readers polling
// Get never observe a half-written session.
type SessionStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*sessionItem
}

type sessionItem struct {
	session    *entities.ReviewSession
	expireTime time.Time
}

// NewSessionStore creates a session store with the given time-to-live
func NewSessionStore(ttl time.Duration) *SessionStore {
	store := &SessionStore{
		ttl:   ttl,
		items: make(map[string]*sessionItem),
	}

	// Cleanup goroutine removes expired sessions
	go store.cleanupExpired()

	return store
}

// Put stores a copy of the session, resetting its expiration
func (st *SessionStore) Put(session *entities.ReviewSession) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.items[session.ID.String()] = &sessionItem{
		session:    session.Clone(),
		expireTime: time.Now().Add(st.ttl),
	}
}

// Get retrieves a copy of a session by id (nil if not found or expired)
func (st *SessionStore) Get(id string) (*entities.ReviewSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	item, exists := st.items[id]
	if !exists {
		return nil, false
	}

	if time.Now().After(item.expireTime) {
		return nil, false
	}

	return item.session.Clone(), true
}

// Delete removes a session
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.items, id)
}

// cleanupExpired periodically removes expired sessions
func (st *SessionStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		st.mu.Lock()
		now := time.Now()
		for id, item := range st.items {
			if now.After(item.expireTime) {
				delete(st.items, id)
			}
		}
		st.mu.Unlock()
	}
}
