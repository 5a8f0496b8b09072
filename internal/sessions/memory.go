package sessions

import (
	"context"
	"sync"
)

// MemoryRegistry keeps sessions in process memory. It is safe for concurrent
// use but single-instance only: sessions are lost on restart and logout does
// not propagate across replicas. Use the Redis registry for multi-instance
// deployments.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[uint]Session
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[uint]Session)}
}

// Add registers or overwrites the session for the account.
func (r *MemoryRegistry) Add(_ context.Context, session Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.UserID] = session
	return nil
}

// Remove drops the session for the account, if any.
func (r *MemoryRegistry) Remove(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
	return nil
}

func (r *MemoryRegistry) Find(_ context.Context, userID uint) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[userID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *MemoryRegistry) All(_ context.Context) ([]Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		all = append(all, session)
	}
	return all, nil
}
