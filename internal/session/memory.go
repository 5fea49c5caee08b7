package session

import (
	"context"
	"sync"
	"time"

	"game_catalog/internal/model"
)

const janitorInterval = time.Minute

type memoryEntry struct {
	user      *model.SessionUser
	expiresAt time.Time
}

// MemoryStore is the default, process-local session backend: a
// mutex-guarded map with per-entry expiry. Expired entries are rejected
// lazily on Get and reaped by a background janitor.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a MemoryStore with the given time-to-live and
// starts its janitor goroutine. Call Close to stop the janitor.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*model.SessionUser, error) {
	s.mu.RLock()
	e, ok := s.entries[sid]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.user, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, user *model.SessionUser) error {
	s.mu.Lock()
	s.entries[sid] = memoryEntry{user: user, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.entries, sid)
	s.mu.Unlock()
	return nil
}

// Close stops the janitor goroutine
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for sid, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, sid)
				}
			}
			s.mu.Unlock()
		}
	}
}
