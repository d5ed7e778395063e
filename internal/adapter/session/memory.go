// Package session stores the last search of each conversation so follow-up
// steps can look offers up by id.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
)

// MemoryStore keeps sessions in process memory. Entries expire after ttl.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	clock    timeutil.Clock
}

type memoryEntry struct {
	session   domain.SearchSession
	expiresAt time.Time
}

// NewMemoryStore creates a MemoryStore. A zero ttl keeps sessions forever.
func NewMemoryStore(ttl time.Duration, clock timeutil.Clock) *MemoryStore {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		clock:    clock,
	}
}

// Save replaces the session's previous search.
func (s *MemoryStore) Save(_ context.Context, session domain.SearchSession) error {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked(now)

	entry := memoryEntry{session: session}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}
	s.sessions[session.ID] = entry
	return nil
}

// Load returns the stored search or domain.ErrSessionNotFound.
func (s *MemoryStore) Load(_ context.Context, sessionID string) (domain.SearchSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || s.expired(entry, s.clock.Now()) {
		return domain.SearchSession{}, domain.ErrSessionNotFound
	}
	return entry.session, nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (s *MemoryStore) evictExpiredLocked(now time.Time) {
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
}

var _ domain.SearchSessionStore = (*MemoryStore)(nil)
