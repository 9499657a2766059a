package tracking

import (
	gocache "github.com/patrickmn/go-cache"
	"sync"
	"time"
)

// Sessions keeps one Tracker per session. A session's tracker is dropped after it
// has not been touched for ttl.
type Sessions struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewSessions(ttl, cleanupInterval time.Duration) *Sessions {
	return &Sessions{cache: gocache.New(ttl, cleanupInterval)}
}

// ForSession returns the tracker of sessionID, creating it on first use, and extends its lifetime.
func (s *Sessions) ForSession(sessionID string) *Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracker := NewTracker()
	if cached, found := s.cache.Get(sessionID); found {
		tracker = cached.(*Tracker)
	}
	s.cache.Set(sessionID, tracker, gocache.DefaultExpiration)
	return tracker
}

// Lookup returns the tracker of sessionID without creating or extending it.
func (s *Sessions) Lookup(sessionID string) (*Tracker, bool) {
	cached, found := s.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	return cached.(*Tracker), true
}

func (s *Sessions) Drop(sessionID string) {
	s.cache.Delete(sessionID)
}

func (s *Sessions) Len() int {
	return s.cache.ItemCount()
}
