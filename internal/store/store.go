// Package store holds recent analysis results in memory so the report
// endpoint can regenerate a PDF from server-side state instead of
// trusting section content supplied by the client.
//
// Results are keyed by an opaque uuid token, expire after a TTL, and
// the map is capacity-bounded with oldest-first eviction. That keeps
// the store a short-lived handoff between two requests, not a
// persistence layer.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sahidmustakim/hci-agent/internal/models"
)

// Store is a mutex-guarded token → analysis map.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]entry
	capacity int
	ttl      time.Duration
}

type entry struct {
	analysis *models.Analysis
	savedAt  time.Time
}

// New creates a store and starts its background cleanup loop.
func New(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = 100
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	s := &Store{
		entries:  make(map[string]entry),
		capacity: capacity,
		ttl:      ttl,
	}

	go s.cleanup()

	return s
}

// Put saves the analysis under a fresh token and returns it. The token
// is also written back onto the analysis so templates can build the
// download link from one value.
func (s *Store) Put(a *models.Analysis) string {
	token := uuid.New().String()
	a.Token = token

	s.mu.Lock()
	defer s.mu.Unlock()

	// Make room: expired entries first, then the oldest survivor.
	now := time.Now()
	for key, e := range s.entries {
		if now.Sub(e.savedAt) > s.ttl {
			delete(s.entries, key)
		}
	}
	for len(s.entries) >= s.capacity {
		oldestKey := ""
		var oldestAt time.Time
		for key, e := range s.entries {
			if oldestKey == "" || e.savedAt.Before(oldestAt) {
				oldestKey = key
				oldestAt = e.savedAt
			}
		}
		delete(s.entries, oldestKey)
	}

	s.entries[token] = entry{analysis: a, savedAt: now}
	return token
}

// Get returns the analysis for a token, or false when the token is
// unknown or has expired.
func (s *Store) Get(token string) (*models.Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, false
	}
	if time.Since(e.savedAt) > s.ttl {
		return nil, false
	}
	return e.analysis, true
}

// Len reports how many results are currently held (including any not
// yet swept by cleanup).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// cleanup periodically drops expired entries so an idle server doesn't
// hold results forever.
func (s *Store) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for key, e := range s.entries {
			if now.Sub(e.savedAt) > s.ttl {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}
