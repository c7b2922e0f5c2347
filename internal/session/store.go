// Package session keeps one form controller per browser session.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
)

const cleanupInterval = 1 * time.Minute

// Factory builds the controller for a new session.
type Factory func(initial model.FormInput) *gift.Controller

type entry struct {
	ctrl     *gift.Controller
	lastSeen time.Time
}

// Store maps session ids to controllers and expires idle sessions.
// Sessions with a request in flight are never expired.
type Store struct {
	factory Factory
	initial model.FormInput
	ttl     time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry

	cleanupDone chan struct{}
	closeOnce   sync.Once
}

// NewStore creates a store and starts its cleanup loop.
// Close must be called on shutdown.
func NewStore(factory Factory, initial model.FormInput, ttl time.Duration) (*Store, error) {
	if factory == nil {
		return nil, errors.New("controller factory is required")
	}
	if ttl <= 0 {
		return nil, errors.New("session TTL must be positive")
	}

	s := &Store{
		factory:     factory,
		initial:     initial,
		ttl:         ttl,
		now:         time.Now,
		sessions:    make(map[string]*entry),
		cleanupDone: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s, nil
}

// Get returns the controller for id, creating a new session when id is empty
// or unknown. The returned id is the one the caller should keep.
func (s *Store) Get(id string) (string, *gift.Controller) {
	now := s.now()

	if id != "" {
		s.mu.Lock()
		if e, ok := s.sessions[id]; ok {
			e.lastSeen = now
			s.mu.Unlock()
			return id, e.ctrl
		}
		s.mu.Unlock()
	}

	id = uuid.NewString()
	ctrl := s.factory(s.initial)

	s.mu.Lock()
	s.sessions[id] = &entry{ctrl: ctrl, lastSeen: now}
	s.mu.Unlock()

	slog.Debug("session created", "session", id)
	return id, ctrl
}

// Lookup returns the controller for an existing session.
func (s *Store) Lookup(id string) (*gift.Controller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return e.ctrl, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.cleanupDone:
			return
		}
	}
}

// cleanup removes sessions not seen within the TTL.
func (s *Store) cleanup() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if e.ctrl.State().Status == gift.StatusLoading {
			continue
		}
		delete(s.sessions, id)
		removed++
	}

	if removed > 0 {
		slog.Debug("expired sessions removed", "count", removed, "remaining", len(s.sessions))
	}
	return removed
}

// Close stops the cleanup loop. Safe to call multiple times.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.cleanupDone)
	})
}
