// Package memory holds in-process implementations of the outbound ports.
package memory

import (
	"context"
	"sync"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/port"
)

// PreferenceStore keeps preferences in a map. Values are lost on restart.
type PreferenceStore struct {
	mu    sync.RWMutex
	prefs map[string]domain.Preferences
}

// NewPreferenceStore returns an empty store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{prefs: make(map[string]domain.Preferences)}
}

// Load returns the preferences of owner or port.ErrNotFound.
func (s *PreferenceStore) Load(_ context.Context, owner string) (domain.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[owner]
	if !ok {
		return domain.Preferences{}, port.ErrNotFound
	}
	return p, nil
}

// Save stores prefs for owner.
func (s *PreferenceStore) Save(_ context.Context, owner string, prefs domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[owner] = prefs
	return nil
}
