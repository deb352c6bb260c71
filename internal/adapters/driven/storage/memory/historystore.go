package memory

import (
	"context"
	"sync"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore for
// testing. It enforces the same retention cap as the sqlite store.
type HistoryStore struct {
	mu  sync.RWMutex
	cap int
	// utterances in insertion order, oldest first
	utterances []domain.Utterance
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{cap: domain.HistoryCap}
}

// Append records an utterance, evicting the oldest past the cap.
func (s *HistoryStore) Append(_ context.Context, u domain.Utterance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.utterances = append(s.utterances, u)
	if len(s.utterances) > s.cap {
		s.utterances = s.utterances[len(s.utterances)-s.cap:]
	}
	return nil
}

// Recent returns up to limit utterances, newest first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.Utterance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.utterances) {
		limit = len(s.utterances)
	}

	out := make([]domain.Utterance, 0, limit)
	for i := len(s.utterances) - 1; i >= len(s.utterances)-limit; i-- {
		out = append(out, s.utterances[i])
	}
	return out, nil
}

// Clear removes all history.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.utterances = nil
	return nil
}

// Close releases store resources (no-op for memory store).
func (s *HistoryStore) Close() error {
	return nil
}
