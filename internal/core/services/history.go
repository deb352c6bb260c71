package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService manages the bounded utterance history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record stores an utterance, evicting the oldest past the cap.
func (s *HistoryService) Record(ctx context.Context, input, output string, seed int64) error {
	u := domain.Utterance{
		ID:        uuid.NewString(),
		Input:     input,
		Output:    output,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Append(ctx, u); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Recent returns up to limit utterances, newest first. A non-positive
// limit returns the full retained history.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Utterance, error) {
	if limit <= 0 {
		limit = domain.HistoryCap
	}
	utterances, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return utterances, nil
}

// Clear removes all history.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
