package driven

import (
	"context"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// HistoryStore persists spoken utterances. Implementations keep at most
// domain.HistoryCap records; appending beyond the cap evicts the oldest.
type HistoryStore interface {
	// Append records an utterance.
	Append(ctx context.Context, u domain.Utterance) error

	// Recent returns up to limit utterances, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Utterance, error)

	// Clear removes all history.
	Clear(ctx context.Context) error

	// Close releases store resources.
	Close() error
}
