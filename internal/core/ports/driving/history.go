package driving

import (
	"context"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// HistoryService exposes the bounded utterance history.
type HistoryService interface {
	// Record stores an utterance, evicting the oldest past the cap.
	Record(ctx context.Context, input, output string, seed int64) error

	// Recent returns up to limit utterances, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Utterance, error)

	// Clear removes all history.
	Clear(ctx context.Context) error
}
