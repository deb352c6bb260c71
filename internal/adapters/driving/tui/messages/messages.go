// Package messages defines Bubbletea message types for the REPL.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// SpeakCompleted carries the outcome of an asynchronous speak request.
type SpeakCompleted struct {
	Input  string
	Result *driving.SpeakResult
	Err    error
}

// HistoryLoaded carries recent utterances from the history service.
type HistoryLoaded struct {
	Utterances []domain.Utterance
	Err        error
}

// HistoryCleared signals the history was cleared.
type HistoryCleared struct {
	Err error
}
