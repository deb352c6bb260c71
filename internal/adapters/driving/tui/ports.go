// Package tui provides the interactive REPL for grumble.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the REPL.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Speech renders and plays rewritten text.
	Speech driving.SpeechService

	// Settings provides the persisted configuration.
	Settings driving.SettingsService

	// Rewriter produces the instant rewrite preview.
	Rewriter driving.Rewriter

	// History exposes recent utterances.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Speech == nil {
		return ErrMissingSpeechService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	if p.Rewriter == nil {
		return ErrMissingRewriter
	}
	// History is optional
	return nil
}
