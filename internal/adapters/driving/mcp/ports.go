package mcp

import (
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Speech renders and plays rewritten text.
	Speech driving.SpeechService

	// Rewriter performs the pure text rewrite.
	Rewriter driving.Rewriter

	// Settings provides the persisted configuration.
	Settings driving.SettingsService

	// History exposes recent utterances.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Speech == nil {
		return ErrMissingSpeechService
	}
	if p.Rewriter == nil {
		return ErrMissingRewriter
	}
	// Settings and History are optional
	return nil
}
