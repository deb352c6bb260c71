package driven

import (
	"context"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// EffectsProcessor applies the voice-character effects chain (pitch
// shift, grit, chorus, EQ) to a synthesized WAV file. All processing is
// delegated to external command-line tools.
type EffectsProcessor interface {
	// Process reads inPath, applies the chain described by settings and
	// writes the result to outPath.
	Process(ctx context.Context, inPath, outPath string, settings domain.EffectsSettings) error

	// Validate checks the required external tools are installed.
	Validate() error
}
