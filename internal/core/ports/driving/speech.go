package driving

import (
	"context"
	"time"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// StageTimings records how long each stage of a speak request took.
// The TUI surfaces these in verbose mode.
type StageTimings struct {
	Rewrite time.Duration
	Synth   time.Duration
	Effects time.Duration
	Play    time.Duration
}

// SpeakResult is the outcome of a speak request.
type SpeakResult struct {
	// Rewritten is the constructed-language text that was synthesized.
	Rewritten string

	// OutPath is the rendered WAV path, empty when playback-only.
	OutPath string

	// Timings holds per-stage durations.
	Timings StageTimings
}

// SpeakOptions adjusts a single speak request.
type SpeakOptions struct {
	// OutPath, when set, keeps the rendered WAV at this path instead of
	// a temporary file.
	OutPath string

	// Play controls whether the result is played after rendering.
	Play bool

	// Settings, when non-nil, is used for this request instead of the
	// persisted settings. Callers use this for per-run overrides.
	Settings *domain.AppSettings
}

// SpeechService orchestrates rewrite, synthesis, effects and playback.
type SpeechService interface {
	// Speak rewrites text and renders it through the configured engine
	// and effects chain.
	Speak(ctx context.Context, text string, opts SpeakOptions) (*SpeakResult, error)

	// DryRun rewrites text without synthesis and records it in history.
	DryRun(ctx context.Context, text string) (*SpeakResult, error)
}
