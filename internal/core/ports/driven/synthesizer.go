package driven

import "context"

// Synthesizer converts text into a WAV file via an external
// text-to-speech engine. Engines carry no state between calls.
type Synthesizer interface {
	// Name returns the engine identifier (e.g. "espeak", "say").
	Name() string

	// Available performs a lightweight runtime check that the engine
	// can be used on this system.
	Available() bool

	// Validate checks engine dependencies and returns a descriptive
	// error when something is missing.
	Validate() error

	// Synthesize renders text to a WAV file at outPath using the given
	// voice. An empty voice selects the engine default.
	Synthesize(ctx context.Context, text, voice, outPath string) error
}
