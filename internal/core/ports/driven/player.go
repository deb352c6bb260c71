package driven

import "context"

// Player plays a rendered WAV file on the local audio device.
type Player interface {
	// Play blocks until playback finishes or ctx is cancelled.
	Play(ctx context.Context, wavPath string) error

	// Validate checks a playback binary is available.
	Validate() error
}
