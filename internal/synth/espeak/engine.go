// Package espeak drives the espeak-ng command-line synthesizer.
package espeak

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.Synthesizer = (*Engine)(nil)

// defaultVoice is the espeak voice used when none is configured.
const defaultVoice = "en"

// speechRate is words per minute. Slower than the espeak default so the
// pitched-down output stays intelligible.
const speechRate = "140"

// Engine synthesizes speech with espeak-ng (or the older espeak binary).
type Engine struct {
	lookPath func(string) (string, error)
}

// New creates an espeak engine.
func New() *Engine {
	return &Engine{lookPath: exec.LookPath}
}

// Name returns the engine identifier.
func (e *Engine) Name() string {
	return "espeak"
}

// binary resolves the espeak binary, preferring espeak-ng.
func (e *Engine) binary() (string, error) {
	if path, err := e.lookPath("espeak-ng"); err == nil {
		return path, nil
	}
	return e.lookPath("espeak")
}

// Available reports whether an espeak binary is on PATH.
func (e *Engine) Available() bool {
	_, err := e.binary()
	return err == nil
}

// Validate checks engine dependencies.
func (e *Engine) Validate() error {
	if _, err := e.binary(); err != nil {
		return fmt.Errorf("%w: espeak-ng (install espeak-ng)", domain.ErrToolMissing)
	}
	return nil
}

// Synthesize renders text to a WAV file at outPath.
func (e *Engine) Synthesize(ctx context.Context, text, voice, outPath string) error {
	bin, err := e.binary()
	if err != nil {
		return fmt.Errorf("%w: espeak-ng", domain.ErrToolMissing)
	}
	if voice == "" {
		voice = defaultVoice
	}

	args := []string{"-v", voice, "-s", speechRate, "-w", outPath, text}
	logger.Debug("Running %s %v", bin, args)

	cmd := exec.CommandContext(ctx, bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak failed: %w: %s", err, out)
	}
	return nil
}
