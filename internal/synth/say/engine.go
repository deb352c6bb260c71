// Package say drives the macOS built-in say command. say renders AIFF,
// so sox is used to convert to WAV and pad the tail.
package say

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.Synthesizer = (*Engine)(nil)

const (
	// defaultVoice is a deeper male voice that pitches down well.
	defaultVoice = "Alex"

	// speechRate is words per minute. Deliberately slow; the effects
	// chain speeds nothing up.
	speechRate = "70"

	// sampleRate for the converted WAV output.
	sampleRate = "24000"
)

// Engine synthesizes speech with the macOS say command.
type Engine struct {
	lookPath func(string) (string, error)
}

// New creates a say engine.
func New() *Engine {
	return &Engine{lookPath: exec.LookPath}
}

// Name returns the engine identifier.
func (e *Engine) Name() string {
	return "say"
}

// Available reports whether say and sox are both on PATH.
func (e *Engine) Available() bool {
	return e.Validate() == nil
}

// Validate checks engine dependencies.
func (e *Engine) Validate() error {
	if _, err := e.lookPath("say"); err != nil {
		return fmt.Errorf("%w: say (macOS only)", domain.ErrToolMissing)
	}
	if _, err := e.lookPath("sox"); err != nil {
		return fmt.Errorf("%w: sox (needed to convert say output to WAV)", domain.ErrToolMissing)
	}
	return nil
}

// Synthesize renders text to a WAV file at outPath. The AIFF that say
// produces is converted with sox, padding half a second of silence so
// the last word is not clipped by the effects chain.
func (e *Engine) Synthesize(ctx context.Context, text, voice, outPath string) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if voice == "" {
		voice = defaultVoice
	}

	aiffPath := replaceSuffix(outPath, ".aiff")
	tmpPath := replaceSuffix(outPath, ".tmp.wav")
	defer os.Remove(aiffPath)

	sayArgs := []string{"-o", aiffPath, "-v", voice, "-r", speechRate, text}
	logger.Debug("Running say %v", sayArgs)
	if out, err := exec.CommandContext(ctx, "say", sayArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("say failed: %w: %s", err, out)
	}

	soxArgs := []string{aiffPath, "-r", sampleRate, tmpPath, "pad", "0", "0.5"}
	logger.Debug("Running sox %v", soxArgs)
	if out, err := exec.CommandContext(ctx, "sox", soxArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("sox conversion failed: %w: %s", err, out)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("moving output: %w", err)
	}
	return nil
}

// replaceSuffix swaps the extension of path for suffix.
func replaceSuffix(path, suffix string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + suffix
	}
	return path + suffix
}
