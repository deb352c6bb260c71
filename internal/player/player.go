// Package player plays rendered WAV files through whatever command-line
// audio player the system has.
package player

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/logger"
)

// Ensure Player implements the interface.
var _ driven.Player = (*Player)(nil)

// candidates are the playback binaries tried in order when no override
// is configured: macOS first, then PulseAudio, ALSA and ffmpeg.
var candidates = []string{"afplay", "paplay", "aplay", "ffplay"}

// Player shells out to a command-line audio player.
type Player struct {
	override string
	lookPath func(string) (string, error)
}

// New creates a player. override, when non-empty, names the binary to
// use instead of autodetection.
func New(override string) *Player {
	return &Player{override: override, lookPath: exec.LookPath}
}

// command resolves the playback binary.
func (p *Player) command() (string, error) {
	if p.override != "" {
		return p.lookPath(p.override)
	}
	for _, name := range candidates {
		if path, err := p.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no audio player (tried %v)", domain.ErrToolMissing, candidates)
}

// Validate checks a playback binary is available.
func (p *Player) Validate() error {
	if _, err := p.command(); err != nil {
		if p.override != "" {
			return fmt.Errorf("%w: configured player %q", domain.ErrToolMissing, p.override)
		}
		return err
	}
	return nil
}

// Play blocks until playback finishes or ctx is cancelled.
func (p *Player) Play(ctx context.Context, wavPath string) error {
	bin, err := p.command()
	if err != nil {
		return err
	}

	args := playArgs(bin, wavPath)
	logger.Debug("Running %s %v", bin, args)

	cmd := exec.CommandContext(ctx, bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("playback failed: %w: %s", err, out)
	}
	return nil
}

// playArgs builds the player's argument list. ffplay opens a window and
// loops by default, so it needs taming.
func playArgs(bin, wavPath string) []string {
	if base(bin) == "ffplay" {
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", wavPath}
	}
	return []string{wavPath}
}

// base returns the final path element without using path/filepath, so a
// bare binary name works too.
func base(bin string) string {
	for i := len(bin) - 1; i >= 0; i-- {
		if bin[i] == '/' {
			return bin[i+1:]
		}
	}
	return bin
}
