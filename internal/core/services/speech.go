package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
	"github.com/gravelworks/grumble-cli/internal/logger"
)

// Ensure SpeechService implements the interface.
var _ driving.SpeechService = (*SpeechService)(nil)

// SpeechService orchestrates the full speak pipeline: rewrite, synthesis,
// effects and playback, recording the result in history.
type SpeechService struct {
	rewriter driving.Rewriter
	settings driving.SettingsService
	synths   map[string]driven.Synthesizer
	effects  driven.EffectsProcessor
	player   driven.Player
	history  driven.HistoryStore
}

// NewSpeechService creates a new speech service. The effects, player and
// history parameters are optional (can be nil).
func NewSpeechService(
	rewriter driving.Rewriter,
	settings driving.SettingsService,
	synths map[string]driven.Synthesizer,
	effects driven.EffectsProcessor,
	player driven.Player,
	history driven.HistoryStore,
) *SpeechService {
	return &SpeechService{
		rewriter: rewriter,
		settings: settings,
		synths:   synths,
		effects:  effects,
		player:   player,
		history:  history,
	}
}

// Speak rewrites text and renders it through the configured engine and
// effects chain.
func (s *SpeechService) Speak(
	ctx context.Context, text string, opts driving.SpeakOptions,
) (*driving.SpeakResult, error) {
	logger.Section("Speak Pipeline")

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrNoInput
	}

	settings := opts.Settings
	if settings == nil {
		var err error
		settings, err = s.settings.Get()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
	}

	result := &driving.SpeakResult{}

	start := time.Now()
	result.Rewritten = s.rewriter.Rewrite(text, settings.Rewrite)
	result.Timings.Rewrite = time.Since(start)
	logger.Info("Rewrote %d chars -> %q", len(text), result.Rewritten)

	synth, err := s.engineFor(settings.Engine)
	if err != nil {
		return nil, err
	}

	outPath := opts.OutPath
	keep := outPath != ""
	if !keep {
		outPath = tempWavPath()
	}

	rawPath := outPath
	if s.effects != nil {
		rawPath = tempWavPath()
	}

	start = time.Now()
	if err := synth.Synthesize(ctx, result.Rewritten, settings.Voice, rawPath); err != nil {
		return nil, fmt.Errorf("synthesize with %s: %w", synth.Name(), err)
	}
	result.Timings.Synth = time.Since(start)
	logger.Debug("Synthesis took %s", result.Timings.Synth)

	if s.effects != nil {
		start = time.Now()
		if err := s.effects.Process(ctx, rawPath, outPath, settings.Effects); err != nil {
			_ = os.Remove(rawPath)
			return nil, fmt.Errorf("apply effects: %w", err)
		}
		result.Timings.Effects = time.Since(start)
		_ = os.Remove(rawPath)
		logger.Debug("Effects took %s", result.Timings.Effects)
	}

	if opts.Play && s.player != nil {
		start = time.Now()
		if err := s.player.Play(ctx, outPath); err != nil {
			if !keep {
				_ = os.Remove(outPath)
			}
			return nil, fmt.Errorf("play: %w", err)
		}
		result.Timings.Play = time.Since(start)
		logger.Debug("Playback took %s", result.Timings.Play)
	}

	if keep {
		result.OutPath = outPath
	} else {
		_ = os.Remove(outPath)
	}

	s.record(ctx, text, result.Rewritten, settings.Rewrite.Seed)
	return result, nil
}

// DryRun rewrites text without synthesis and records it in history.
func (s *SpeechService) DryRun(ctx context.Context, text string) (*driving.SpeakResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrNoInput
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	result := &driving.SpeakResult{}

	start := time.Now()
	result.Rewritten = s.rewriter.Rewrite(text, settings.Rewrite)
	result.Timings.Rewrite = time.Since(start)

	s.record(ctx, text, result.Rewritten, settings.Rewrite.Seed)
	return result, nil
}

// engineFor resolves the configured synthesis engine and checks it is
// usable on this system.
func (s *SpeechService) engineFor(name string) (driven.Synthesizer, error) {
	synth, ok := s.synths[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown engine %q", domain.ErrEngineUnavailable, name)
	}
	if !synth.Available() {
		if err := synth.Validate(); err != nil {
			return nil, fmt.Errorf("engine %s: %w", name, err)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrEngineUnavailable, name)
	}
	return synth, nil
}

// record appends to history; failures are logged, never fatal.
func (s *SpeechService) record(ctx context.Context, input, output string, seed int64) {
	if s.history == nil {
		return
	}
	u := domain.Utterance{
		ID:        uuid.NewString(),
		Input:     input,
		Output:    output,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.history.Append(ctx, u); err != nil {
		logger.Warn("Failed to record history: %v", err)
	}
}

// tempWavPath returns a unique scratch path for intermediate audio.
func tempWavPath() string {
	return filepath.Join(os.TempDir(), "grumble-"+uuid.NewString()+".wav")
}
