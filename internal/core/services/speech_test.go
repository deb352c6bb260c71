package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravelworks/grumble-cli/internal/adapters/driven/storage/memory"
	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockRewriter implements driving.Rewriter for testing.
type mockRewriter struct {
	output string
	calls  int
}

func (m *mockRewriter) Rewrite(text string, _ domain.RewriteConfig) string {
	m.calls++
	if m.output != "" {
		return m.output
	}
	return "rewritten: " + text
}

// mockSynthesizer implements driven.Synthesizer for testing.
type mockSynthesizer struct {
	name      string
	available bool
	synthErr  error
	lastText  string
	lastVoice string
	lastPath  string
}

func (m *mockSynthesizer) Name() string    { return m.name }
func (m *mockSynthesizer) Available() bool { return m.available }

func (m *mockSynthesizer) Validate() error {
	if !m.available {
		return domain.ErrToolMissing
	}
	return nil
}

func (m *mockSynthesizer) Synthesize(_ context.Context, text, voice, outPath string) error {
	if m.synthErr != nil {
		return m.synthErr
	}
	m.lastText = text
	m.lastVoice = voice
	m.lastPath = outPath
	return os.WriteFile(outPath, []byte("RIFF"), 0o600)
}

// mockEffects implements driven.EffectsProcessor for testing.
type mockEffects struct {
	processErr   error
	calls        int
	lastSettings domain.EffectsSettings
}

func (m *mockEffects) Process(_ context.Context, inPath, outPath string, settings domain.EffectsSettings) error {
	if m.processErr != nil {
		return m.processErr
	}
	m.calls++
	m.lastSettings = settings
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o600)
}

func (m *mockEffects) Validate() error { return nil }

// mockPlayer implements driven.Player for testing.
type mockPlayer struct {
	playErr  error
	calls    int
	lastPath string
}

func (m *mockPlayer) Play(_ context.Context, wavPath string) error {
	if m.playErr != nil {
		return m.playErr
	}
	m.calls++
	m.lastPath = wavPath
	return nil
}

func (m *mockPlayer) Validate() error { return nil }

// --- Test helpers ---

type speechFixture struct {
	service  *SpeechService
	rewriter *mockRewriter
	synth    *mockSynthesizer
	effects  *mockEffects
	player   *mockPlayer
	history  *memory.HistoryStore
}

func newSpeechFixture() *speechFixture {
	rewriter := &mockRewriter{}
	synth := &mockSynthesizer{name: "espeak", available: true}
	effects := &mockEffects{}
	player := &mockPlayer{}
	history := memory.NewHistoryStore()
	settings := NewSettingsService(memory.NewConfigStore())

	service := NewSpeechService(
		rewriter,
		settings,
		map[string]driven.Synthesizer{"espeak": synth},
		effects,
		player,
		history,
	)

	return &speechFixture{
		service:  service,
		rewriter: rewriter,
		synth:    synth,
		effects:  effects,
		player:   player,
		history:  history,
	}
}

// --- Tests ---

func TestSpeechService_Speak_FullPipeline(t *testing.T) {
	f := newSpeechFixture()
	ctx := context.Background()

	result, err := f.service.Speak(ctx, "bring the plans", driving.SpeakOptions{Play: true})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "rewritten: bring the plans", result.Rewritten)
	assert.Equal(t, 1, f.rewriter.calls)
	assert.Equal(t, result.Rewritten, f.synth.lastText)
	assert.Equal(t, 1, f.effects.calls)
	assert.Equal(t, 1, f.player.calls)

	// Default effects settings flow through unchanged.
	assert.Equal(t, -2, f.effects.lastSettings.Semitones)
	assert.Equal(t, domain.GritModeCombo, f.effects.lastSettings.GritMode)
	assert.Equal(t, 0.9, f.effects.lastSettings.Tempo)

	// Temporary output was cleaned up.
	assert.Empty(t, result.OutPath)
	_, statErr := os.Stat(f.player.lastPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSpeechService_Speak_KeepsRequestedOutput(t *testing.T) {
	f := newSpeechFixture()
	ctx := context.Background()
	outPath := filepath.Join(t.TempDir(), "out.wav")

	result, err := f.service.Speak(ctx, "hello", driving.SpeakOptions{OutPath: outPath})
	require.NoError(t, err)

	assert.Equal(t, outPath, result.OutPath)
	_, statErr := os.Stat(outPath)
	assert.NoError(t, statErr)

	// Playback was not requested.
	assert.Equal(t, 0, f.player.calls)
}

func TestSpeechService_Speak_EmptyInput(t *testing.T) {
	f := newSpeechFixture()

	_, err := f.service.Speak(context.Background(), "   ", driving.SpeakOptions{})
	assert.ErrorIs(t, err, domain.ErrNoInput)
	assert.Equal(t, 0, f.rewriter.calls)
}

func TestSpeechService_Speak_UnknownEngine(t *testing.T) {
	f := newSpeechFixture()
	settings := NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.Set("synth.engine", "festival"))

	// Rebuild the service with a store configured for a missing engine.
	f.service.settings = settings

	_, err := f.service.Speak(context.Background(), "hello", driving.SpeakOptions{})
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestSpeechService_Speak_EngineUnavailable(t *testing.T) {
	f := newSpeechFixture()
	f.synth.available = false

	_, err := f.service.Speak(context.Background(), "hello", driving.SpeakOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolMissing)
}

func TestSpeechService_Speak_SynthesisError(t *testing.T) {
	f := newSpeechFixture()
	f.synth.synthErr = errors.New("espeak exploded")

	_, err := f.service.Speak(context.Background(), "hello", driving.SpeakOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesize with espeak")
}

func TestSpeechService_Speak_EffectsError(t *testing.T) {
	f := newSpeechFixture()
	f.effects.processErr = errors.New("sox not found")

	_, err := f.service.Speak(context.Background(), "hello", driving.SpeakOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply effects")
	assert.Equal(t, 0, f.player.calls)
}

func TestSpeechService_Speak_NoEffectsProcessor(t *testing.T) {
	f := newSpeechFixture()
	f.service.effects = nil

	result, err := f.service.Speak(context.Background(), "hello", driving.SpeakOptions{Play: true})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Rewritten)
	assert.Equal(t, 1, f.player.calls)
}

func TestSpeechService_Speak_RecordsHistory(t *testing.T) {
	f := newSpeechFixture()
	ctx := context.Background()

	_, err := f.service.Speak(ctx, "first", driving.SpeakOptions{})
	require.NoError(t, err)
	_, err = f.service.Speak(ctx, "second", driving.SpeakOptions{})
	require.NoError(t, err)

	recent, err := f.history.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, "second", recent[0].Input)
	assert.Equal(t, "rewritten: second", recent[0].Output)
	assert.Equal(t, int64(42), recent[0].Seed)
	assert.NotEmpty(t, recent[0].ID)
}

func TestSpeechService_Speak_SettingsOverride(t *testing.T) {
	f := newSpeechFixture()

	override := domain.DefaultAppSettings()
	override.Rewrite.Seed = 7
	override.Voice = "croak"
	override.Effects.Tempo = 1.3

	_, err := f.service.Speak(context.Background(), "hello", driving.SpeakOptions{
		Settings: &override,
	})
	require.NoError(t, err)

	assert.Equal(t, "croak", f.synth.lastVoice)
	assert.Equal(t, 1.3, f.effects.lastSettings.Tempo)

	recent, err := f.history.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, int64(7), recent[0].Seed)
}

func TestSpeechService_DryRun(t *testing.T) {
	f := newSpeechFixture()
	ctx := context.Background()

	result, err := f.service.DryRun(ctx, "bring the plans")
	require.NoError(t, err)

	assert.Equal(t, "rewritten: bring the plans", result.Rewritten)
	assert.Empty(t, result.OutPath)
	assert.Empty(t, f.synth.lastText)

	recent, err := f.history.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "bring the plans", recent[0].Input)
}

func TestSpeechService_DryRun_EmptyInput(t *testing.T) {
	f := newSpeechFixture()

	_, err := f.service.DryRun(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoInput)
}
