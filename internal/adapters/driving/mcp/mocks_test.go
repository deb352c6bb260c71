package mcp

import (
	"context"
	"strings"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// mockSpeechService is a mock implementation of driving.SpeechService.
type mockSpeechService struct {
	lastText string
	lastOpts driving.SpeakOptions
	dryRuns  int
	result   *driving.SpeakResult
	err      error
}

func (m *mockSpeechService) Speak(
	_ context.Context, text string, opts driving.SpeakOptions,
) (*driving.SpeakResult, error) {
	m.lastText = text
	m.lastOpts = opts
	return m.result, m.err
}

func (m *mockSpeechService) DryRun(_ context.Context, text string) (*driving.SpeakResult, error) {
	m.lastText = text
	m.dryRuns++
	return m.result, m.err
}

// mockRewriter is a mock implementation of driving.Rewriter.
type mockRewriter struct {
	lastCfg domain.RewriteConfig
}

func (m *mockRewriter) Rewrite(text string, cfg domain.RewriteConfig) string {
	m.lastCfg = cfg
	return strings.ToUpper(text)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	utterances []domain.Utterance
	err        error
}

func (m *mockHistoryService) Record(_ context.Context, _, _ string, _ int64) error {
	return m.err
}

func (m *mockHistoryService) Recent(_ context.Context, _ int) ([]domain.Utterance, error) {
	return m.utterances, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
