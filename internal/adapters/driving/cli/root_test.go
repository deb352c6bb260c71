package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gravelworks/grumble-cli/internal/adapters/driven/storage/memory"
	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
	"github.com/gravelworks/grumble-cli/internal/core/services"
	"github.com/gravelworks/grumble-cli/internal/rewrite"
)

// --- Mock implementations ---

type mockSpeechService struct {
	lastText string
	lastOpts driving.SpeakOptions
	result   *driving.SpeakResult
	err      error
}

func (m *mockSpeechService) Speak(
	_ context.Context, text string, opts driving.SpeakOptions,
) (*driving.SpeakResult, error) {
	m.lastText = text
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driving.SpeakResult{Rewritten: "spoken: " + text}, nil
}

func (m *mockSpeechService) DryRun(_ context.Context, text string) (*driving.SpeakResult, error) {
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	return &driving.SpeakResult{Rewritten: "dry: " + text}, nil
}

// --- Test helpers ---

// testServices wires real services over in-memory stores plus a mock
// speech service, and restores the previous wiring afterwards.
func testServices(t *testing.T) (*mockSpeechService, *memory.HistoryStore) {
	t.Helper()

	prev := &Services{
		Speech:   speechService,
		Settings: settingsService,
		History:  historyService,
		Rewriter: rewriteEngine,
	}

	speech := &mockSpeechService{}
	history := memory.NewHistoryStore()
	SetServices(&Services{
		Speech:   speech,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		History:  services.NewHistoryService(history),
		Rewriter: rewrite.NewEngine(),
	})

	t.Cleanup(func() {
		SetServices(prev)
		resetFlags(rootCmd)
	})

	return speech, history
}

// resetFlags clears flag state so one test's flags do not leak into the
// next through the shared command tree.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue) //nolint:errcheck // Slice flags reject their own DefValue
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func defaultRewriteOutput(text string) string {
	return rewrite.NewEngine().Rewrite(text, domain.DefaultRewriteConfig())
}
