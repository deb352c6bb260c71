package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

func TestServer_handleRewrite(t *testing.T) {
	ctx := context.Background()

	t.Run("uses configured settings", func(t *testing.T) {
		rewriter := &mockRewriter{}
		settings := domain.DefaultAppSettings()
		settings.Rewrite.Seed = 99

		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: rewriter,
			Settings: &mockSettingsService{settings: &settings},
		})
		require.NoError(t, err)

		_, output, err := server.handleRewrite(ctx, nil, RewriteInput{Text: "hello"})
		require.NoError(t, err)

		assert.Equal(t, "HELLO", output.Rewritten)
		assert.Equal(t, int64(99), output.Seed)
		assert.Equal(t, int64(99), rewriter.lastCfg.Seed)
	})

	t.Run("input overrides win", func(t *testing.T) {
		rewriter := &mockRewriter{}
		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: rewriter,
		})
		require.NoError(t, err)

		seed := int64(7)
		nth := 0
		input := RewriteInput{
			Text:           "hello",
			Seed:           &seed,
			KeepStopWords:  true,
			StripEveryNth:  &nth,
			LiteralPhrases: []string{"Solo"},
		}
		_, output, err := server.handleRewrite(ctx, nil, input)
		require.NoError(t, err)

		assert.Equal(t, int64(7), output.Seed)
		assert.Equal(t, int64(7), rewriter.lastCfg.Seed)
		assert.False(t, rewriter.lastCfg.StripStopWords)
		assert.Equal(t, 0, rewriter.lastCfg.StripEveryNth)
		assert.Equal(t, []string{"Solo"}, rewriter.lastCfg.LiteralPhrases)
	})

	t.Run("falls back to defaults without settings service", func(t *testing.T) {
		rewriter := &mockRewriter{}
		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: rewriter,
		})
		require.NoError(t, err)

		_, output, err := server.handleRewrite(ctx, nil, RewriteInput{Text: "hello"})
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultRewriteConfig().Seed, output.Seed)
		assert.True(t, rewriter.lastCfg.StripStopWords)
	})
}

func TestServer_handleSpeak(t *testing.T) {
	ctx := context.Background()

	t.Run("speaks with options", func(t *testing.T) {
		speech := &mockSpeechService{
			result: &driving.SpeakResult{Rewritten: "gruk", OutPath: "/tmp/out.wav"},
		}
		server, err := NewServer(&Ports{Speech: speech, Rewriter: &mockRewriter{}})
		require.NoError(t, err)

		input := SpeakInput{Text: "hello", OutPath: "/tmp/out.wav", Play: true}
		_, output, err := server.handleSpeak(ctx, nil, input)
		require.NoError(t, err)

		assert.Equal(t, "gruk", output.Rewritten)
		assert.Equal(t, "/tmp/out.wav", output.OutPath)
		assert.Equal(t, "hello", speech.lastText)
		assert.True(t, speech.lastOpts.Play)
		assert.Zero(t, speech.dryRuns)
	})

	t.Run("dry run skips synthesis", func(t *testing.T) {
		speech := &mockSpeechService{
			result: &driving.SpeakResult{Rewritten: "gruk"},
		}
		server, err := NewServer(&Ports{Speech: speech, Rewriter: &mockRewriter{}})
		require.NoError(t, err)

		_, output, err := server.handleSpeak(ctx, nil, SpeakInput{Text: "hello", DryRun: true})
		require.NoError(t, err)

		assert.Equal(t, "gruk", output.Rewritten)
		assert.Empty(t, output.OutPath)
		assert.Equal(t, 1, speech.dryRuns)
	})

	t.Run("returns error on speak failure", func(t *testing.T) {
		speech := &mockSpeechService{err: errors.New("engine exploded")}
		server, err := NewServer(&Ports{Speech: speech, Rewriter: &mockRewriter{}})
		require.NoError(t, err)

		_, _, err = server.handleSpeak(ctx, nil, SpeakInput{Text: "hello"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "engine exploded")
	})
}
