package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns settings as JSON", func(t *testing.T) {
		settings := domain.DefaultAppSettings()
		settings.Voice = "Alex"

		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: &mockRewriter{},
			Settings: &mockSettingsService{settings: &settings},
		})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, readRequest(uriScheme+"settings"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"engine": "espeak"`)
		assert.Contains(t, result.Contents[0].Text, `"voice": "Alex"`)
		assert.Contains(t, result.Contents[0].Text, `"seed": 42`)
	})

	t.Run("empty object without settings service", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: &mockRewriter{},
		})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, readRequest(uriScheme+"settings"))
		require.NoError(t, err)
		assert.Equal(t, "{}", result.Contents[0].Text)
	})
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns utterances as JSON", func(t *testing.T) {
		history := &mockHistoryService{
			utterances: []domain.Utterance{{
				Input:     "bring the plans",
				Output:    "barinag palanas",
				Seed:      42,
				CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			}},
		}
		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: &mockRewriter{},
			History:  history,
		})
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, readRequest(uriScheme+"history"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		assert.Contains(t, result.Contents[0].Text, `"input": "bring the plans"`)
		assert.Contains(t, result.Contents[0].Text, `"output": "barinag palanas"`)
		assert.Contains(t, result.Contents[0].Text, "2026-03-01T12:00:00Z")
	})

	t.Run("empty list without history service", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: &mockRewriter{},
		})
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, readRequest(uriScheme+"history"))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Speech:   &mockSpeechService{},
			Rewriter: &mockRewriter{},
			History:  &mockHistoryService{err: errors.New("db closed")},
		})
		require.NoError(t, err)

		_, err = server.handleHistoryResource(ctx, readRequest(uriScheme+"history"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db closed")
	})
}
