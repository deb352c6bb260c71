package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// RewriteInput is the input schema for the rewrite tool.
type RewriteInput struct {
	Text           string   `json:"text" jsonschema:"the English text to rewrite"`
	Seed           *int64   `json:"seed,omitempty" jsonschema:"rewrite seed; omit to use the configured seed"`
	KeepStopWords  bool     `json:"keep_stop_words,omitempty" jsonschema:"keep common English function words"`
	StripEveryNth  *int     `json:"strip_every_nth,omitempty" jsonschema:"strip every Nth surviving word; 0 disables"`
	LiteralPhrases []string `json:"literal_phrases,omitempty" jsonschema:"phrases that survive the rewrite verbatim"`
}

// RewriteOutput is the output schema for the rewrite tool.
type RewriteOutput struct {
	Rewritten string `json:"rewritten"`
	Seed      int64  `json:"seed"`
}

// SpeakInput is the input schema for the speak tool.
type SpeakInput struct {
	Text    string `json:"text" jsonschema:"the English text to rewrite and speak"`
	OutPath string `json:"out_path,omitempty" jsonschema:"keep the rendered WAV at this path"`
	Play    bool   `json:"play,omitempty" jsonschema:"play the result through the local audio player"`
	DryRun  bool   `json:"dry_run,omitempty" jsonschema:"only rewrite, skip synthesis"`
}

// SpeakOutput is the output schema for the speak tool.
type SpeakOutput struct {
	Rewritten string `json:"rewritten"`
	OutPath   string `json:"out_path,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rewrite",
		Description: "Rewrite English text into the constructed language",
	}, s.handleRewrite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "speak",
		Description: "Rewrite English text and speak it through the local TTS pipeline",
	}, s.handleSpeak)
}

// handleRewrite handles the rewrite tool invocation.
func (s *Server) handleRewrite(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RewriteInput,
) (*mcp.CallToolResult, RewriteOutput, error) {
	cfg := s.rewriteConfig()

	if input.Seed != nil {
		cfg.Seed = *input.Seed
	}
	if input.KeepStopWords {
		cfg.StripStopWords = false
	}
	if input.StripEveryNth != nil {
		cfg.StripEveryNth = *input.StripEveryNth
	}
	if len(input.LiteralPhrases) > 0 {
		cfg.LiteralPhrases = input.LiteralPhrases
	}

	output := RewriteOutput{
		Rewritten: s.ports.Rewriter.Rewrite(input.Text, cfg),
		Seed:      cfg.Seed,
	}
	return nil, output, nil
}

// handleSpeak handles the speak tool invocation.
func (s *Server) handleSpeak(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SpeakInput,
) (*mcp.CallToolResult, SpeakOutput, error) {
	var result *driving.SpeakResult
	var err error

	if input.DryRun {
		result, err = s.ports.Speech.DryRun(ctx, input.Text)
	} else {
		opts := driving.SpeakOptions{
			OutPath: input.OutPath,
			Play:    input.Play,
		}
		result, err = s.ports.Speech.Speak(ctx, input.Text, opts)
	}
	if err != nil {
		return nil, SpeakOutput{}, err
	}

	return nil, SpeakOutput{
		Rewritten: result.Rewritten,
		OutPath:   result.OutPath,
	}, nil
}

// rewriteConfig returns the persisted rewrite configuration, or the
// defaults when no settings service is wired.
func (s *Server) rewriteConfig() domain.RewriteConfig {
	if s.ports.Settings == nil {
		return domain.DefaultRewriteConfig()
	}
	settings, err := s.ports.Settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultRewriteConfig()
	}
	return settings.Rewrite
}
