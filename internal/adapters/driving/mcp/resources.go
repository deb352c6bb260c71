package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Grumble resources.
	uriScheme = "grumble://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the current settings.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current engine, rewrite and effects configuration",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Static resource for the utterance history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent rewrites, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleSettingsResource returns the current settings as JSON.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return jsonResource(req.Params.URI, "{}"), nil
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	type settingsInfo struct {
		Engine         string   `json:"engine"`
		Voice          string   `json:"voice,omitempty"`
		Seed           int64    `json:"seed"`
		StripStopWords bool     `json:"strip_stop_words"`
		StripEveryNth  int      `json:"strip_every_nth"`
		LiteralPhrases []string `json:"literal_phrases,omitempty"`
		Semitones      int      `json:"semitones"`
		GritDrive      int      `json:"grit_drive"`
		GritMode       string   `json:"grit_mode"`
		ChorusMS       int      `json:"chorus_ms"`
		Tempo          float64  `json:"tempo"`
	}

	info := settingsInfo{
		Engine:         settings.Engine,
		Voice:          settings.Voice,
		Seed:           settings.Rewrite.Seed,
		StripStopWords: settings.Rewrite.StripStopWords,
		StripEveryNth:  settings.Rewrite.StripEveryNth,
		LiteralPhrases: settings.Rewrite.LiteralPhrases,
		Semitones:      settings.Effects.Semitones,
		GritDrive:      settings.Effects.GritDrive,
		GritMode:       settings.Effects.GritMode.String(),
		ChorusMS:       settings.Effects.ChorusMS,
		Tempo:          settings.Effects.Tempo,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return jsonResource(req.Params.URI, string(data)), nil
}

// handleHistoryResource returns recent utterances as JSON.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	utterances, err := s.ports.History.Recent(ctx, domain.HistoryCap)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type utteranceInfo struct {
		Input     string `json:"input"`
		Output    string `json:"output"`
		Seed      int64  `json:"seed"`
		CreatedAt string `json:"created_at"`
	}

	infos := make([]utteranceInfo, len(utterances))
	for i := range utterances {
		infos[i] = utteranceInfo{
			Input:     utterances[i].Input,
			Output:    utterances[i].Output,
			Seed:      utterances[i].Seed,
			CreatedAt: utterances[i].CreatedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return jsonResource(req.Params.URI, string(data)), nil
}

// jsonResource wraps a JSON payload in a single-content read result.
func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}
