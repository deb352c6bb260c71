// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Grumble. It lets AI assistants rewrite text into the constructed
// language and speak it through the local synthesis pipeline.
package mcp

import "errors"

// ErrMissingSpeechService is returned when the speech service is not provided.
var ErrMissingSpeechService = errors.New("mcp: speech service is required")

// ErrMissingRewriter is returned when the rewrite engine is not provided.
var ErrMissingRewriter = errors.New("mcp: rewrite engine is required")
