package tui

import "errors"

// ErrMissingSpeechService is returned when the speech service is not provided.
var ErrMissingSpeechService = errors.New("tui: speech service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrMissingRewriter is returned when the rewrite engine is not provided.
var ErrMissingRewriter = errors.New("tui: rewrite engine is required")
