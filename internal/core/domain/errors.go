package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. The rewrite pipeline
// itself is a total function and never returns an error; everything
// here belongs to the calling layers (CLI, TUI, speech orchestration).
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoInput indicates no input text was provided to speak or rewrite.
	ErrNoInput = errors.New("no input text")

	// ErrEngineUnavailable indicates the selected synthesis engine is not
	// installed or cannot run on this system.
	ErrEngineUnavailable = errors.New("synthesis engine unavailable")

	// ErrToolMissing indicates a required external audio tool (sox,
	// rubberband, a player binary) was not found in PATH.
	ErrToolMissing = errors.New("required tool not found")
)
