package domain

import "time"

// HistoryCap is the maximum number of utterances kept in history.
const HistoryCap = 30

// Utterance is one spoken (or dry-run) rewrite recorded in history.
type Utterance struct {
	// ID uniquely identifies the record.
	ID string

	// Input is the original English text.
	Input string

	// Output is the rewritten constructed-language text.
	Output string

	// Seed is the rewrite seed that produced Output.
	Seed int64

	// CreatedAt is when the utterance was recorded.
	CreatedAt time.Time
}
