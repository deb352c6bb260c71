package domain

// RewriteConfig controls the constructed-language rewrite pipeline.
// The same input with the same config always produces the same output;
// all randomness is derived from Seed.
type RewriteConfig struct {
	// Seed drives the deterministic random source used by the phonetic
	// transform stage.
	Seed int64

	// StripStopWords removes common English function words before the
	// word reorder stage.
	StripStopWords bool

	// StripEveryNth removes every Nth surviving word after stop-word
	// filtering. 0 disables the pass. Counting is 1-indexed over the
	// already-filtered word sequence; a protected span counts as a
	// single word slot.
	StripEveryNth int

	// LiteralPhrases are case-insensitive phrases that must survive the
	// rewrite verbatim. They are matched whole-word, longest phrase
	// first. The list is an explicit configuration value; the pipeline
	// never reads process-wide state.
	LiteralPhrases []string
}

// DefaultRewriteConfig returns the rewrite defaults.
func DefaultRewriteConfig() RewriteConfig {
	return RewriteConfig{
		Seed:           42,
		StripStopWords: true,
		StripEveryNth:  3,
	}
}

// ProtectedSpan is a substring pulled out of the input before any
// transformation: quoted text or a configured literal phrase. Identity
// is positional; spans are never merged or split. Text keeps the
// original casing and is restored verbatim at the end of the pipeline.
type ProtectedSpan struct {
	Index int
	Text  string
}

// BoundaryFlags records whether the original input began or ended with
// protected content. Later stages consult these to decide whether a
// protected span may occupy the first or last word position.
type BoundaryFlags struct {
	StartsWithLiteral bool
	EndsWithLiteral   bool
}
