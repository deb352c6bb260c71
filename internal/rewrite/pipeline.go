package rewrite

import (
	"strings"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// Rewrite runs the full five-stage pipeline over text. It is a total
// function: any string input, including the empty string, produces a
// result without error. Output is byte-identical across calls for the
// same (text, config) pair.
func Rewrite(text string, cfg domain.RewriteConfig) string {
	return RewriteWith(text, cfg, newSeededRand(cfg.Seed))
}

// RewriteWith is Rewrite with a caller-supplied random source. Tests
// use it with scripted sequences to pin exact outputs; production code
// should call Rewrite.
func RewriteWith(text string, cfg domain.RewriteConfig, rnd Rand) string {
	toks, spans, flags := protect(text, cfg.LiteralPhrases)

	toks = reduce(toks, flags, cfg.StripStopWords, cfg.StripEveryNth)
	toks = reorder(toks, flags)

	lowerTokens(toks)
	toks = transform(toks, rnd)

	return restore(toks, spans)
}

// lowerTokens lower-cases word text and span glue ahead of the phonetic
// stage. Protected span content keeps its original casing.
func lowerTokens(toks []token) {
	for i := range toks {
		if toks[i].isSpan() {
			toks[i].pre = strings.ToLower(toks[i].pre)
			toks[i].post = strings.ToLower(toks[i].post)
			continue
		}
		toks[i].text = strings.ToLower(toks[i].text)
	}
}

// Ensure Engine implements the driving port.
var _ driving.Rewriter = (*Engine)(nil)

// Engine exposes the pipeline through the driving.Rewriter port.
type Engine struct{}

// NewEngine returns a pipeline engine. The engine is stateless and safe
// for concurrent use.
func NewEngine() *Engine {
	return &Engine{}
}

// Rewrite implements driving.Rewriter.
func (e *Engine) Rewrite(text string, cfg domain.RewriteConfig) string {
	return Rewrite(text, cfg)
}
