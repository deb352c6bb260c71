package rewrite

import (
	"strings"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// removal records one word removed by a reduction pass. pos is the
// word's position in the pre-reduction token sequence, so boundary
// repair can pick the earliest or latest removed word without scanning
// the sentence again.
type removal struct {
	pos int
	tok token
}

// removalLog is an ordered log of removed words.
type removalLog struct {
	entries []removal
}

func (l *removalLog) add(pos int, t token) {
	l.entries = append(l.entries, removal{pos: pos, tok: t})
}

// takeEarliest removes and returns the entry with the smallest original
// position. Returns false if the log is empty.
func (l *removalLog) takeEarliest() (token, bool) {
	return l.take(func(best, cand removal) bool { return cand.pos < best.pos })
}

// takeLatest removes and returns the entry with the largest original
// position. Returns false if the log is empty.
func (l *removalLog) takeLatest() (token, bool) {
	return l.take(func(best, cand removal) bool { return cand.pos > best.pos })
}

func (l *removalLog) take(better func(best, cand removal) bool) (token, bool) {
	if len(l.entries) == 0 {
		return token{}, false
	}
	best := 0
	for i := 1; i < len(l.entries); i++ {
		if better(l.entries[best], l.entries[i]) {
			best = i
		}
	}
	t := l.entries[best].tok
	l.entries = append(l.entries[:best], l.entries[best+1:]...)
	return t, true
}

// posToken pairs a token with its position in the pre-reduction
// sequence so removals logged by either pass share one coordinate
// system.
type posToken struct {
	pos int
	tok token
}

// reduce removes stop words and/or every Nth surviving word from the
// sentence. Span tokens are exempt from both passes but occupy exactly
// one counting slot for the Nth pass, which counts 1-indexed over the
// already-stop-word-filtered sequence.
//
// If a pass leaves a span token at a sentence boundary the original
// text did not protect, a removed word is reinserted at that boundary:
// the earliest removed word (in original order) at the start, the
// latest at the end. If reduction would remove every word, the stage is
// a no-op and returns its input unchanged.
func reduce(toks []token, flags domain.BoundaryFlags, stripStop bool, everyNth int) []token {
	if !stripStop && everyNth <= 0 {
		return toks
	}
	if len(toks) == 0 {
		return toks
	}

	work := make([]token, len(toks))
	copy(work, toks)

	// Trailing sentence punctuation is not a word; detach it here and
	// reattach to whatever ends up last.
	trailing := work[len(work)-1].trimTrailing()
	if work[len(work)-1].empty() {
		work = work[:len(work)-1]
	}
	if len(work) == 0 {
		return toks
	}

	seq := make([]posToken, len(work))
	for i, t := range work {
		seq[i] = posToken{pos: i, tok: t}
	}

	var log removalLog

	if stripStop {
		kept := make([]posToken, 0, len(seq))
		for _, pt := range seq {
			if pt.tok.isSpan() {
				kept = append(kept, pt)
				continue
			}
			clean := strings.ToLower(strings.Trim(pt.tok.text, sentencePunct))
			if stopWords[clean] {
				log.add(pt.pos, pt.tok)
				continue
			}
			kept = append(kept, pt)
		}
		seq = kept
	}

	if everyNth > 0 && len(seq) > 0 {
		kept := make([]posToken, 0, len(seq))
		for i, pt := range seq {
			if pt.tok.isSpan() || (i+1)%everyNth != 0 {
				kept = append(kept, pt)
				continue
			}
			log.add(pt.pos, pt.tok)
		}
		seq = kept
	}

	if len(seq) == 0 {
		return toks
	}

	out := make([]token, len(seq))
	for i, pt := range seq {
		out[i] = pt.tok
	}

	// Boundary repair: a protected span must not lead or close the
	// sentence unless it genuinely did in the source.
	if out[0].isSpan() && !flags.StartsWithLiteral {
		if t, ok := log.takeEarliest(); ok {
			out = append([]token{t}, out...)
		}
	}
	if out[len(out)-1].isSpan() && !flags.EndsWithLiteral {
		if t, ok := log.takeLatest(); ok {
			out = append(out, t)
		}
	}

	out[len(out)-1].appendText(trailing)
	return out
}
