package rewrite

import (
	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// swapStride is the distance between the first positions of successive
// swap pairs: positions (1,2), (6,7), (11,12), ...
const swapStride = 5

// reorder exchanges word pairs at a fixed stride to make the word order
// less English-like. Sequences shorter than two words are returned
// unchanged. Trailing sentence punctuation is detached and reattached
// exactly as in the reduction stage; mid-sentence punctuation travels
// with its word.
//
// After swapping, two independent invariant classes are repaired
// against the boundary flags. A span token that landed on a boundary
// the original text did not protect is swapped back with its immediate
// neighbour. Conversely, if the original text did start (or end) with
// protected content but the swapped result no longer has a span there,
// the nearest span token is relocated to that boundary; relocation is a
// last resort used only when the pairwise swap-back could not apply.
func reorder(toks []token, flags domain.BoundaryFlags) []token {
	if len(toks) == 0 {
		return toks
	}

	work := make([]token, len(toks))
	copy(work, toks)

	trailing := work[len(work)-1].trimTrailing()
	if work[len(work)-1].empty() {
		work = work[:len(work)-1]
	}
	if len(work) == 0 {
		return toks
	}
	if len(work) < 2 {
		work[len(work)-1].appendText(trailing)
		return work
	}

	for i := 1; i+1 < len(work); i += swapStride {
		work[i], work[i+1] = work[i+1], work[i]
	}

	// Boundary state is sampled once, before any repair, so the two
	// swap-back rules and the two relocation rules each judge the
	// outcome of the stride swap itself.
	startsWithSpan := work[0].isSpan()
	endsWithSpan := work[len(work)-1].isSpan()

	if startsWithSpan && !flags.StartsWithLiteral && !work[1].isSpan() {
		work[0], work[1] = work[1], work[0]
	}
	if endsWithSpan && !flags.EndsWithLiteral && !work[len(work)-2].isSpan() {
		n := len(work)
		work[n-1], work[n-2] = work[n-2], work[n-1]
	}

	if flags.EndsWithLiteral && !endsWithSpan {
		if i := firstSpanIndex(work); i >= 0 {
			moved := work[i]
			work = append(work[:i], work[i+1:]...)
			work = append(work, moved)
		}
	}
	if flags.StartsWithLiteral && !startsWithSpan {
		if i := firstSpanIndex(work); i >= 0 {
			moved := work[i]
			work = append(work[:i], work[i+1:]...)
			work = append([]token{moved}, work...)
		}
	}

	work[len(work)-1].appendText(trailing)
	return work
}

// firstSpanIndex returns the index of the leftmost span token, or -1.
func firstSpanIndex(toks []token) int {
	for i, t := range toks {
		if t.isSpan() {
			return i
		}
	}
	return -1
}
