package rewrite

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

// segment is an intermediate slice of the input during span discovery:
// either raw text still subject to matching, or a resolved span.
type segment struct {
	text string
	span int // arena index, -1 for raw text
}

// protect scans the input for quoted spans ('...' or "...") and
// case-insensitive whole-word matches of the literal phrases, pulls
// them into the span arena, and returns the tokenised sentence together
// with boundary flags computed against the unmodified original text.
//
// Quoted spans are discovered first, left to right; literal phrases are
// then matched longest-first so a longer phrase is never shadowed by a
// shorter one that is a substring of it. A region consumed by a span is
// never re-matched.
func protect(text string, phrases []string) ([]token, []domain.ProtectedSpan, domain.BoundaryFlags) {
	ordered := orderPhrases(phrases)
	flags := boundaryFlags(text, ordered)

	var arena []domain.ProtectedSpan
	segs := scanQuotes(text, &arena)
	segs = scanPhrases(segs, ordered, &arena)

	return tokenise(segs), arena, flags
}

// orderPhrases drops empty entries and sorts longest-first. The sort is
// stable so equal-length phrases keep their configured precedence.
func orderPhrases(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// boundaryFlags reports whether the original text begins or ends with
// protected content: an opening quote, or a word-boundary-anchored
// literal phrase. The end check tolerates trailing sentence punctuation.
func boundaryFlags(text string, phrases []string) domain.BoundaryFlags {
	var flags domain.BoundaryFlags

	if len(text) > 0 && (text[0] == '\'' || text[0] == '"') {
		flags.StartsWithLiteral = true
	}
	if core, _ := splitTrailingPunct(strings.TrimRight(text, " \t\n")); core != "" {
		last := core[len(core)-1]
		if last == '\'' || last == '"' {
			flags.EndsWithLiteral = true
		}
	}

	for _, phrase := range phrases {
		quoted := regexp.QuoteMeta(phrase)
		if !flags.StartsWithLiteral {
			if regexp.MustCompile(`(?i)^` + quoted + `\b`).MatchString(text) {
				flags.StartsWithLiteral = true
			}
		}
		if !flags.EndsWithLiteral {
			if regexp.MustCompile(`(?i)\b` + quoted + `[.,!?;:]*$`).MatchString(text) {
				flags.EndsWithLiteral = true
			}
		}
	}

	return flags
}

// scanQuotes splits text into segments, pulling each paired quote
// ('...' or "...") into the arena. An unpaired or empty quote is left
// as ordinary text. Quote content keeps its original casing; the quote
// characters themselves are dropped.
func scanQuotes(text string, arena *[]domain.ProtectedSpan) []segment {
	var segs []segment
	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '\'' || c == '"' {
			if j := strings.IndexByte(text[i+1:], c); j > 0 {
				end := i + 1 + j
				if i > start {
					segs = append(segs, segment{text: text[start:i], span: -1})
				}
				idx := len(*arena)
				*arena = append(*arena, domain.ProtectedSpan{Index: idx, Text: text[i+1 : end]})
				segs = append(segs, segment{span: idx})
				i = end + 1
				start = i
				continue
			}
		}
		i++
	}
	if start < len(text) {
		segs = append(segs, segment{text: text[start:], span: -1})
	}
	return segs
}

// scanPhrases replaces whole-word, case-insensitive matches of each
// phrase inside the remaining raw segments. Earlier (longer) phrases
// run first; spans already claimed are opaque to later scans.
func scanPhrases(segs []segment, phrases []string, arena *[]domain.ProtectedSpan) []segment {
	for _, phrase := range phrases {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		var out []segment
		for _, seg := range segs {
			if seg.span >= 0 {
				out = append(out, seg)
				continue
			}
			out = append(out, splitByPhrase(seg.text, re, arena)...)
		}
		segs = out
	}
	return segs
}

// splitByPhrase carves every match of re out of raw text, preserving
// the matched text with its original casing in the arena.
func splitByPhrase(text string, re *regexp.Regexp, arena *[]domain.ProtectedSpan) []segment {
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []segment{{text: text, span: -1}}
	}

	var segs []segment
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segs = append(segs, segment{text: text[prev:m[0]], span: -1})
		}
		idx := len(*arena)
		*arena = append(*arena, domain.ProtectedSpan{Index: idx, Text: text[m[0]:m[1]]})
		segs = append(segs, segment{span: idx})
		prev = m[1]
	}
	if prev < len(text) {
		segs = append(segs, segment{text: text[prev:], span: -1})
	}
	return segs
}

// tokenise splits the segment list into whitespace-delimited tokens.
// Raw text adjacent to a span without whitespace becomes pre/post glue
// on the span token. Two spans inside one whitespace run become two
// tokens.
func tokenise(segs []segment) []token {
	var toks []token
	var cur *token

	flush := func() {
		if cur != nil && !cur.empty() {
			toks = append(toks, *cur)
		}
		cur = nil
	}

	for _, seg := range segs {
		if seg.span >= 0 {
			switch {
			case cur == nil:
				t := spanRef(seg.span)
				cur = &t
			case cur.isSpan():
				flush()
				t := spanRef(seg.span)
				cur = &t
			default:
				t := spanRef(seg.span)
				t.pre = cur.text
				cur = &t
			}
			continue
		}
		for _, r := range seg.text {
			if unicode.IsSpace(r) {
				flush()
				continue
			}
			if cur == nil {
				t := word("")
				cur = &t
			}
			cur.appendText(string(r))
		}
	}
	flush()
	return toks
}

// restore resolves every span reference back to its recorded original
// text, joins the tokens with single spaces, and normalises whitespace.
// Every span created by protect must be consumed exactly once; a lost
// or duplicated span is a bookkeeping defect, not a runtime condition,
// and fails loudly.
func restore(toks []token, spans []domain.ProtectedSpan) string {
	seen := make([]bool, len(spans))

	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.isSpan() {
			if seen[t.span] {
				panic("rewrite: protected span restored twice")
			}
			seen[t.span] = true
			b.WriteString(t.pre)
			b.WriteString(spans[t.span].Text)
			b.WriteString(t.post)
			continue
		}
		b.WriteString(t.text)
	}

	for _, ok := range seen {
		if !ok {
			panic("rewrite: protected span lost during pipeline")
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
