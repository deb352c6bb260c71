package rewrite

import "strings"

// sentencePunct is the set of sentence punctuation that may trail a
// word. A trailing run of these is detached before the reduction and
// reorder passes and reattached afterwards, so punctuation is never
// treated as a word of its own.
const sentencePunct = ".,!?;:"

// token is one whitespace-delimited unit of the working sentence.
// A token is either a plain word or a reference into the protected-span
// arena. Span tokens may carry glue text that was attached to the span
// without intervening whitespace in the input (for example a trailing
// comma, or a possessive 's).
type token struct {
	// text is the word text. Empty for span tokens.
	text string

	// span is the arena index of the protected span, or -1 for words.
	span int

	// pre and post are fragments glued to a span token.
	pre, post string
}

// word builds a plain word token.
func word(text string) token {
	return token{text: text, span: -1}
}

// spanRef builds a span reference token.
func spanRef(index int) token {
	return token{span: index}
}

// isSpan reports whether the token references a protected span.
func (t token) isSpan() bool {
	return t.span >= 0
}

// trimTrailing removes a trailing run of sentence punctuation from the
// token and returns it. For span tokens the run comes off the post
// glue; the protected content itself is never touched.
func (t *token) trimTrailing() string {
	if t.isSpan() {
		core, punct := splitTrailingPunct(t.post)
		t.post = core
		return punct
	}
	core, punct := splitTrailingPunct(t.text)
	t.text = core
	return punct
}

// appendText attaches s to the end of the token.
func (t *token) appendText(s string) {
	if s == "" {
		return
	}
	if t.isSpan() {
		t.post += s
		return
	}
	t.text += s
}

// empty reports whether a word token has no text left. Span tokens are
// never empty.
func (t token) empty() bool {
	return !t.isSpan() && t.text == ""
}

// splitTrailingPunct splits a trailing run of sentence punctuation off s.
func splitTrailingPunct(s string) (core, punct string) {
	i := len(s)
	for i > 0 && strings.ContainsRune(sentencePunct, rune(s[i-1])) {
		i--
	}
	return s[:i], s[i:]
}
