package rewrite

import "strings"

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxz"
)

// Vowel-lengthening and suffix probabilities.
const (
	lengthenChance = 0.15
	suffixAhChance = 0.20
	suffixOoChance = 0.30 // cumulative: 0.20-0.30 appends "oo"
)

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

func isConsonant(c byte) bool {
	return strings.IndexByte(consonants, c) >= 0
}

// transform applies the phonological rewrite to every word token and to
// the glue text of span tokens. Protected span content is never
// touched. The rule chain runs in fixed order:
//
//  1. digraph/phoneme maps: th->t, f->p, v->b, soft g/j before e/i -> ch
//  2. intervocalic r doubling
//  3. consonant-cluster breaking with a helper 'a'
//  4. probabilistic lengthening of a/o
//  5. probabilistic word-ending suffixation (-ah / -oo)
//
// Rules 4 and 5 draw from rnd in strict left-to-right order, and every
// rule-4 draw happens before any rule-5 draw, so the draw sequence for
// a given seed is fully determined by the text.
func transform(toks []token, rnd Rand) []token {
	out := make([]token, len(toks))
	copy(out, toks)

	for i := range out {
		mapFragments(&out[i], substitute)
	}
	for i := range out {
		mapFragments(&out[i], func(s string) string { return lengthenVowels(s, rnd) })
	}
	for i := range out {
		suffixToken(&out[i], rnd)
	}
	return out
}

// mapFragments applies f to every transformable fragment of a token, in
// textual order: word text for plain words, pre then post glue for span
// tokens.
func mapFragments(t *token, f func(string) string) {
	if t.isSpan() {
		t.pre = f(t.pre)
		t.post = f(t.post)
		return
	}
	t.text = f(t.text)
}

// substitute applies the pure substitution rules (1-3).
func substitute(s string) string {
	s = strings.ReplaceAll(s, "th", "t")
	s = strings.ReplaceAll(s, "f", "p")
	s = strings.ReplaceAll(s, "v", "b")
	s = softenGJ(s)
	s = doubleIntervocalicR(s)
	s = breakClusters(s)
	return s
}

// softenGJ rewrites g or j directly before e or i as "ch". The vowel is
// not consumed, so it remains subject to later rules.
func softenGJ(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == 'g' || c == 'j') && i+1 < len(s) && (s[i+1] == 'e' || s[i+1] == 'i') {
			b.WriteString("ch")
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// doubleIntervocalicR rewrites vowel-r-vowel as vowel-rr-vowel. The
// whole match is consumed, so the closing vowel cannot open the next
// match.
func doubleIntervocalicR(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	i := 0
	for i < len(s) {
		if i+2 < len(s) && isVowel(s[i]) && s[i+1] == 'r' && isVowel(s[i+2]) {
			b.WriteByte(s[i])
			b.WriteString("rr")
			b.WriteByte(s[i+2])
			i += 3
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// breakClusters inserts a helper 'a' between two adjacent consonants.
// Both consonants are consumed per match, so in "nstr" the pairs are
// (n,s) and (t,r), yielding "nastar".
func breakClusters(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	i := 0
	for i < len(s) {
		if i+1 < len(s) && isConsonant(s[i]) && isConsonant(s[i+1]) {
			b.WriteByte(s[i])
			b.WriteByte('a')
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// lengthenVowels doubles each a or o with an independent draw.
func lengthenVowels(s string, rnd Rand) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		b.WriteByte(c)
		if (c == 'a' || c == 'o') && rnd.Float64() < lengthenChance {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// suffixToken draws once per eligible word and appends -ah or -oo ahead
// of any trailing sentence punctuation. A word is eligible when its
// core (text minus trailing punctuation) is at least two characters.
// For span tokens only the glue fragments are eligible; the protected
// content never receives a suffix.
func suffixToken(t *token, rnd Rand) {
	if t.isSpan() {
		if len(t.pre) >= 2 {
			t.pre += drawSuffix(rnd)
		}
		core, punct := splitTrailingPunct(t.post)
		if len(core) >= 2 {
			t.post = core + drawSuffix(rnd) + punct
		}
		return
	}
	core, punct := splitTrailingPunct(t.text)
	if len(core) >= 2 {
		t.text = core + drawSuffix(rnd) + punct
	}
}

func drawSuffix(rnd Rand) string {
	roll := rnd.Float64()
	switch {
	case roll < suffixAhChance:
		return "ah"
	case roll < suffixOoChance:
		return "oo"
	default:
		return ""
	}
}
