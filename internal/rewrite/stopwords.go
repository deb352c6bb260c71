package rewrite

// stopWords is the closed set of English function words eligible for
// removal when shortening a sentence. Membership is checked after
// stripping surrounding punctuation and lower-casing.
var stopWords = map[string]bool{
	// Articles
	"a": true, "an": true, "the": true,
	// Be verbs
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "am": true,
	// Have verbs
	"have": true, "has": true, "had": true, "having": true,
	// Do verbs
	"do": true, "does": true, "did": true, "doing": true,
	// Modals
	"will": true, "would": true, "shall": true, "should": true,
	"may": true, "might": true, "must": true, "can": true, "could": true,
	// Pronouns
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true,
	// Object pronouns
	"me": true, "him": true, "her": true, "us": true, "them": true,
	// Possessive pronouns
	"my": true, "your": true, "his": true, "its": true, "our": true,
	"their": true,
	// Demonstratives
	"this": true, "that": true, "these": true, "those": true,
	// Prepositions
	"of": true, "to": true, "in": true, "on": true, "at": true,
	"by": true, "for": true, "with": true, "from": true, "as": true,
	"into": true, "onto": true, "upon": true, "about": true,
	"above": true, "below": true, "between": true, "through": true,
	// Conjunctions
	"and": true, "but": true, "or": true, "nor": true, "so": true,
	"yet": true,
	// Subordinating conjunctions
	"if": true, "then": true, "than": true, "when": true, "where": true,
	"while": true, "because": true,
	// Negations
	"not": true, "no": true,
	// Quantifiers
	"all": true, "any": true, "some": true, "each": true, "every": true,
	"both": true, "few": true, "more": true, "most": true,
	"other": true, "such": true,
	// Adverbs
	"just": true, "only": true, "very": true, "too": true, "also": true,
	// Question words
	"what": true, "which": true, "who": true, "whom": true,
	"whose": true, "why": true, "how": true,
}
