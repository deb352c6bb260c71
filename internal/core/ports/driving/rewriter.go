package driving

import "github.com/gravelworks/grumble-cli/internal/core/domain"

// Rewriter turns English text into the constructed language. The
// operation is pure: the same (text, config) pair always yields the
// same output, and it never fails.
type Rewriter interface {
	Rewrite(text string, cfg domain.RewriteConfig) string
}
