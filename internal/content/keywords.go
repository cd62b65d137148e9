package content

import (
	"regexp"
	"strings"
)

const (
	maxKeywords   = 8
	minKeywordLen = 4
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "our": {}, "new": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "from": {}, "your": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "shall": {}, "might": {}, "must": {},
	"been": {}, "being": {}, "were": {}, "was": {}, "are": {}, "is": {}, "can": {}, "may": {},
	"into": {}, "just": {}, "also": {}, "their": {}, "they": {}, "them": {}, "than": {},
	"then": {}, "very": {}, "what": {}, "when": {}, "about": {},
}

// IsStopword reports whether w is ignored by ExtractKeywords.
func IsStopword(w string) bool {
	_, ok := stopwords[strings.ToLower(w)]
	return ok
}

// ExtractKeywords returns up to eight significant words in first-occurrence order.
func ExtractKeywords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	seen := map[string]struct{}{}
	out := make([]string, 0, maxKeywords)
	for _, w := range strings.Fields(cleaned) {
		if len(w) < minKeywordLen || IsStopword(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
