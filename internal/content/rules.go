package content

import (
	"regexp"
	"strings"
)

// rule is one ordered extraction step: a pattern and a transform over its first group.
type rule struct {
	pattern   *regexp.Regexp
	transform func(string) string
}

// ruleList is evaluated in order; the first rule whose pattern matches wins.
type ruleList []rule

func newRule(expr string) rule {
	return rule{pattern: regexp.MustCompile(expr), transform: strings.TrimSpace}
}

func (r rule) with(transform func(string) string) rule {
	r.transform = func(s string) string { return transform(strings.TrimSpace(s)) }
	return r
}

// first returns the transformed capture of the first matching rule, or "".
func (rl ruleList) first(text string) string {
	for _, r := range rl {
		m := r.pattern.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if out := r.transform(m[1]); out != "" {
			return out
		}
	}
	return ""
}
