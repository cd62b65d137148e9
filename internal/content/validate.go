package content

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InvalidInputMessage is the single user-facing message for every rejected description.
const InvalidInputMessage = "Your input seems unclear or invalid. Please provide a meaningful topic, idea, or sentence."

// ErrInvalidInput is matched by every *ValidationError via errors.Is.
var ErrInvalidInput = errors.New("content: invalid input")

// Rule names reported by ValidationError.
const (
	RuleEmpty       = "empty"
	RuleTooShort    = "too_short"
	RuleRepeated    = "repeated_character"
	RuleSymbols     = "symbol_run"
	RuleJunkTokens  = "junk_tokens"
	RuleNoWords     = "no_words"
	RuleSingleShort = "single_short_token"
)

// ValidationError reports a rejected description. Message is always InvalidInputMessage;
// Rule identifies which check fired and is meant for logs, not users.
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string { return InvalidInputMessage }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

const (
	minDescriptionLen = 5
	maxRepeatedRun    = 10
	minSingleTokenLen = 3
)

var (
	symbolRun  = regexp.MustCompile(`[^\p{L}\p{N}\s]{20,}`)
	junkTokens = regexp.MustCompile(`(?i)^(?:test|asdf|qwerty|12345)+$`)
)

// Validate returns nil for a usable description or a *ValidationError.
// Spam patterns are checked before the short-length rule so that junk such as "test"
// is attributed to the spam check; the message is identical either way.
func Validate(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return &ValidationError{Rule: RuleEmpty}
	}
	switch {
	case hasRepeatedRun(trimmed, maxRepeatedRun):
		return &ValidationError{Rule: RuleRepeated}
	case symbolRun.MatchString(trimmed):
		return &ValidationError{Rule: RuleSymbols}
	case junkTokens.MatchString(trimmed):
		return &ValidationError{Rule: RuleJunkTokens}
	}
	if utf8.RuneCountInString(trimmed) < minDescriptionLen {
		return &ValidationError{Rule: RuleTooShort}
	}
	tokens := strings.Fields(trimmed)
	wordy := 0
	for _, tok := range tokens {
		if strings.IndexFunc(tok, isAlnum) >= 0 {
			wordy++
		}
	}
	if len(tokens) == 0 || wordy == 0 {
		return &ValidationError{Rule: RuleNoWords}
	}
	if len(tokens) == 1 && utf8.RuneCountInString(tokens[0]) < minSingleTokenLen {
		return &ValidationError{Rule: RuleSingleShort}
	}
	return nil
}

// hasRepeatedRun reports whether any rune repeats more than limit times in a row.
func hasRepeatedRun(s string, limit int) bool {
	var prev rune = -1
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > limit {
			return true
		}
	}
	return false
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
