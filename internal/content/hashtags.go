package content

import (
	"strings"
	"unicode"

	"autopostr/internal/model"
)

const (
	maxHashtags       = 10
	maxBrandValueTags = 2
)

// deniedHashtags are too generic to carry any reach.
var deniedHashtags = map[string]struct{}{
	"#fun": {}, "#nice": {}, "#amazing": {}, "#good": {},
	"#great": {}, "#cool": {}, "#awesome": {}, "#best": {},
}

type topic struct {
	triggers []string
	tags     []string
}

// launchTopic is checked on its own; subjectTopics form a first-match-wins chain.
var launchTopic = topic{
	triggers: []string{"launch", "introducing"},
	tags:     []string{"#NewRelease", "#ProductLaunch"},
}

var subjectTopics = []topic{
	{triggers: []string{"eco", "sustainable", "environment"}, tags: []string{"#Sustainable", "#EcoFriendly"}},
	{triggers: []string{"tech", "innovation", "digital"}, tags: []string{"#Innovation", "#TechNews"}},
	{triggers: []string{"health", "wellness", "fitness"}, tags: []string{"#Wellness", "#HealthyLiving"}},
	{triggers: []string{"food", "recipe", "cooking"}, tags: []string{"#Foodie", "#Recipe"}},
	{triggers: []string{"travel", "adventure", "explore"}, tags: []string{"#Travel", "#Wanderlust"}},
	{triggers: []string{"art", "design", "creative"}, tags: []string{"#Creative", "#Design"}},
	{triggers: []string{"business", "entrepreneur"}, tags: []string{"#SmallBusiness", "#Entrepreneur"}},
}

// IsDeniedHashtag reports whether tag is on the generic denylist.
func IsDeniedHashtag(tag string) bool {
	_, ok := deniedHashtags[strings.ToLower(tag)]
	return ok
}

// GenerateHashtags merges entity, topical, brand and keyword tags, then dedupes
// case-insensitively, drops denied tags and caps the list at ten.
func GenerateHashtags(keywords []string, description string, brand *model.BrandProfile, parsed *ParsedPromptInfo) []string {
	var candidates []string
	if parsed != nil {
		for _, name := range []string{parsed.BrandName, parsed.ProductName, parsed.EventName} {
			candidates = append(candidates, Hashtag(name))
		}
	}
	candidates = append(candidates, topicalHashtags(description)...)
	if brand != nil {
		candidates = append(candidates, Hashtag(brand.Industry))
		n := 0
		for _, v := range brand.KeyValues {
			if n == maxBrandValueTags {
				break
			}
			if tag := Hashtag(v); tag != "" {
				candidates = append(candidates, tag)
				n++
			}
		}
	}
	for _, kw := range keywords {
		if len(kw) >= minKeywordLen {
			candidates = append(candidates, Hashtag(kw))
		}
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, maxHashtags)
	for _, tag := range candidates {
		if tag == "" || IsDeniedHashtag(tag) {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
		if len(out) == maxHashtags {
			break
		}
	}
	return out
}

func topicalHashtags(description string) []string {
	text := strings.ToLower(description)
	var out []string
	if containsAny(text, launchTopic.triggers) {
		out = append(out, launchTopic.tags...)
	}
	for _, t := range subjectTopics {
		if containsAny(text, t.triggers) {
			out = append(out, t.tags...)
			break
		}
	}
	return out
}

// Hashtag title-cases every alphanumeric run in s and joins them behind '#'.
// It returns "" when s has no letters or digits.
func Hashtag(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}
