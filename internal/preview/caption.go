// Package preview fits captions and images to the limits of each social platform.
package preview

import (
	"strings"
	"unicode/utf8"

	"autopostr/internal/model"
)

// Spec is the caption limit and canvas size of one platform.
type Spec struct {
	MaxChars int
	Width    int
	Height   int
}

var specs = map[string]Spec{
	"instagram": {MaxChars: 2200, Width: 1080, Height: 1080},
	"twitter":   {MaxChars: 280, Width: 1200, Height: 675},
	"linkedin":  {MaxChars: 3000, Width: 1200, Height: 627},
	"facebook":  {MaxChars: 63206, Width: 1200, Height: 630},
}

// SpecFor returns the platform spec; unknown platforms use instagram's.
func SpecFor(platform string) Spec {
	if s, ok := specs[strings.ToLower(platform)]; ok {
		return s
	}
	return specs["instagram"]
}

const ellipsis = "…"

// Caption fits caption and hashtags into the platform's character limit.
// Hashtags are dropped from the end first; if the caption alone is still too
// long it is cut and suffixed with an ellipsis.
func Caption(platform, caption string, hashtags []string) model.PlatformPreview {
	limit := SpecFor(platform).MaxChars
	tags := append([]string(nil), hashtags...)
	for len(tags) > 0 && utf8.RuneCountInString(compose(caption, tags)) > limit {
		tags = tags[:len(tags)-1]
	}
	truncated := len(tags) < len(hashtags)
	if utf8.RuneCountInString(caption) > limit {
		caption = cut(caption, limit-utf8.RuneCountInString(ellipsis)) + ellipsis
		truncated = true
	}
	if tags == nil {
		tags = []string{}
	}
	return model.PlatformPreview{
		Platform:  strings.ToLower(platform),
		Caption:   compose(caption, tags),
		Hashtags:  tags,
		Truncated: truncated,
	}
}

func compose(caption string, tags []string) string {
	if len(tags) == 0 {
		return caption
	}
	return caption + "\n\n" + strings.Join(tags, " ")
}

// cut keeps at most n runes, backing off to the last space when one is near.
func cut(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	out := string(r[:n])
	if i := strings.LastIndexByte(out, ' '); i > len(out)*3/4 {
		out = out[:i]
	}
	return strings.TrimRight(out, " ")
}
