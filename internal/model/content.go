package model

import "time"

// ToneType selects one caption register.
type ToneType string

const (
	ToneFormal ToneType = "formal"
	ToneCasual ToneType = "casual"
	ToneFunny  ToneType = "funny"
)

// CTAVariations holds one call-to-action per register.
type CTAVariations struct {
	Formal string `json:"formal"`
	Casual string `json:"casual"`
	Funny  string `json:"funny"`
}

// GeneratedContent is the aggregate result of one generation call.
type GeneratedContent struct {
	Formal        string         `json:"formal"`
	Casual        string         `json:"casual"`
	Funny         string         `json:"funny"`
	Hashtags      []string       `json:"hashtags"`
	CTAVariations *CTAVariations `json:"cta_variations,omitempty"`
}

// Caption returns the caption for the given register, falling back to casual.
func (g GeneratedContent) Caption(t ToneType) string {
	switch t {
	case ToneFormal:
		return g.Formal
	case ToneFunny:
		return g.Funny
	default:
		return g.Casual
	}
}

// CTA returns the call-to-action for the given register, or "" when none was computed.
func (g GeneratedContent) CTA(t ToneType) string {
	if g.CTAVariations == nil {
		return ""
	}
	switch t {
	case ToneFormal:
		return g.CTAVariations.Formal
	case ToneFunny:
		return g.CTAVariations.Funny
	default:
		return g.CTAVariations.Casual
	}
}

// ParseToneType maps a user-supplied register name; unknown values become casual.
func ParseToneType(s string) ToneType {
	switch ToneType(s) {
	case ToneFormal, ToneFunny:
		return ToneType(s)
	default:
		return ToneCasual
	}
}

// HistoryEntry records one generation for later browsing.
type HistoryEntry struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	BrandName   string           `json:"brand_name,omitempty"`
	Content     GeneratedContent `json:"content"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PlatformPreview is a caption fitted to one social platform.
type PlatformPreview struct {
	Platform  string   `json:"platform"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
	Truncated bool     `json:"truncated"`
}
