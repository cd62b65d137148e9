package content

import (
	"strings"

	"autopostr/internal/model"
)

// Default lookup keys.
const (
	fieldBrandSubject = "brand_subject"
	fieldBrandObject  = "brand_object"
	fieldValues       = "values"
)

// defaults is the single source of fallbacks when no brand profile or entity applies.
var defaults = map[string]string{
	fieldBrandSubject: "We",
	fieldBrandObject:  "us",
	fieldValues:       "excellence and innovation",
}

// brandName picks the parsed brand, then the profile name, then the default for field.
func brandName(field string, brand *model.BrandProfile, parsed *ParsedPromptInfo) string {
	if parsed != nil && strings.TrimSpace(parsed.BrandName) != "" {
		return strings.TrimSpace(parsed.BrandName)
	}
	if brand != nil && strings.TrimSpace(brand.Name) != "" {
		return strings.TrimSpace(brand.Name)
	}
	return defaults[field]
}

// valuesPhrase is the profile's first key value or the default values phrase.
func valuesPhrase(brand *model.BrandProfile) string {
	if brand != nil {
		for _, v := range brand.KeyValues {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return defaults[fieldValues]
}
