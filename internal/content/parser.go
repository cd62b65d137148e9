package content

import (
	"regexp"
	"strings"
)

// ParsedPromptInfo holds entities pulled out of a free-text description.
// Every field is optional; plain descriptions usually leave most of them empty.
type ParsedPromptInfo struct {
	BrandName   string   `json:"brand_name,omitempty"`
	ProductName string   `json:"product_name,omitempty"`
	EventName   string   `json:"event_name,omitempty"`
	Location    string   `json:"location,omitempty"`
	Date        string   `json:"date,omitempty"`
	Price       string   `json:"price,omitempty"`
	Percentage  string   `json:"percentage,omitempty"`
	Features    []string `json:"features,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
}

const maxListEntries = 3

const (
	// properName is up to four capitalized words.
	properName = `([A-Z][\w&'.-]*(?:\s+[A-Z][\w&'.-]*){0,3})`
	// phraseEnd stops a lazy phrase at a connective, punctuation or end of text.
	phraseEnd = `(?:\s+(?i:for|at|on|in|with|by|made|that|which|this|next|to)\b|[,.!?;\n]|$)`
	monthName = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	money     = `(\$(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?)`
)

var (
	brandRules = ruleList{
		newRule(`(?i:\bbrand(?:\s+name)?\s+is)\s+` + properName),
		newRule(`(?i:\b(?:for|by|from|at))\s+` + properName),
		newRule(`^` + properName + `\s+(?i:is|has|offers|launches|presents|announces|introduces|brings)\b`),
	}
	productRules = ruleList{
		newRule(`(?i:\bproduct(?:\s+name)?\s+is)\s+([^,.!?;\n]+?)` + phraseEnd),
		newRule(`(?i:\b(?:new|latest|introducing))\s+([^,.!?;\n]+?)` + phraseEnd),
		newRule(`(?i:\b(?:called|named))\s+([^,.!?;\n]+?)` + phraseEnd),
	}
	eventRules = ruleList{
		newRule(`(?i:\bevent(?:\s+name)?\s+is)\s+([^,.!?;\n]+?)` + phraseEnd),
		newRule(`(?i:\b(?:hosting|organizing|organising|presenting))\s+(?:(?i:our|an|a|the)\s+)?([^,.!?;\n]+?)` + phraseEnd),
	}
	locationRules = ruleList{
		newRule(`(?i:\blocation(?:\s+is|\s*:))\s*([^,.!?;\n]+?)(?:\s+(?i:on)\b|[,.!?;\n]|$)`),
		newRule(`(?i:\b(?:at|in))\s+([A-Z][^,.!?;\n]*?)(?:\s+(?i:on)\b|[,.!?;\n]|$)`),
	}
	dateRules = ruleList{
		newRule(`(?i)\b(` + monthName + `\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?)\b`),
		newRule(`(?i)\b(\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthName + `(?:,?\s+\d{4})?)\b`),
		newRule(`\b(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`),
	}
	priceRules = ruleList{
		newRule(`(?i:\b(?:price(?:\s+is)?|costs?|priced\s+at))\s*:?\s*` + money),
		newRule(money),
	}
	percentageRules = ruleList{
		newRule(`\b(\d{1,3}(?:\.\d+)?%)\s*(?i:off|discount|savings?)\b`),
		newRule(`(?i:\bsave)\s+(\d{1,3}(?:\.\d+)?%)`),
	}
	featureRules = ruleList{
		newRule(`(?i:\bfeatures?\s+(?:include|are|is))\s*:?\s+([^.!?;\n]+)`),
		newRule(`(?i:\b(?:includes|comes\s+with|equipped\s+with))\s+([^.!?;\n]+)`),
	}
	benefitRules = ruleList{
		newRule(`(?i:\bbenefits?\s+(?:include|are))\s*:?\s+([^.!?;\n]+)`),
		newRule(`(?i:\b(?:helps|allows|enables)\s+you\s+to)\s+([^.!?;\n]+)`),
	}

	listSplitter = regexp.MustCompile(`(?i)\s*,\s*(?:and\s+)?|\s+and\s+`)
)

// Parse extracts entities using ordered pattern lists; the first matching pattern per
// entity wins. It never fails: unmatched entities stay empty.
func Parse(description string) ParsedPromptInfo {
	text := strings.TrimSpace(description)
	return ParsedPromptInfo{
		BrandName:   brandRules.first(text),
		ProductName: productRules.first(text),
		EventName:   eventRules.first(text),
		Location:    locationRules.first(text),
		Date:        dateRules.first(text),
		Price:       priceRules.first(text),
		Percentage:  percentageRules.first(text),
		Features:    splitList(featureRules.first(text)),
		Benefits:    splitList(benefitRules.first(text)),
	}
}

// IsEmpty reports whether no entity was found.
func (p ParsedPromptInfo) IsEmpty() bool {
	return p.BrandName == "" && p.ProductName == "" && p.EventName == "" &&
		p.Location == "" && p.Date == "" && p.Price == "" && p.Percentage == "" &&
		len(p.Features) == 0 && len(p.Benefits) == 0
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range listSplitter.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
		if len(out) == maxListEntries {
			break
		}
	}
	return out
}
