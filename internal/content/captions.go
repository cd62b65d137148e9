package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"autopostr/internal/model"
)

// Template placeholders.
const (
	phBody   = "{body}"
	phBrand  = "{brand}"
	phValues = "{values}"
)

// FormalTemplates is the generic formal pool; every entry names the brand and values.
var FormalTemplates = []string{
	"We are pleased to announce: {body} {brand} will continue to champion {values}. Join us on this exciting journey.",
	"Announcement: {body} {brand} will keep delivering {values} to every customer we serve. Learn more about our vision.",
	"{body} {brand} would like to thank our community for its continued support. Our commitment to {values} remains unchanged.",
}

// CasualTemplates is the generic casual pool; every entry ends by inviting a reply.
var CasualTemplates = []string{
	"Hey everyone! ✨ {body} {brand} can't wait for you to check it out! What do you think? 💭",
	"Big news! 🚀 {body} {brand} poured so much love into this, all in the name of {values}. Tell us what you think in the comments! 💬",
	"🎉 Guess what? {body} {brand} would love to hear from you, so drop a comment below! 👇",
}

// FunnyTemplates is the generic funny pool; {brand} sits in object position here.
var FunnyTemplates = []string{
	"Plot twist: {body} 🎬 Brought to you by {brand}, and better than your ex's apology text. 😂 Who's ready?",
	"Breaking news! 📢 {body} Nobody is more excited than {brand}, not even a dog seeing a squirrel. 🐿️ Ready to join the fun?",
	"{body} Trust {brand}, nobody spilled coffee on the keyboard this time! ☕😅 Actually proud of this one. Who's in?",
}

// Tone-specific templates take precedence over the random pools.
var (
	formalToneTemplates = map[string]string{
		ToneUrgent:        "Time-sensitive announcement: {body} This opportunity is available for a limited period only. Please act promptly to secure your place.",
		ToneCelebratory:   "It is with great pleasure that we share this milestone: {body} We extend our sincere gratitude to everyone who made it possible.",
		ToneInspirational: "Every meaningful achievement begins with a vision. {body} Together, we continue to build a future worth believing in.",
	}
	casualToneTemplates = map[string]string{
		ToneEnthusiastic: "OMG, this is happening! 🤩 {body} We're beyond excited and we hope you are too! Who's ready? 🙌",
		ToneCelebratory:  "Let's celebrate! 🥳🎉 {body} Thank you for being part of the party. Share your favorite memory with us below! 💬",
	}
	funnyToneTemplates = map[string]string{
		ToneUrgent:      "{body} ⏰ Hurry! This deal is disappearing faster than free pizza at an office party. 🍕🏃 Don't say we didn't warn you!",
		ToneCelebratory: "{body} 🎉 We're celebrating harder than a toddler who just discovered the cake. 🎂😂 Grab a party hat and join us!",
	}
)

// ToneTemplate returns the fixed template for a register and tone, if one exists.
func ToneTemplate(register model.ToneType, tone string) (string, bool) {
	var m map[string]string
	switch register {
	case model.ToneFormal:
		m = formalToneTemplates
	case model.ToneCasual:
		m = casualToneTemplates
	case model.ToneFunny:
		m = funnyToneTemplates
	}
	t, ok := m[tone]
	return t, ok
}

// FormalCaption renders the formal register.
func (g *Generator) FormalCaption(description string, brand *model.BrandProfile, tone ToneClassification, parsed *ParsedPromptInfo) string {
	body := formalFraming(parsed) + normalizeDescription(description) + formalClauses(parsed)
	return g.assemble(model.ToneFormal, FormalTemplates, body, brandName(fieldBrandSubject, brand, parsed), brand, tone)
}

// CasualCaption renders the casual register.
func (g *Generator) CasualCaption(description string, brand *model.BrandProfile, tone ToneClassification, parsed *ParsedPromptInfo) string {
	body := casualFraming(parsed) + normalizeDescription(description) + casualClauses(parsed)
	return g.assemble(model.ToneCasual, CasualTemplates, body, brandName(fieldBrandSubject, brand, parsed), brand, tone)
}

// FunnyCaption renders the funny register.
func (g *Generator) FunnyCaption(description string, brand *model.BrandProfile, tone ToneClassification, parsed *ParsedPromptInfo) string {
	body := funnyFraming(parsed) + normalizeDescription(description) + casualClauses(parsed)
	return g.assemble(model.ToneFunny, FunnyTemplates, body, brandName(fieldBrandObject, brand, parsed), brand, tone)
}

func (g *Generator) assemble(register model.ToneType, pool []string, body, name string, brand *model.BrandProfile, tone ToneClassification) string {
	tmpl, ok := ToneTemplate(register, tone.Tone)
	if !ok {
		tmpl = pool[g.pick(len(pool))]
	}
	return strings.NewReplacer(
		phBody, body,
		phBrand, name,
		phValues, valuesPhrase(brand),
	).Replace(tmpl)
}

// normalizeDescription trims, capitalizes the first letter and ensures closing punctuation.
func normalizeDescription(description string) string {
	s := strings.TrimSpace(description)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}

func formalFraming(p *ParsedPromptInfo) string {
	switch {
	case p == nil:
		return ""
	case p.ProductName != "":
		return "Introducing " + p.ProductName + ". "
	case p.EventName != "":
		return "Event: " + p.EventName + ". "
	}
	return ""
}

func casualFraming(p *ParsedPromptInfo) string {
	switch {
	case p == nil:
		return ""
	case p.ProductName != "":
		return "Meet " + p.ProductName + "! "
	case p.EventName != "":
		return p.EventName + " is happening! "
	}
	return ""
}

func funnyFraming(p *ParsedPromptInfo) string {
	switch {
	case p == nil:
		return ""
	case p.ProductName != "":
		return "Say hello to " + p.ProductName + ". "
	case p.EventName != "":
		return "Mark your calendars for " + p.EventName + ". "
	}
	return ""
}

func formalClauses(p *ParsedPromptInfo) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	if p.Location != "" {
		b.WriteString(" Location: " + p.Location + ".")
	}
	if p.Date != "" {
		b.WriteString(" Date: " + p.Date + ".")
	}
	if p.Price != "" {
		b.WriteString(" Available at " + p.Price + ".")
	}
	if p.Percentage != "" {
		b.WriteString(" Enjoy " + p.Percentage + " off for a limited time.")
	}
	return b.String()
}

func casualClauses(p *ParsedPromptInfo) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	if p.Location != "" {
		b.WriteString(" 📍 " + p.Location)
	}
	if p.Date != "" {
		b.WriteString(" 📅 " + p.Date)
	}
	if p.Price != "" {
		b.WriteString(" 💰 Only " + p.Price + "!")
	}
	if p.Percentage != "" {
		b.WriteString(" 🔥 " + p.Percentage + " OFF!")
	}
	return b.String()
}
