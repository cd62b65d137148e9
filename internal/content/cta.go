package content

import (
	"strings"

	"autopostr/internal/model"
)

// CTA pools per register; the first entry is the default pick.
var (
	FormalCTAs = []string{
		"Learn more on our website.",
		"Contact our team to find out more.",
		"Visit us today to discover the details.",
		"Read the full announcement via the link in our bio.",
		"Subscribe to our newsletter for further updates.",
	}
	CasualCTAs = []string{
		"Check it out now! 👆",
		"Tap the link in bio! ✨",
		"Tag a friend who needs this! 👯",
		"Drop a ❤️ if you're in!",
		"Share this with your crew! 🙌",
		"Hit follow for more! 🔔",
	}
	FunnyCTAs = []string{
		"Click the link before your cat does. 🐈",
		"Go on, your thumb needs the exercise. 👍",
		"Tap it. You know you want to. 😏",
		"Follow us, we promise we're funnier in person. 🤡",
		"Smash that like button like it owes you money. 💥",
	}
)

// Keyword-triggered CTA triples replace the defaults wholesale.
var (
	DiscountCTAs = model.CTAVariations{
		Formal: "Take advantage of this exclusive offer today.",
		Casual: "Grab the deal before it's gone! 🛍️",
		Funny:  "Your wallet called. It said yes. 💸 Shop now!",
	}
	LaunchCTAs = model.CTAVariations{
		Formal: "Be among the first to experience it.",
		Casual: "Check it out now and tell us what you think! 🚀",
		Funny:  "Go on, be the cool early adopter. 😎",
	}
	EducationCTAs = model.CTAVariations{
		Formal: "Read the full guide to learn more.",
		Casual: "Tap the link to learn how! 📚",
		Funny:  "Class is in session, and there's no pop quiz. 🤓 Learn more!",
	}
)

// VariateCTA returns one call-to-action per register. A parsed discount percentage
// counts as a discount trigger alongside "sale" and "discount".
func VariateCTA(description string, _ *model.BrandProfile, parsed *ParsedPromptInfo) model.CTAVariations {
	text := strings.ToLower(description)
	switch {
	case containsAny(text, []string{"sale", "discount"}) || (parsed != nil && parsed.Percentage != ""):
		return DiscountCTAs
	case containsAny(text, []string{"launch", "new"}):
		return LaunchCTAs
	case containsAny(text, []string{"learn", "guide", "how"}):
		return EducationCTAs
	}
	return model.CTAVariations{
		Formal: FormalCTAs[0],
		Casual: CasualCTAs[0],
		Funny:  FunnyCTAs[0],
	}
}
