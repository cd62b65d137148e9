package content

import "strings"

// Tone labels.
const (
	ToneNeutral       = "neutral"
	ToneEnthusiastic  = "enthusiastic"
	ToneProfessional  = "professional"
	ToneUrgent        = "urgent"
	ToneInspirational = "inspirational"
	ToneCelebratory   = "celebratory"
)

// ToneClassification is the detected emotional register of a description.
type ToneClassification struct {
	Tone     string   `json:"tone"`
	Emotion  string   `json:"emotion"`
	Keywords []string `json:"keywords"`
}

type toneSet struct {
	tone    string
	emotion string
	tag     string
	words   []string
}

// toneSets are scanned in this order and every hit overwrites tone and emotion,
// so the last matching set decides the result while tags accumulate.
var toneSets = []toneSet{
	{
		tone: ToneEnthusiastic, emotion: "excited", tag: "energetic",
		words: []string{"exciting", "excited", "amazing", "incredible", "awesome", "thrilled", "fantastic", "wow", "launch"},
	},
	{
		tone: ToneProfessional, emotion: "confident", tag: "authoritative",
		words: []string{"professional", "business", "enterprise", "solution", "industry", "corporate", "expertise", "quality"},
	},
	{
		tone: ToneUrgent, emotion: "urgent", tag: "time-sensitive",
		words: []string{"limited time", "hurry", "last chance", "ending soon", "deadline", "act now", "today only", "don't miss", "final hours"},
	},
	{
		tone: ToneInspirational, emotion: "hopeful", tag: "motivational",
		words: []string{"inspire", "dream", "achieve", "journey", "empower", "transform", "believe", "vision", "future"},
	},
	{
		tone: ToneCelebratory, emotion: "joyful", tag: "festive",
		words: []string{"celebrate", "anniversary", "congratulations", "milestone", "party", "birthday", "festival", "holiday", "thank you"},
	},
}

// ToneWords returns the keyword set for a tone, or nil for unknown tones.
func ToneWords(tone string) []string {
	for _, s := range toneSets {
		if s.tone == tone {
			return append([]string(nil), s.words...)
		}
	}
	return nil
}

// ClassifyTone scans the lowercased description for each tone set by substring.
func ClassifyTone(description string) ToneClassification {
	text := strings.ToLower(description)
	out := ToneClassification{Tone: ToneNeutral, Emotion: "informative", Keywords: []string{}}
	for _, s := range toneSets {
		if !containsAny(text, s.words) {
			continue
		}
		out.Tone = s.tone
		out.Emotion = s.emotion
		out.Keywords = append(out.Keywords, s.tag)
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
