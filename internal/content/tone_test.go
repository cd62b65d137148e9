package content

import (
	"reflect"
	"testing"
)

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tone     string
		emotion  string
		keywords []string
	}{
		{"no match", "Quarterly report numbers", ToneNeutral, "informative", []string{}},
		{"celebratory", "Celebrate our anniversary milestone", ToneCelebratory, "joyful", []string{"festive"}},
		{"enthusiastic", "So excited to share this", ToneEnthusiastic, "excited", []string{"energetic"}},
		{"last match wins", "Exciting drop, hurry while stock lasts", ToneUrgent, "urgent", []string{"energetic", "time-sensitive"}},
		{"professional then inspirational", "Our business journey", ToneInspirational, "hopeful", []string{"authoritative", "motivational"}},
		{"case insensitive", "LIMITED TIME OFFER", ToneUrgent, "urgent", []string{"time-sensitive"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTone(tt.input)
			if got.Tone != tt.tone || got.Emotion != tt.emotion {
				t.Errorf("tone = %s/%s, want %s/%s", got.Tone, got.Emotion, tt.tone, tt.emotion)
			}
			if !reflect.DeepEqual(got.Keywords, tt.keywords) {
				t.Errorf("keywords = %q, want %q", got.Keywords, tt.keywords)
			}
		})
	}
}

func TestClassifyToneCelebratoryWords(t *testing.T) {
	for _, w := range ToneWords(ToneCelebratory) {
		if got := ClassifyTone(w).Tone; got != ToneCelebratory {
			t.Errorf("ClassifyTone(%q) = %s, want %s", w, got, ToneCelebratory)
		}
	}
}
