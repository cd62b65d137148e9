// Package content turns a free-text campaign description into caption variants,
// hashtags and calls-to-action using pattern matching and string templates.
package content

import (
	"context"
	"math/rand/v2"
	"time"

	"autopostr/internal/model"
)

// DefaultDelay simulates model latency before generation.
const DefaultDelay = 1500 * time.Millisecond

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Generator sequences validation, analysis and caption assembly.
// A Generator holds no per-call state and may be shared across goroutines
// as long as its Picker is safe for concurrent use (the default is).
type Generator struct {
	Delay  time.Duration
	Picker Picker
}

// NewGenerator returns a generator with the default delay and an unseeded picker.
func NewGenerator() *Generator {
	return &Generator{Delay: DefaultDelay, Picker: globalPicker{}}
}

// Analysis is the deterministic part of a generation: entities, tone, keywords, hashtags.
type Analysis struct {
	Parsed   ParsedPromptInfo   `json:"parsed"`
	Tone     ToneClassification `json:"tone"`
	Keywords []string           `json:"keywords"`
	Hashtags []string           `json:"hashtags"`
}

// Analyze runs parsing, tone classification, keyword extraction and hashtag generation.
func Analyze(description string, brand *model.BrandProfile) Analysis {
	parsed := Parse(description)
	keywords := ExtractKeywords(description)
	return Analysis{
		Parsed:   parsed,
		Tone:     ClassifyTone(description),
		Keywords: keywords,
		Hashtags: GenerateHashtags(keywords, description, brand, &parsed),
	}
}

// Generate validates the description, waits for the simulated delay and assembles
// the full content set. It returns a *ValidationError before any waiting when the
// description is rejected, and ctx.Err() if ctx ends during the delay.
func (g *Generator) Generate(ctx context.Context, description string, brand *model.BrandProfile) (*model.GeneratedContent, error) {
	if err := Validate(description); err != nil {
		return nil, err
	}
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	a := Analyze(description, brand)
	cta := VariateCTA(description, brand, &a.Parsed)
	return &model.GeneratedContent{
		Formal:        g.FormalCaption(description, brand, a.Tone, &a.Parsed),
		Casual:        g.CasualCaption(description, brand, a.Tone, &a.Parsed),
		Funny:         g.FunnyCaption(description, brand, a.Tone, &a.Parsed),
		Hashtags:      a.Hashtags,
		CTAVariations: &cta,
	}, nil
}

func (g *Generator) wait(ctx context.Context) error {
	if g.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (g *Generator) pick(n int) int {
	if n <= 1 {
		return 0
	}
	p := g.Picker
	if p == nil {
		p = globalPicker{}
	}
	i := p.IntN(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}
