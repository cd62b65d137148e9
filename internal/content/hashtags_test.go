package content

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"autopostr/internal/model"
)

var hashtagShape = regexp.MustCompile(`^#[A-Za-z0-9]+$`)

func TestGenerateHashtagsLaunchScenario(t *testing.T) {
	desc := "Launching our new eco-friendly water bottle made from recycled materials"
	parsed := Parse(desc)
	got := GenerateHashtags(ExtractKeywords(desc), desc, nil, &parsed)
	want := []string{
		"#EcoFriendlyWaterBottle",
		"#NewRelease", "#ProductLaunch",
		"#Sustainable", "#EcoFriendly",
		"#Launching", "#Friendly", "#Water", "#Bottle", "#Made",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateHashtags =\n%q\nwant\n%q", got, want)
	}
}

func TestGenerateHashtagsSubjectChainIsExclusive(t *testing.T) {
	desc := "digital fitness recipes for travel"
	got := GenerateHashtags(nil, desc, nil, nil)
	want := []string{"#Innovation", "#TechNews"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateHashtagsBrandProfile(t *testing.T) {
	brand := &model.BrandProfile{
		Name:      "Trailhead",
		Industry:  "Outdoor Gear",
		KeyValues: []string{"sustainability", "craftsmanship", "community"},
	}
	got := GenerateHashtags([]string{"boots"}, "new hiking boots", brand, nil)
	want := []string{"#OutdoorGear", "#Sustainability", "#Craftsmanship", "#Boots"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateHashtagsDenylistAndDedupe(t *testing.T) {
	got := GenerateHashtags([]string{"amazing", "great", "coffee", "COFFEE"}, "amazing great coffee", nil, nil)
	want := []string{"#Coffee"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateHashtagsInvariants(t *testing.T) {
	brand := &model.BrandProfile{Industry: "Food & Beverage", KeyValues: []string{"local-first", "  ", "fair trade!"}}
	inputs := []string{
		"Launching our new eco-friendly water bottle made from recycled materials",
		"Acme is hosting the Summer Splash Festival in Central Park on June 21st, 2026.",
		"Amazing awesome great cool best nice fun good stuff happening everywhere tonight",
		"Introducing the café crème brûlée recipe, a creative design for health nuts",
		"Our brand is Lumen Labs and the product is SolarPack Pro, priced at $1,299.00.",
	}
	for _, in := range inputs {
		for _, b := range []*model.BrandProfile{nil, brand} {
			parsed := Parse(in)
			tags := GenerateHashtags(ExtractKeywords(in), in, b, &parsed)
			if len(tags) > maxHashtags {
				t.Errorf("%q: %d tags", in, len(tags))
			}
			seen := map[string]bool{}
			for _, tag := range tags {
				if !hashtagShape.MatchString(tag) {
					t.Errorf("%q: malformed tag %q", in, tag)
				}
				if IsDeniedHashtag(tag) {
					t.Errorf("%q: denied tag %q", in, tag)
				}
				key := strings.ToLower(tag)
				if seen[key] {
					t.Errorf("%q: duplicate tag %q", in, tag)
				}
				seen[key] = true
			}
		}
	}
}

func TestHashtag(t *testing.T) {
	tests := map[string]string{
		"eco-friendly water bottle": "#EcoFriendlyWaterBottle",
		"Summer Splash Festival":    "#SummerSplashFestival",
		"café":                      "#Caf",
		"   ":                       "",
		"!!!":                       "",
		"iPhone 16":                 "#IPhone16",
	}
	for in, want := range tests {
		if got := Hashtag(in); got != want {
			t.Errorf("Hashtag(%q) = %q, want %q", in, got, want)
		}
	}
}
