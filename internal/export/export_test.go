package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"autopostr/internal/markdown"
	"autopostr/internal/model"
)

var now = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func sample() *model.GeneratedContent {
	return &model.GeneratedContent{
		Formal:   "We are pleased to announce: Our new bottle.",
		Casual:   "Big news! Our new bottle. 🔥",
		Funny:    "Plot twist: Our new bottle.",
		Hashtags: []string{"#NewRelease", "#EcoFriendly"},
		CTAVariations: &model.CTAVariations{
			Formal: "Be among the first to experience it.",
			Casual: "Get yours today!",
			Funny:  "Don't be the last to know!",
		},
	}
}

func TestExpandVars(t *testing.T) {
	got := ExpandVars("{.Tone} post {.CurrentDate}", now, model.ToneFunny)
	if got != "Funny post 2026-10-19" {
		t.Fatalf("ExpandVars = %q", got)
	}
	if ExpandVars("  ", now, model.ToneFunny) != "  " {
		t.Fatal("blank template should be returned unchanged")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"3f1c9a2e-77b0-4d55-9a51-0c2d7e4b8f10", "casual-20261019-0930-3f1c9a2e"},
		{"ab", "casual-20261019-0930-ab"},
		{"", "casual-20261019-0930"},
	}
	for _, tt := range tests {
		if got := Slug(model.ToneCasual, now, tt.id); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestWriteFileSameMinuteKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	first := FromContent(sample(), model.ToneFormal, "Launching our new bottle", "Acme", "", now, "11111111-aaaa")
	second := FromContent(sample(), model.ToneFormal, "Launching our new lid", "Acme", "", now, "22222222-bbbb")
	p1, err := WriteFile(dir, first)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p2, err := WriteFile(dir, second)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("both exports written to %s", p1)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("files = %d, want 2", len(entries))
	}
}

func TestRender(t *testing.T) {
	d := FromContent(sample(), model.ToneCasual, "Launching our new bottle", "Acme", "{.Tone} post {.CurrentDate}", now, "c0ffee00-1234")
	out, err := Render(d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(out, "---\ntitle: Casual post 2026-10-19\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	wantTail := "---\n\nBig news! Our new bottle. 🔥\n\nGet yours today!\n\n#NewRelease #EcoFriendly\n"
	if !strings.HasSuffix(out, wantTail) {
		t.Errorf("unexpected body:\n%q", out)
	}
}

func TestRenderWithoutCTAOrHashtags(t *testing.T) {
	out, err := Render(Data{Meta: model.PostMeta{Title: "t", Tone: model.ToneFormal}, Caption: "Hello."})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(out, "---\n\nHello.\n") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	d := FromContent(sample(), model.ToneFormal, "Launching our new bottle", "Acme", "", now, "c0ffee00-1234")
	path, err := WriteFile(dir, d)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Base(path) != "formal-20261019-0930-c0ffee00.md" {
		t.Errorf("file name = %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	doc, err := markdown.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	meta, err := doc.Meta()
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.Title != "formal post" || meta.Tone != model.ToneFormal || meta.Brand != "Acme" {
		t.Errorf("meta = %+v", meta)
	}
	if meta.Datetime != "2026-10-19 09:30" || len(meta.Hashtags) != 2 {
		t.Errorf("meta = %+v", meta)
	}
	want := "We are pleased to announce: Our new bottle.\n\nBe among the first to experience it."
	if got := doc.Caption(); got != want {
		t.Errorf("Caption = %q, want %q", got, want)
	}
}
