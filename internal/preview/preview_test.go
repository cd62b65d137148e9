package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCaptionFits(t *testing.T) {
	p := Caption("Twitter", "Short caption.", []string{"#A", "#B"})
	if p.Truncated || p.Platform != "twitter" {
		t.Fatalf("unexpected preview: %+v", p)
	}
	if p.Caption != "Short caption.\n\n#A #B" {
		t.Errorf("Caption = %q", p.Caption)
	}
}

func TestCaptionDropsHashtagsFirst(t *testing.T) {
	caption := strings.Repeat("x", 270)
	p := Caption("twitter", caption, []string{"#One", "#Two", "#Three"})
	if !p.Truncated {
		t.Fatal("expected truncation")
	}
	if len(p.Hashtags) != 1 || p.Hashtags[0] != "#One" {
		t.Errorf("Hashtags = %v", p.Hashtags)
	}
	if n := utf8.RuneCountInString(p.Caption); n > 280 {
		t.Errorf("caption has %d chars", n)
	}
}

func TestCaptionCutsLongText(t *testing.T) {
	caption := strings.Repeat("word ", 100)
	p := Caption("twitter", caption, []string{"#Tag"})
	if !p.Truncated || len(p.Hashtags) != 0 {
		t.Fatalf("unexpected preview: %+v", p)
	}
	if !strings.HasSuffix(p.Caption, "…") {
		t.Errorf("missing ellipsis: %q", p.Caption)
	}
	if n := utf8.RuneCountInString(p.Caption); n > 280 {
		t.Errorf("caption has %d chars", n)
	}
	if strings.Contains(p.Caption, " …") {
		t.Errorf("ellipsis should follow a word: %q", p.Caption)
	}
}

func TestSpecForUnknown(t *testing.T) {
	if SpecFor("myspace") != SpecFor("instagram") {
		t.Fatal("unknown platform should fall back to instagram")
	}
}

func TestResizeCoversCanvas(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	for x := 0; x < 400; x++ {
		for y := 0; y < 100; y++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 150 && x < 250 {
				c = color.RGBA{B: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}
	// instagram is square: the centered 100x100 blue band should fill the canvas.
	out := Resize(src, "instagram")
	if b := out.Bounds(); b.Dx() != 1080 || b.Dy() != 1080 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := out.At(540, 540).RGBA()
	if b>>8 < 200 || r>>8 > 50 || g>>8 > 50 {
		t.Errorf("center pixel = %v,%v,%v; want blue", r>>8, g>>8, b>>8)
	}
	if _, _, b, _ := out.At(5, 5).RGBA(); b>>8 < 200 {
		t.Errorf("corner should come from the blue band")
	}
}

func TestRenderWritesWebP(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.png")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 64, 48))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	paths, err := Render(src, filepath.Join(dir, "out"), []string{"Twitter", "linkedin"}, 80)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "photo-twitter.webp" {
		t.Fatalf("paths = %v", paths)
	}
	img, err := Decode(paths[0])
	if err != nil {
		t.Fatalf("Decode webp: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 675 {
		t.Errorf("twitter preview bounds = %v", b)
	}
}
