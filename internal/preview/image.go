package preview

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode reads a JPEG, PNG or WebP image from path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Resize scales img to cover the platform canvas and crops the overflow around the center.
func Resize(img image.Image, platform string) *image.RGBA {
	spec := SpecFor(platform)
	return cover(img, spec.Width, spec.Height)
}

func cover(img image.Image, w, h int) *image.RGBA {
	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Empty() {
		return dst
	}
	// crop region in source coordinates with the target aspect ratio
	cw, ch := src.Dx(), src.Dx()*h/w
	if ch > src.Dy() {
		cw, ch = src.Dy()*w/h, src.Dy()
	}
	x0 := src.Min.X + (src.Dx()-cw)/2
	y0 := src.Min.Y + (src.Dy()-ch)/2
	crop := image.Rect(x0, y0, x0+cw, y0+ch)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)
	return dst
}

// WriteWebP encodes img to path, creating parent directories.
func WriteWebP(path string, img image.Image, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview file: %w", err)
	}
	defer f.Close()
	if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}

// Render decodes src, fits it to each platform and writes <outDir>/<name>-<platform>.webp.
// It returns the written paths in platform order.
func Render(src, outDir string, platforms []string, quality int) ([]string, error) {
	img, err := Decode(src)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	slog.Info("preview: source decoded", "path", src, "width", b.Dx(), "height", b.Dy())
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := make([]string, 0, len(platforms))
	for _, p := range platforms {
		p = strings.ToLower(p)
		path := filepath.Join(outDir, fmt.Sprintf("%s-%s.webp", name, p))
		if err := WriteWebP(path, Resize(img, p), quality); err != nil {
			return out, fmt.Errorf("%s: %w", p, err)
		}
		slog.Info("preview: written", "platform", p, "path", path)
		out = append(out, path)
	}
	return out, nil
}
