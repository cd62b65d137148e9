// Package export renders generated captions as Markdown files with YAML frontmatter.
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"autopostr/internal/model"

	"gopkg.in/yaml.v3"
)

// Data is one post ready to render.
type Data struct {
	Meta    model.PostMeta
	Caption string
	CTA     string
}

//go:embed post.tmpl
var postTpl string

var compiled = template.Must(template.New("post").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(postTpl))

// DatetimeLayout is the frontmatter datetime format.
const DatetimeLayout = "2006-01-02 15:04"

// Render returns the Markdown document for d.
func Render(d Data) (string, error) {
	fm, err := yaml.Marshal(d.Meta)
	if err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	var buf bytes.Buffer
	err = compiled.Execute(&buf, struct {
		Data
		Frontmatter string
	}{d, string(fm)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FromContent picks the register's caption and CTA out of a generation.
// titleTemplate is expanded with ExpandVars; id ends up in the file name.
func FromContent(gc *model.GeneratedContent, tone model.ToneType, description, brand, titleTemplate string, now time.Time, id string) Data {
	title := strings.TrimSpace(ExpandVars(titleTemplate, now, tone))
	if title == "" {
		title = string(tone) + " post"
	}
	return Data{
		Meta: model.PostMeta{
			Title:       title,
			Slug:        Slug(tone, now, id),
			Datetime:    now.UTC().Format(DatetimeLayout),
			Tone:        tone,
			Brand:       brand,
			Description: description,
			Hashtags:    gc.Hashtags,
		},
		Caption: gc.Caption(tone),
		CTA:     gc.CTA(tone),
	}
}

// Slug is "<tone>-YYYYMMDD-HHMM-<short id>" in UTC.
func Slug(tone model.ToneType, now time.Time, id string) string {
	return Stamp(string(tone), now, id)
}

// Stamp joins name, the UTC minute of t and ShortID(id) into a file slug.
// The id part keeps same-minute files from replacing each other.
func Stamp(name string, t time.Time, id string) string {
	s := fmt.Sprintf("%s-%s", name, t.UTC().Format("20060102-1504"))
	if short := ShortID(id); short != "" {
		s += "-" + short
	}
	return s
}

// ShortID is the first 8 characters of id, dashes and other separators dropped.
func ShortID(id string) string {
	short := []rune(strings.ReplaceAll(model.Slug(id), "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return string(short)
}

// WriteFile renders d into dir/<slug>.md and returns the written path.
func WriteFile(dir string, d Data) (string, error) {
	out, err := Render(d)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := d.Meta.Slug
	if name == "" {
		name = model.Slug(d.Meta.Title)
	}
	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
