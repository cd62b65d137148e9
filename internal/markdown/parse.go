package markdown

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"autopostr/internal/model"

	"gopkg.in/yaml.v3"
)

// Document represents a Markdown file with YAML frontmatter.
type Document struct {
	Frontmatter map[string]any
	Body        string

	raw []byte
}

// ParseFile reads a Markdown file and extracts YAML frontmatter and body.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse splits r into frontmatter and body.
// Frontmatter is expected at the top between two lines containing only "---".
func Parse(r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}
	hasFM := string(peek) == "---"
	var fmBuf strings.Builder
	var bodyBuf strings.Builder

	if hasFM {
		// opening delimiter
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
		for {
			l, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return Document{}, err
			}
			if strings.TrimSpace(l) == "---" {
				break
			}
			fmBuf.WriteString(l)
			if errors.Is(err, io.EOF) {
				break
			}
		}
	}
	for {
		l, err := br.ReadString('\n')
		bodyBuf.WriteString(l)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Document{}, err
		}
	}

	d := Document{
		Frontmatter: map[string]any{},
		Body:        bodyBuf.String(),
	}
	if hasFM {
		d.raw = []byte(fmBuf.String())
		m := map[string]any{}
		if err := yaml.Unmarshal(d.raw, &m); err != nil {
			return Document{}, err
		}
		if m != nil {
			d.Frontmatter = m
		}
	}
	return d, nil
}

// Meta decodes the frontmatter as an exported post header.
func (d Document) Meta() (model.PostMeta, error) {
	var m model.PostMeta
	if len(d.raw) == 0 {
		return m, errors.New("document has no frontmatter")
	}
	if err := yaml.Unmarshal(d.raw, &m); err != nil {
		return m, err
	}
	return m, nil
}

// Caption returns the body without surrounding blank lines and without a
// trailing line made only of hashtags.
func (d Document) Caption() string {
	lines := strings.Split(strings.TrimSpace(d.Body), "\n")
	if n := len(lines); n > 1 && isHashtagLine(lines[n-1]) {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func isHashtagLine(l string) bool {
	fields := strings.Fields(l)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !strings.HasPrefix(f, "#") || len(f) < 2 || strings.HasPrefix(f, "##") {
			return false
		}
	}
	return true
}
