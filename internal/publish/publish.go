package publish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autopostr/internal/markdown"
	"autopostr/internal/model"
)

// Publisher is what the scheduler needs to push a due post out.
type Publisher interface {
	PublishScheduled(ctx context.Context, p model.ScheduledPost) (string, error)
}

// PublishMarkdownFile parses an exported Markdown file, uses its frontmatter as params,
// adds content, creates the post and publishes it. It returns the remote post ID.
func PublishMarkdownFile(ctx context.Context, c *Client, path string) (string, error) {
	doc, err := markdown.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("read markdown: %w", err)
	}
	params := map[string]any{}
	for k, v := range doc.Frontmatter {
		params[k] = v
	}
	// datetime is written as "YYYY-MM-DD HH:MM"; the API wants RFC 3339
	if dtStr, ok := params["datetime"].(string); ok {
		if t, err := time.Parse("2006-01-02 15:04", dtStr); err == nil {
			params["datetime"] = t.Format(time.RFC3339)
		}
	}
	params["content"] = doc.Body

	id, err := c.CreatePost(ctx, params)
	if err != nil {
		return "", err
	}
	return id, c.PublishPost(ctx, id)
}

// PublishScheduled creates and publishes a stored post.
func (c *Client) PublishScheduled(ctx context.Context, p model.ScheduledPost) (string, error) {
	content := p.Caption
	if len(p.Hashtags) > 0 {
		content += "\n\n" + strings.Join(p.Hashtags, " ")
	}
	params := map[string]any{
		"title":     p.Title,
		"slug":      model.Slug(p.Title + " " + p.ID),
		"datetime":  p.ScheduledAt.UTC().Format(time.RFC3339),
		"platforms": p.Platforms,
		"content":   content,
	}
	id, err := c.CreatePost(ctx, params)
	if err != nil {
		return "", err
	}
	return id, c.PublishPost(ctx, id)
}
