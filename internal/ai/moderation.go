package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrFlagged is returned when a description is rejected by moderation.
var ErrFlagged = errors.New("description was flagged by content moderation")

// Moderator screens campaign descriptions before captions are generated.
type Moderator interface {
	Check(ctx context.Context, text string) error
}

// Config configures the OpenAI moderation client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

// OpenAIModerator implements Moderator using the OpenAI Moderations API.
type OpenAIModerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIModerator(cfg Config) *OpenAIModerator {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		model = openai.ModerationTextLatest
	}
	return &OpenAIModerator{client: c, model: model}
}

// Check returns ErrFlagged when any moderation result is flagged.
func (o *OpenAIModerator) Check(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	resp, err := o.client.Moderations(ctx, openai.ModerationRequest{
		Input: strings.TrimSpace(text),
		Model: o.model,
	})
	if err != nil {
		slog.Error("openai: moderation error", "err", err)
		return fmt.Errorf("moderation: %w", err)
	}
	for _, r := range resp.Results {
		if r.Flagged {
			slog.Warn("openai: description flagged", "model", resp.Model)
			return ErrFlagged
		}
	}
	return nil
}

// Nop accepts every description.
type Nop struct{}

func (Nop) Check(context.Context, string) error { return nil }
