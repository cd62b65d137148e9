package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"autopostr/internal/ai"
	"autopostr/internal/config"
	"autopostr/internal/content"
	"autopostr/internal/model"
	"autopostr/internal/publish"
	"autopostr/internal/redisclient"
	"autopostr/internal/storage"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// openStore connects to redis; callers must Close the returned client.
func openStore(ctx context.Context, cfg config.Config) (*storage.RedisStore, *redis.Client, error) {
	rdb, err := redisclient.Connect(ctx, cfg.Redis, 2*time.Second)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewRedisStore(rdb), rdb, nil
}

func newGenerator(cfg config.Config) (*content.Generator, error) {
	g := content.NewGenerator()
	d, err := time.ParseDuration(cfg.Generator.Delay)
	if err != nil {
		return nil, fmt.Errorf("generator.delay: %w", err)
	}
	g.Delay = d
	return g, nil
}

// newModerator returns ai.Nop when moderation is off.
func newModerator(cfg config.Config) ai.Moderator {
	if !cfg.ModerationEnabled() {
		return ai.Nop{}
	}
	return ai.NewOpenAIModerator(ai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.ModerationModel,
	})
}

func newPublisher(cfg config.Config) (*publish.Client, error) {
	if !cfg.PublisherEnabled() {
		return nil, fmt.Errorf("publisher config missing: set publisher.base_url and publisher.api_key")
	}
	tm, err := time.ParseDuration(cfg.Publisher.Timeout)
	if err != nil {
		return nil, fmt.Errorf("publisher.timeout: %w", err)
	}
	return publish.New(cfg.Publisher.BaseURL, cfg.Publisher.APIKey, tm).
		WithPaths(cfg.Publisher.CreatePath, cfg.Publisher.PublishPath), nil
}

// loadBrandFile reads a brand profile from a YAML file.
func loadBrandFile(path string) (*model.BrandProfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bp model.BrandProfile
	if err := yaml.Unmarshal(b, &bp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(bp.Name) == "" {
		return nil, fmt.Errorf("%s: brand name is required", path)
	}
	return &bp, nil
}

// resolveBrand returns the brand from --brand-file, or from redis by --brand, or nil.
func resolveBrand(ctx context.Context, cfg config.Config, name, file string) (*model.BrandProfile, error) {
	if file != "" {
		return loadBrandFile(file)
	}
	if name == "" {
		return nil, nil
	}
	store, rdb, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer rdb.Close()
	b, err := store.GetBrand(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("brand %q: %w", name, err)
	}
	return b, nil
}

// parseLocalTime parses "YYYY-MM-DD HH:MM" in the local zone.
func parseLocalTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}
