package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"autopostr/internal/ai"
	"autopostr/internal/config"
	"autopostr/internal/content"
	"autopostr/internal/model"
)

func TestNewModeratorDisabledIsNop(t *testing.T) {
	var cfg config.Config
	cfg.FillDefaults()
	mod := newModerator(cfg)
	if _, ok := mod.(ai.Nop); !ok {
		t.Fatalf("newModerator = %T, want ai.Nop", mod)
	}
	if err := mod.Check(context.Background(), "anything"); err != nil {
		t.Errorf("Nop.Check = %v", err)
	}

	cfg.OpenAI.Moderate = true
	cfg.OpenAI.APIKey = "sk-test"
	if _, ok := newModerator(cfg).(*ai.OpenAIModerator); !ok {
		t.Errorf("enabled moderation should use OpenAI, got %T", newModerator(cfg))
	}
}

func TestNewPublisherUsesConfiguredPaths(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"id":"r1"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var cfg config.Config
	cfg.Publisher = config.PublisherConfig{
		BaseURL:     srv.URL,
		APIKey:      "k",
		CreatePath:  "/drafts",
		PublishPath: "/drafts/%s/go",
	}
	cfg.FillDefaults()
	pub, err := newPublisher(cfg)
	if err != nil {
		t.Fatalf("newPublisher: %v", err)
	}
	post := model.ScheduledPost{ID: "a", Title: "Sale", Caption: "Big news!", ScheduledAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
	if _, err := pub.PublishScheduled(context.Background(), post); err != nil {
		t.Fatalf("PublishScheduled: %v", err)
	}
	if len(calls) != 2 || calls[0] != "POST /drafts" || calls[1] != "PUT /drafts/r1/go" {
		t.Errorf("calls = %v", calls)
	}
}

func TestGenerateValidatesBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "redis:\n  addr: 127.0.0.1:1\n" +
		"openai:\n  api_key: sk-test\n  moderate: true\n  base_url: " + srv.URL + "/v1\n" +
		"generator:\n  delay: 1ms\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, desc := range []string{"", "asdf"} {
		rootCmd.SetArgs([]string{"--config", path, "generate", "--brand", "acme", desc})
		rootCmd.SetOut(io.Discard)
		rootCmd.SetErr(io.Discard)
		err := rootCmd.Execute()
		if !errors.Is(err, content.ErrInvalidInput) {
			t.Errorf("generate %q = %v, want invalid input", desc, err)
		}
	}
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if hits != 0 {
		t.Errorf("moderation API called %d times for invalid input", hits)
	}
}
