package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"autopostr/internal/model"
)

type recorder struct {
	mu        sync.Mutex
	created   []map[string]any
	published []string
	createRes string
	failWith  int
}

func (r *recorder) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if got := req.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("Authorization = %q", got)
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.failWith != 0 {
			w.WriteHeader(r.failWith)
			_, _ = w.Write([]byte("nope"))
			return
		}
		switch {
		case req.Method == http.MethodPost && req.URL.Path == "/v1/posts":
			var body map[string]any
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				t.Errorf("decode: %v", err)
			}
			r.created = append(r.created, body)
			_, _ = w.Write([]byte(r.createRes))
		case req.Method == http.MethodPut && strings.HasSuffix(req.URL.Path, "/publish"):
			r.published = append(r.published, strings.TrimSuffix(strings.TrimPrefix(req.URL.Path, "/v1/posts/"), "/publish"))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", req.Method, req.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestCreatePostIDShapes(t *testing.T) {
	for _, body := range []string{`{"id":"p-1"}`, `{"id":42}`, `{"data":{"id":"p-1"}}`} {
		rec := &recorder{createRes: body}
		srv := httptest.NewServer(rec.handler(t))
		c := New(srv.URL+"/v1/", "key", time.Second)
		id, err := c.CreatePost(context.Background(), map[string]any{"title": "x"})
		srv.Close()
		if err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if id != "p-1" && id != "42" {
			t.Errorf("%s: id = %q", body, id)
		}
	}
}

func TestCreatePostMissingID(t *testing.T) {
	rec := &recorder{createRes: `{"ok":true}`}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()
	if _, err := New(srv.URL+"/v1", "key", 0).CreatePost(context.Background(), nil); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestNon2xx(t *testing.T) {
	rec := &recorder{failWith: http.StatusBadGateway}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()
	err := New(srv.URL+"/v1", "key", 0).PublishPost(context.Background(), "p-1")
	if err == nil || !strings.Contains(err.Error(), "status=502") || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("err = %v", err)
	}
}

func TestPublishScheduled(t *testing.T) {
	rec := &recorder{createRes: `{"id":"remote-7"}`}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	var pub Publisher = New(srv.URL+"/v1", "key", 0)
	id, err := pub.PublishScheduled(context.Background(), model.ScheduledPost{
		ID:          "abc",
		Title:       "Summer Sale",
		Caption:     "Big news!",
		Hashtags:    []string{"#Sale"},
		Platforms:   []string{"instagram"},
		ScheduledAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil || id != "remote-7" {
		t.Fatalf("PublishScheduled = %q, %v", id, err)
	}
	if len(rec.created) != 1 || len(rec.published) != 1 || rec.published[0] != "remote-7" {
		t.Fatalf("calls: created=%v published=%v", rec.created, rec.published)
	}
	got := rec.created[0]
	if got["content"] != "Big news!\n\n#Sale" || got["datetime"] != "2026-06-01T09:00:00Z" || got["slug"] != "summer-sale-abc" {
		t.Errorf("params = %v", got)
	}
}

func TestPublishMarkdownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.md")
	src := "---\ntitle: Casual post\ndatetime: 2026-10-19 09:30\n---\n\nBig news!\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{createRes: `{"data":{"id":"m-1"}}`}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	id, err := PublishMarkdownFile(context.Background(), New(srv.URL+"/v1", "key", 0), path)
	if err != nil || id != "m-1" {
		t.Fatalf("PublishMarkdownFile = %q, %v", id, err)
	}
	got := rec.created[0]
	if got["title"] != "Casual post" || got["datetime"] != "2026-10-19T09:30:00Z" || got["content"] != "\nBig news!\n" {
		t.Errorf("params = %v", got)
	}
}

func TestWithPaths(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		calls = append(calls, req.Method+" "+req.URL.Path)
		mu.Unlock()
		if req.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"data":{"id":"p1"}}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	base := New(srv.URL, "key", time.Second)
	c := base.WithPaths("/api/drafts", "/api/drafts/%s/release")
	id, err := c.CreatePost(context.Background(), map[string]any{"title": "t"})
	if err != nil || id != "p1" {
		t.Fatalf("CreatePost = %q, %v", id, err)
	}
	if err := c.PublishPost(context.Background(), id); err != nil {
		t.Fatalf("PublishPost: %v", err)
	}
	// blank overrides keep the defaults and the original client is untouched
	if err := base.WithPaths(" ", "").PublishPost(context.Background(), "p2"); err != nil {
		t.Fatalf("PublishPost: %v", err)
	}

	want := []string{"POST /api/drafts", "PUT /api/drafts/p1/release", "PUT /posts/p2/publish"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}
