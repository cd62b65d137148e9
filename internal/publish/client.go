package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a minimal HTTP client for a post publishing API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	// Endpoints (optional overrides)
	createPath  string
	publishPath string // Template: "/posts/%s/publish"
}

// New creates a new publishing client.
// baseURL should be like "https://api.example.com/v1" (no trailing slash).
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		http:        &http.Client{Timeout: timeout},
		createPath:  "/posts",
		publishPath: "/posts/%s/publish",
	}
}

// WithPaths optionally overrides endpoints.
func (c *Client) WithPaths(createPath, publishPath string) *Client {
	c2 := *c
	if strings.TrimSpace(createPath) != "" {
		c2.createPath = createPath
	}
	if strings.TrimSpace(publishPath) != "" {
		c2.publishPath = publishPath
	}
	return &c2
}

// CreatePost creates a post from params and returns its ID.
func (c *Client) CreatePost(ctx context.Context, params map[string]any) (string, error) {
	if c == nil {
		return "", errors.New("nil publish client")
	}
	body, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	resp, err := c.do(ctx, http.MethodPost, c.baseURL+c.createPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create post failed: %w", err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	// id may be at the top level or under "data", string or number
	if id := idOf(out); id != "" {
		return id, nil
	}
	if data, ok := out["data"].(map[string]any); ok {
		if id := idOf(data); id != "" {
			return id, nil
		}
	}
	return "", errors.New("create post: missing id in response")
}

// PublishPost triggers publishing for a post by ID.
func (c *Client) PublishPost(ctx context.Context, id string) error {
	if c == nil {
		return errors.New("nil publish client")
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("empty post id")
	}
	resp, err := c.do(ctx, http.MethodPut, c.baseURL+fmt.Sprintf(c.publishPath, id), http.NoBody)
	if err != nil {
		return fmt.Errorf("publish post failed: %w", err)
	}
	resp.Body.Close()
	return nil
}

// do sends an authenticated JSON request; non-2xx responses become errors carrying the body.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("status=%d body=%s", resp.StatusCode, string(b))
	}
	return resp, nil
}

func idOf(m map[string]any) string {
	switch v := m["id"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	}
	return ""
}
