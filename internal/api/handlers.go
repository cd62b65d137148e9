package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"autopostr/internal/ai"
	"autopostr/internal/content"
	"autopostr/internal/model"
	"autopostr/internal/preview"
	"autopostr/internal/schedule"
	"autopostr/internal/storage"

	"github.com/go-chi/chi/v5"
)

// Store is the persistence the API needs.
type Store interface {
	SaveBrand(ctx context.Context, b model.BrandProfile) error
	GetBrand(ctx context.Context, name string) (*model.BrandProfile, error)
	ListBrands(ctx context.Context) ([]model.BrandProfile, error)
	DeleteBrand(ctx context.Context, name string) error
	AddHistory(ctx context.Context, e model.HistoryEntry, limit int) error
	RecentHistory(ctx context.Context, n int) ([]model.HistoryEntry, error)
	SchedulePost(ctx context.Context, p *model.ScheduledPost) error
	GetPost(ctx context.Context, id string) (*model.ScheduledPost, error)
	UpdatePost(ctx context.Context, p *model.ScheduledPost) error
	ListPosts(ctx context.Context, from, to time.Time) ([]model.ScheduledPost, error)
	DeletePost(ctx context.Context, id string) error
}

// Handlers serves the JSON API.
type Handlers struct {
	Generator    *content.Generator
	Store        Store
	Moderator    ai.Moderator // ai.Nop when moderation is off
	HistoryLimit int
}

type generateRequest struct {
	Description  string              `json:"description"`
	Brand        string              `json:"brand,omitempty"`
	BrandProfile *model.BrandProfile `json:"brand_profile,omitempty"`
}

// Generate handles POST /api/generate.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decode(w, r, &req) {
		return
	}
	if err := content.Validate(req.Description); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	brand, ok := h.resolveBrand(w, r, req.Brand, req.BrandProfile)
	if !ok {
		return
	}
	if err := h.Moderator.Check(r.Context(), req.Description); err != nil {
		if errors.Is(err, ai.ErrFlagged) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("api: moderation error", "error", err)
		writeError(w, http.StatusBadGateway, "moderation unavailable")
		return
	}
	gc, err := h.Generator.Generate(r.Context(), req.Description, brand)
	if err != nil {
		if errors.Is(err, content.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// client went away during the delay
		slog.Warn("api: generate aborted", "error", err)
		return
	}
	entry := model.HistoryEntry{Description: req.Description, Content: *gc}
	if brand != nil {
		entry.BrandName = brand.Name
	}
	if err := h.Store.AddHistory(r.Context(), entry, h.HistoryLimit); err != nil {
		slog.Error("api: add history error", "error", err)
	}
	writeJSON(w, http.StatusOK, gc)
}

// Analyze handles POST /api/analyze.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decode(w, r, &req) {
		return
	}
	if err := content.Validate(req.Description); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	brand, ok := h.resolveBrand(w, r, req.Brand, req.BrandProfile)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, content.Analyze(req.Description, brand))
}

func (h *Handlers) resolveBrand(w http.ResponseWriter, r *http.Request, name string, inline *model.BrandProfile) (*model.BrandProfile, bool) {
	if inline != nil {
		return inline, true
	}
	if strings.TrimSpace(name) == "" {
		return nil, true
	}
	b, err := h.Store.GetBrand(r.Context(), name)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "brand not found")
		return nil, false
	}
	if err != nil {
		internalError(w, "get brand", err)
		return nil, false
	}
	return b, true
}

// History handles GET /api/history?n=.
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	n := 20
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	entries, err := h.Store.RecentHistory(r.Context(), n)
	if err != nil {
		internalError(w, "history", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListBrands handles GET /api/brands.
func (h *Handlers) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Store.ListBrands(r.Context())
	if err != nil {
		internalError(w, "list brands", err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

// GetBrand handles GET /api/brands/{name}.
func (h *Handlers) GetBrand(w http.ResponseWriter, r *http.Request) {
	b, err := h.Store.GetBrand(r.Context(), chi.URLParam(r, "name"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	if err != nil {
		internalError(w, "get brand", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// PutBrand handles PUT /api/brands/{name}. The path name wins over the body.
func (h *Handlers) PutBrand(w http.ResponseWriter, r *http.Request) {
	var b model.BrandProfile
	if !decode(w, r, &b) {
		return
	}
	if name := chi.URLParam(r, "name"); model.Slug(b.Name) != model.Slug(name) {
		b.Name = name
	}
	if model.Slug(b.Name) == "" {
		writeError(w, http.StatusBadRequest, "brand name is required")
		return
	}
	if err := h.Store.SaveBrand(r.Context(), b); err != nil {
		internalError(w, "save brand", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// DeleteBrand handles DELETE /api/brands/{name}.
func (h *Handlers) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteBrand(r.Context(), chi.URLParam(r, "name"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	if err != nil {
		internalError(w, "delete brand", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type postRequest struct {
	Title       string    `json:"title"`
	Caption     string    `json:"caption"`
	Hashtags    []string  `json:"hashtags"`
	Platforms   []string  `json:"platforms"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Recurrence  string    `json:"recurrence"`
	Count       int       `json:"count"`
	Notes       string    `json:"notes"`
}

// ListPosts handles GET /api/posts?from=&to= (RFC 3339 bounds, both optional).
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	for key, dst := range map[string]*time.Time{"from": &from, "to": &to} {
		v := r.URL.Query().Get(key)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, key+" must be RFC 3339")
			return
		}
		*dst = t
	}
	posts, err := h.Store.ListPosts(r.Context(), from, to)
	if err != nil {
		internalError(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// check validates the fields shared by create and update and parses the recurrence.
func (req postRequest) check() (schedule.Frequency, error) {
	if strings.TrimSpace(req.Caption) == "" || req.ScheduledAt.IsZero() {
		return "", errors.New("caption and scheduled_at are required")
	}
	for _, p := range req.Platforms {
		if !model.IsPlatform(p) {
			return "", errors.New("unknown platform " + p)
		}
	}
	return schedule.ParseFrequency(req.Recurrence)
}

// CreatePosts handles POST /api/posts and returns the stored posts.
func (h *Handlers) CreatePosts(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(w, r, &req) {
		return
	}
	f, err := req.check()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tmpl := model.ScheduledPost{
		Title:       req.Title,
		Caption:     req.Caption,
		Hashtags:    req.Hashtags,
		Platforms:   req.Platforms,
		ScheduledAt: req.ScheduledAt.UTC(),
		Notes:       req.Notes,
	}
	posts := schedule.Expand(tmpl, f, req.Count)
	for i := range posts {
		if err := h.Store.SchedulePost(r.Context(), &posts[i]); err != nil {
			internalError(w, "schedule post", err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, posts)
}

// GetPost handles GET /api/posts/{id}.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetPost(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		internalError(w, "get post", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePost handles PUT /api/posts/{id}, a full edit of one post. Count is ignored.
// Moving a post in time, or editing a failed one, puts it back in the queue.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(w, r, &req) {
		return
	}
	f, err := req.check()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	old, err := h.Store.GetPost(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		internalError(w, "get post", err)
		return
	}
	p := *old
	p.Title = req.Title
	p.Caption = req.Caption
	p.Hashtags = req.Hashtags
	p.Platforms = req.Platforms
	p.ScheduledAt = req.ScheduledAt.UTC()
	p.Notes = req.Notes
	p = schedule.Expand(p, f, 1)[0]
	if !p.ScheduledAt.Equal(old.ScheduledAt) || p.Status == model.StatusFailed {
		p.Status = model.StatusScheduled
	}
	if err := h.Store.UpdatePost(r.Context(), &p); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		internalError(w, "update post", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePost handles DELETE /api/posts/{id}.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeletePost(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		internalError(w, "delete post", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Suggest handles GET /api/schedule/suggest?platform=&n=.
func (h *Handlers) Suggest(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = "instagram"
	}
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n < 1 {
		n = 5
	}
	writeJSON(w, http.StatusOK, schedule.Suggest(time.Now().UTC(), platform, n))
}

type previewRequest struct {
	Platform string   `json:"platform"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// Preview handles POST /api/preview.
func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, preview.Caption(req.Platform, req.Caption, req.Hashtags))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter, op string, err error) {
	slog.Error("api: "+op+" error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
