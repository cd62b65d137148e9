package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"autopostr/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a brand or post does not exist.
var ErrNotFound = errors.New("not found")

type RedisStore struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, now: time.Now}
}

const (
	brandSetKey   = "autopostr:brands"
	historyKey    = "autopostr:history"
	postsAllKey   = "autopostr:posts:all"
	postsQueueKey = "autopostr:posts:queue"
)

func brandKey(slug string) string {
	return fmt.Sprintf("autopostr:brand:%s", slug)
}

func postKey(id string) string {
	return fmt.Sprintf("autopostr:post:%s", id)
}

// SaveBrand stores or replaces a brand profile, keyed by the slug of its name.
func (s *RedisStore) SaveBrand(ctx context.Context, b model.BrandProfile) error {
	slug := model.Slug(b.Name)
	if slug == "" {
		return fmt.Errorf("brand name %q has no usable characters", b.Name)
	}
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, brandKey(slug), data, 0)
		p.SAdd(ctx, brandSetKey, slug)
		return nil
	})
	return err
}

// GetBrand loads a brand by name or slug.
func (s *RedisStore) GetBrand(ctx context.Context, name string) (*model.BrandProfile, error) {
	data, err := s.rdb.Get(ctx, brandKey(model.Slug(name))).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var b model.BrandProfile
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBrands returns all stored brands ordered by name.
func (s *RedisStore) ListBrands(ctx context.Context) ([]model.BrandProfile, error) {
	slugs, err := s.rdb.SMembers(ctx, brandSetKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.BrandProfile, 0, len(slugs))
	for _, slug := range slugs {
		b, err := s.GetBrand(ctx, slug)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteBrand removes a brand profile.
func (s *RedisStore) DeleteBrand(ctx context.Context, name string) error {
	slug := model.Slug(name)
	n, err := s.rdb.Del(ctx, brandKey(slug)).Result()
	if err != nil {
		return err
	}
	if err := s.rdb.SRem(ctx, brandSetKey, slug).Err(); err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddHistory prepends a generation to the history list and trims it to limit entries.
func (s *RedisStore) AddHistory(ctx context.Context, e model.HistoryEntry, limit int) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = 100
	}
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, historyKey, data)
		p.LTrim(ctx, historyKey, 0, int64(limit-1))
		return nil
	})
	return err
}

// RecentHistory returns up to n entries, newest first.
func (s *RedisStore) RecentHistory(ctx context.Context, n int) ([]model.HistoryEntry, error) {
	if n <= 0 {
		return []model.HistoryEntry{}, nil
	}
	raw, err := s.rdb.LRange(ctx, historyKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.HistoryEntry, 0, len(raw))
	for _, r := range raw {
		var e model.HistoryEntry
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// SavePost creates or replaces a post. A missing ID is assigned and timestamps are maintained.
// Posts in the scheduled status are queued by their ScheduledAt time.
func (s *RedisStore) SavePost(ctx context.Context, p *model.ScheduledPost) error {
	now := s.now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.Status == "" {
		p.Status = model.StatusScheduled
	}
	p.UpdatedAt = now
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	score := float64(p.ScheduledAt.Unix())
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, postKey(p.ID), data, 0)
		pipe.ZAdd(ctx, postsAllKey, redis.Z{Score: score, Member: p.ID})
		if p.Status == model.StatusScheduled {
			pipe.ZAdd(ctx, postsQueueKey, redis.Z{Score: score, Member: p.ID})
		} else {
			pipe.ZRem(ctx, postsQueueKey, p.ID)
		}
		return nil
	})
	return err
}

// SchedulePost stores a new post in the scheduled status.
func (s *RedisStore) SchedulePost(ctx context.Context, p *model.ScheduledPost) error {
	p.ID = ""
	p.CreatedAt = time.Time{}
	p.Status = model.StatusScheduled
	return s.SavePost(ctx, p)
}

// UpdatePost replaces an existing post; it fails with ErrNotFound for unknown IDs.
func (s *RedisStore) UpdatePost(ctx context.Context, p *model.ScheduledPost) error {
	old, err := s.GetPost(ctx, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = old.CreatedAt
	return s.SavePost(ctx, p)
}

// GetPost loads one post by ID.
func (s *RedisStore) GetPost(ctx context.Context, id string) (*model.ScheduledPost, error) {
	data, err := s.rdb.Get(ctx, postKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p model.ScheduledPost
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePost removes a post and its queue entries.
func (s *RedisStore) DeletePost(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, postKey(id))
		p.ZRem(ctx, postsAllKey, id)
		p.ZRem(ctx, postsQueueKey, id)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPosts returns posts scheduled within [from, to], earliest first.
// A zero bound leaves that side open.
func (s *RedisStore) ListPosts(ctx context.Context, from, to time.Time) ([]model.ScheduledPost, error) {
	rng := &redis.ZRangeBy{Min: "-inf", Max: "+inf"}
	if !from.IsZero() {
		rng.Min = strconv.FormatInt(from.Unix(), 10)
	}
	if !to.IsZero() {
		rng.Max = strconv.FormatInt(to.Unix(), 10)
	}
	ids, err := s.rdb.ZRangeByScore(ctx, postsAllKey, rng).Result()
	if err != nil {
		return nil, err
	}
	return s.loadPosts(ctx, ids)
}

// DuePosts returns up to limit scheduled posts whose time is at or before now.
func (s *RedisStore) DuePosts(ctx context.Context, now time.Time, limit int) ([]model.ScheduledPost, error) {
	if limit <= 0 {
		limit = 20
	}
	ids, err := s.rdb.ZRangeByScore(ctx, postsQueueKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}
	return s.loadPosts(ctx, ids)
}

// MarkPublished sets the post status to published and dequeues it.
func (s *RedisStore) MarkPublished(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusPublished, "")
}

// MarkFailed sets the post status to failed, records the reason in Notes and dequeues it.
func (s *RedisStore) MarkFailed(ctx context.Context, id, reason string) error {
	return s.setStatus(ctx, id, model.StatusFailed, reason)
}

func (s *RedisStore) setStatus(ctx context.Context, id, status, notes string) error {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	p.Status = status
	if notes != "" {
		p.Notes = notes
	}
	return s.SavePost(ctx, p)
}

func (s *RedisStore) loadPosts(ctx context.Context, ids []string) ([]model.ScheduledPost, error) {
	out := make([]model.ScheduledPost, 0, len(ids))
	for _, id := range ids {
		p, err := s.GetPost(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// stale index entry
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
