package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"autopostr/internal/export"
	"autopostr/internal/model"
	"autopostr/internal/publish"
	"autopostr/internal/schedule"
)

// PostStore is the part of storage the scheduler uses.
type PostStore interface {
	DuePosts(ctx context.Context, now time.Time, limit int) ([]model.ScheduledPost, error)
	MarkPublished(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
	SchedulePost(ctx context.Context, p *model.ScheduledPost) error
}

// Scheduler publishes due posts: each one is exported as Markdown under
// OutputDir/<platform>/, sent to Publisher when set, and re-queued when recurring.
type Scheduler struct {
	Store     PostStore
	Publisher publish.Publisher // optional
	OutputDir string
	Interval  time.Duration
	BatchSize int
	Now       func() time.Time
}

func (w *Scheduler) Name() string { return "scheduler" }

func (w *Scheduler) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = time.Minute
	}
	// run immediately then on interval
	w.RunOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce handles one batch of due posts and returns how many were published.
func (w *Scheduler) RunOnce(ctx context.Context) int {
	now := time.Now()
	if w.Now != nil {
		now = w.Now()
	}
	due, err := w.Store.DuePosts(ctx, now, w.BatchSize)
	if err != nil {
		slog.Error("scheduler: load due posts error", "error", err)
		return 0
	}
	published := 0
	for _, p := range due {
		if ctx.Err() != nil {
			return published
		}
		if err := w.process(ctx, p); err != nil {
			slog.Error("scheduler: post failed", "id", p.ID, "error", err)
			if err := w.Store.MarkFailed(ctx, p.ID, err.Error()); err != nil {
				slog.Error("scheduler: mark failed error", "id", p.ID, "error", err)
			}
		} else {
			published++
			if err := w.Store.MarkPublished(ctx, p.ID); err != nil {
				slog.Error("scheduler: mark published error", "id", p.ID, "error", err)
			}
		}
		w.requeue(ctx, p, now)
	}
	if len(due) > 0 {
		slog.Info("scheduler: batch done", "due", len(due), "published", published)
	}
	return published
}

func (w *Scheduler) process(ctx context.Context, p model.ScheduledPost) error {
	title := p.Title
	if title == "" {
		title = "post"
	}
	d := export.Data{
		Meta: model.PostMeta{
			Title:     title,
			Slug:      export.Stamp(model.Slug(title), p.ScheduledAt, p.ID),
			Datetime:  p.ScheduledAt.UTC().Format(export.DatetimeLayout),
			Hashtags:  p.Hashtags,
			Platforms: p.Platforms,
		},
		Caption: p.Caption,
	}
	path, err := export.WriteFile(filepath.Join(w.OutputDir, p.PrimaryPlatform()), d)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	slog.Info("scheduler: post exported", "id", p.ID, "path", path)
	if w.Publisher == nil {
		return nil
	}
	remoteID, err := w.Publisher.PublishScheduled(ctx, p)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	slog.Info("scheduler: post published", "id", p.ID, "remote_id", remoteID)
	return nil
}

// requeue schedules the next occurrence of a recurring post that falls after now.
// Occurrences missed while the scheduler was down are skipped, not replayed.
func (w *Scheduler) requeue(ctx context.Context, p model.ScheduledPost, now time.Time) {
	f, err := schedule.ParseFrequency(p.Recurrence)
	if err != nil || f == schedule.None {
		return
	}
	at := schedule.Next(p.ScheduledAt, f)
	skipped := 0
	for !at.After(now) {
		at = schedule.Next(at, f)
		skipped++
	}
	if skipped > 0 {
		slog.Warn("scheduler: skipped missed occurrences", "id", p.ID, "skipped", skipped)
	}
	next := p
	next.ScheduledAt = at
	next.Notes = ""
	next.UpdatedAt = time.Time{}
	if err := w.Store.SchedulePost(ctx, &next); err != nil {
		slog.Error("scheduler: requeue error", "id", p.ID, "error", err)
		return
	}
	slog.Info("scheduler: next occurrence queued", "id", next.ID, "at", next.ScheduledAt)
}
