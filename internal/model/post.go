package model

import "time"

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Platforms supported for scheduling and previews.
var Platforms = []string{"instagram", "twitter", "linkedin", "facebook"}

// ScheduledPost is a caption queued for publishing at a given time.
type ScheduledPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Caption     string    `json:"caption"`
	Hashtags    []string  `json:"hashtags"`
	Platforms   []string  `json:"platforms"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"` // none, daily, weekly, biweekly, monthly
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PrimaryPlatform returns the first platform, defaulting to instagram.
func (p ScheduledPost) PrimaryPlatform() string {
	if len(p.Platforms) == 0 || p.Platforms[0] == "" {
		return "instagram"
	}
	return p.Platforms[0]
}

// IsPlatform reports whether name is a supported platform.
func IsPlatform(name string) bool {
	for _, p := range Platforms {
		if p == name {
			return true
		}
	}
	return false
}

// PostMeta is the frontmatter of an exported post.
type PostMeta struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Datetime    string   `yaml:"datetime"`
	Tone        ToneType `yaml:"tone,omitempty"`
	Brand       string   `yaml:"brand,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Hashtags    []string `yaml:"hashtags,omitempty"`
	Platforms   []string `yaml:"platforms,omitempty"`
}
