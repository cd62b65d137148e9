// Package schedule computes recurring post dates and suggested posting slots.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"autopostr/internal/model"
)

// Frequency is how often a scheduled post repeats.
type Frequency string

const (
	None     Frequency = "none"
	Daily    Frequency = "daily"
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

// ParseFrequency accepts the frequency names case-insensitively; "" means None.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(strings.ToLower(strings.TrimSpace(s))); f {
	case "", None:
		return None, nil
	case Daily, Weekly, Biweekly, Monthly:
		return f, nil
	default:
		return None, fmt.Errorf("unknown frequency %q (want none, daily, weekly, biweekly or monthly)", s)
	}
}

// Next returns the occurrence after t, or the zero time for None.
// Monthly keeps the day of month, clamped to the last day of shorter months.
func Next(t time.Time, f Frequency) time.Time {
	switch f {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Biweekly:
		return t.AddDate(0, 0, 14)
	case Monthly:
		return addMonthsClamped(t, 1)
	default:
		return time.Time{}
	}
}

// Occurrences returns count dates starting at start (inclusive).
// With None only start is returned.
func Occurrences(start time.Time, f Frequency, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	if f == None {
		return []time.Time{start}
	}
	out := make([]time.Time, 0, count)
	t := start
	for i := 0; i < count; i++ {
		if f == Monthly {
			// anchor on the original day so Jan 31 -> Feb 28 -> Mar 31
			t = addMonthsClamped(start, i)
		}
		out = append(out, t)
		if f != Monthly {
			t = Next(t, f)
		}
	}
	return out
}

// Expand turns a post template into the posts to store. With count > 1 each
// occurrence becomes its own one-off post; otherwise a single post carries the
// recurrence so the scheduler re-queues it after publishing.
func Expand(p model.ScheduledPost, f Frequency, count int) []model.ScheduledPost {
	if count <= 1 || f == None {
		p.Recurrence = string(f)
		if f == None {
			p.Recurrence = ""
		}
		return []model.ScheduledPost{p}
	}
	out := make([]model.ScheduledPost, 0, count)
	for _, t := range Occurrences(p.ScheduledAt, f, count) {
		q := p
		q.ScheduledAt = t
		q.Recurrence = ""
		q.Hashtags = append([]string(nil), p.Hashtags...)
		q.Platforms = append([]string(nil), p.Platforms...)
		out = append(out, q)
	}
	return out
}

func addMonthsClamped(t time.Time, months int) time.Time {
	day := t.Day()
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// bestHour is the local hour with the highest engagement per platform.
var bestHour = map[string]int{
	"instagram": 11,
	"twitter":   9,
	"linkedin":  8,
	"facebook":  13,
}

// DefaultHour is used for platforms without an entry in the table.
const DefaultHour = 9

// BestHour returns the suggested posting hour for a platform.
func BestHour(platform string) int {
	if h, ok := bestHour[strings.ToLower(platform)]; ok {
		return h
	}
	return DefaultHour
}

// Suggest returns n weekday slots strictly after from, at the platform's best hour
// in from's location.
func Suggest(from time.Time, platform string, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	hour := BestHour(platform)
	out := make([]time.Time, 0, n)
	day := time.Date(from.Year(), from.Month(), from.Day(), hour, 0, 0, 0, from.Location())
	for len(out) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday && day.After(from) {
			out = append(out, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}
