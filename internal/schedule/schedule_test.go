package schedule

import (
	"testing"
	"time"

	"autopostr/internal/model"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestParseFrequency(t *testing.T) {
	for in, want := range map[string]Frequency{
		"":         None,
		"none":     None,
		"Daily":    Daily,
		" weekly ": Weekly,
		"BIWEEKLY": Biweekly,
		"monthly":  Monthly,
	} {
		got, err := ParseFrequency(in)
		if err != nil || got != want {
			t.Errorf("ParseFrequency(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFrequency("hourly"); err == nil {
		t.Error("expected error for hourly")
	}
}

func TestNext(t *testing.T) {
	start := date(2026, time.January, 31, 9)
	tests := []struct {
		f    Frequency
		want time.Time
	}{
		{Daily, date(2026, time.February, 1, 9)},
		{Weekly, date(2026, time.February, 7, 9)},
		{Biweekly, date(2026, time.February, 14, 9)},
		{Monthly, date(2026, time.February, 28, 9)},
		{None, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.f), func(t *testing.T) {
			if got := Next(start, tt.f); !got.Equal(tt.want) {
				t.Fatalf("Next(%s) = %v, want %v", tt.f, got, tt.want)
			}
		})
	}
	if got := Next(date(2028, time.January, 30, 9), Monthly); !got.Equal(date(2028, time.February, 29, 9)) {
		t.Fatalf("leap year clamp = %v", got)
	}
}

func TestOccurrencesMonthlyKeepsAnchorDay(t *testing.T) {
	got := Occurrences(date(2026, time.January, 31, 10), Monthly, 4)
	want := []time.Time{
		date(2026, time.January, 31, 10),
		date(2026, time.February, 28, 10),
		date(2026, time.March, 31, 10),
		date(2026, time.April, 30, 10),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOccurrences(t *testing.T) {
	start := date(2026, time.March, 2, 8)
	if got := Occurrences(start, Weekly, 3); len(got) != 3 || !got[2].Equal(date(2026, time.March, 16, 8)) {
		t.Fatalf("weekly = %v", got)
	}
	if got := Occurrences(start, None, 5); len(got) != 1 || !got[0].Equal(start) {
		t.Fatalf("none = %v", got)
	}
	if got := Occurrences(start, Daily, 0); got != nil {
		t.Fatalf("count 0 = %v", got)
	}
}

func TestSuggestSkipsWeekendsAndPast(t *testing.T) {
	// Friday 2026-10-16 at 12:00; linkedin best hour 8 has already passed that day.
	from := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	got := Suggest(from, "linkedin", 3)
	want := []time.Time{
		date(2026, time.October, 19, 8),
		date(2026, time.October, 20, 8),
		date(2026, time.October, 21, 8),
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}

	// instagram at 11 is still ahead on the same Friday morning.
	morning := time.Date(2026, time.October, 16, 7, 30, 0, 0, time.UTC)
	if got := Suggest(morning, "Instagram", 1); !got[0].Equal(date(2026, time.October, 16, 11)) {
		t.Errorf("same-day slot = %v", got[0])
	}
	if BestHour("mastodon") != DefaultHour {
		t.Error("unknown platform should use the default hour")
	}
}

func TestExpand(t *testing.T) {
	tmpl := model.ScheduledPost{Title: "Sale", ScheduledAt: date(2026, time.March, 2, 9), Hashtags: []string{"#Sale"}}

	single := Expand(tmpl, Weekly, 1)
	if len(single) != 1 || single[0].Recurrence != "weekly" {
		t.Fatalf("single = %+v", single)
	}
	if none := Expand(tmpl, None, 3); len(none) != 1 || none[0].Recurrence != "" {
		t.Fatalf("none = %+v", none)
	}

	many := Expand(tmpl, Daily, 3)
	if len(many) != 3 {
		t.Fatalf("len = %d", len(many))
	}
	if !many[2].ScheduledAt.Equal(date(2026, time.March, 4, 9)) || many[2].Recurrence != "" {
		t.Errorf("third = %+v", many[2])
	}
	many[0].Hashtags[0] = "#Changed"
	if many[1].Hashtags[0] != "#Sale" {
		t.Error("expanded posts share hashtag storage")
	}
}
