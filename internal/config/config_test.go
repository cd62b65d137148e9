package config

import "testing"

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	checks := map[string][2]string{
		"log level":       {c.App.LogLevel, "info"},
		"redis addr":      {c.Redis.Addr, "127.0.0.1:6379"},
		"delay":           {c.Generator.Delay, "1500ms"},
		"moderation":      {c.OpenAI.ModerationModel, "text-moderation-latest"},
		"export dir":      {c.Export.OutputDir, "./out"},
		"title template":  {c.Export.TitleTemplate, "{.Tone} post {.CurrentDate}"},
		"publish timeout": {c.Publisher.Timeout, "20s"},
		"interval":        {c.Scheduler.Interval, "1m"},
		"preview dir":     {c.Preview.OutputDir, "./out/previews"},
		"api addr":        {c.API.Addr, ":8080"},
	}
	for name, pair := range checks {
		if pair[0] != pair[1] {
			t.Errorf("%s = %q, want %q", name, pair[0], pair[1])
		}
	}
	if c.Generator.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want 100", c.Generator.HistoryLimit)
	}
	if c.Scheduler.BatchSize != 20 {
		t.Errorf("BatchSize = %d, want 20", c.Scheduler.BatchSize)
	}
	if c.Preview.WebPQuality != 85 {
		t.Errorf("WebPQuality = %d, want 85", c.Preview.WebPQuality)
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{
		App:       AppConfig{LogLevel: "debug"},
		Generator: GeneratorConfig{Delay: "0s", HistoryLimit: 5},
		Preview:   PreviewConfig{WebPQuality: 60},
	}
	c.FillDefaults()
	if c.App.LogLevel != "debug" || c.Generator.Delay != "0s" || c.Generator.HistoryLimit != 5 || c.Preview.WebPQuality != 60 {
		t.Errorf("explicit values overwritten: %+v", c)
	}
}

func TestFeatureToggles(t *testing.T) {
	c := Config{OpenAI: OpenAIConfig{Moderate: true}}
	if c.ModerationEnabled() {
		t.Error("moderation enabled without api key")
	}
	c.OpenAI.APIKey = "sk-test"
	if !c.ModerationEnabled() {
		t.Error("moderation should be enabled")
	}
	if c.PublisherEnabled() {
		t.Error("publisher enabled without base url")
	}
	c.Publisher = PublisherConfig{BaseURL: "https://example.com", APIKey: "k"}
	if !c.PublisherEnabled() {
		t.Error("publisher should be enabled")
	}
}
