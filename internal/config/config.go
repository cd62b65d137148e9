package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GeneratorConfig tunes the content generator.
type GeneratorConfig struct {
	Delay        string `mapstructure:"delay"`         // duration string, e.g., "1500ms"
	HistoryLimit int    `mapstructure:"history_limit"` // generations kept in history
}

// OpenAIConfig enables the optional moderation gate.
type OpenAIConfig struct {
	APIKey          string `mapstructure:"api_key"`
	BaseURL         string `mapstructure:"base_url"`
	ModerationModel string `mapstructure:"moderation_model"`
	Moderate        bool   `mapstructure:"moderate"`
}

// ExportConfig controls markdown export.
type ExportConfig struct {
	OutputDir     string `mapstructure:"output_dir"`
	TitleTemplate string `mapstructure:"title_template"` // supports {.CurrentDate} and {.Tone}
}

// PublisherConfig points at the publishing API used for due posts.
type PublisherConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	Timeout     string `mapstructure:"timeout"`
	CreatePath  string `mapstructure:"create_path"`  // default "/posts"
	PublishPath string `mapstructure:"publish_path"` // default "/posts/%s/publish"
}

// SchedulerConfig controls the due-post worker.
type SchedulerConfig struct {
	Interval  string `mapstructure:"interval"`
	BatchSize int    `mapstructure:"batch_size"`
}

// PreviewConfig controls platform preview images.
type PreviewConfig struct {
	OutputDir   string `mapstructure:"output_dir"`
	WebPQuality int    `mapstructure:"webp_quality"`
}

// APIConfig controls the HTTP API.
type APIConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config is the top-level configuration structure.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Generator GeneratorConfig `mapstructure:"generator"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Export    ExportConfig    `mapstructure:"export"`
	Publisher PublisherConfig `mapstructure:"publisher"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Preview   PreviewConfig   `mapstructure:"preview"`
	API       APIConfig       `mapstructure:"api"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Generator.Delay == "" {
		c.Generator.Delay = "1500ms"
	}
	if c.Generator.HistoryLimit == 0 {
		c.Generator.HistoryLimit = 100
	}
	if c.OpenAI.ModerationModel == "" {
		c.OpenAI.ModerationModel = "text-moderation-latest"
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "./out"
	}
	if c.Export.TitleTemplate == "" {
		c.Export.TitleTemplate = "{.Tone} post {.CurrentDate}"
	}
	if c.Publisher.Timeout == "" {
		c.Publisher.Timeout = "20s"
	}
	if c.Scheduler.Interval == "" {
		c.Scheduler.Interval = "1m"
	}
	if c.Scheduler.BatchSize == 0 {
		c.Scheduler.BatchSize = 20
	}
	if c.Preview.OutputDir == "" {
		c.Preview.OutputDir = "./out/previews"
	}
	if c.Preview.WebPQuality <= 0 || c.Preview.WebPQuality > 100 {
		c.Preview.WebPQuality = 85
	}
	if c.API.Addr == "" {
		c.API.Addr = ":8080"
	}
}

// ModerationEnabled reports whether descriptions go through the moderation gate.
func (c Config) ModerationEnabled() bool {
	return c.OpenAI.Moderate && c.OpenAI.APIKey != ""
}

// PublisherEnabled reports whether due posts are sent to the publishing API.
func (c Config) PublisherEnabled() bool {
	return c.Publisher.BaseURL != "" && c.Publisher.APIKey != ""
}
