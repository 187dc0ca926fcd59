package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// BibleConfig describes the remote chapter-text service.
type BibleConfig struct {
	BaseURL     string        `yaml:"baseURL" validate:"required|fullUrl"`
	Translation string        `yaml:"translation"`
	Timeout     time.Duration `yaml:"timeout"`
}

// QuotesConfig describes the remote motivational-quote service.
type QuotesConfig struct {
	BaseURL         string        `yaml:"baseURL" validate:"required|fullUrl"`
	Tags            string        `yaml:"tags"`
	Timeout         time.Duration `yaml:"timeout"`
	FallbackMessage string        `yaml:"fallbackMessage"`
}

type TrackerConfig struct {
	DefaultGoal   int           `yaml:"defaultGoal" validate:"required|int|min:1"`
	HistoryCap    int           `yaml:"historyCap" validate:"required|int|min:1"`
	HistoryLimit  int           `yaml:"historyLimit"`
	Timezone      string        `yaml:"timezone"`
	ResetTokenTTL time.Duration `yaml:"resetTokenTTL"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Bible       BibleConfig   `yaml:"bible"`
	Quotes      QuotesConfig  `yaml:"quotes"`
	Tracker     TrackerConfig `yaml:"tracker"`
}

// Location resolves the configured timezone. An empty value or "Local" uses
// the host zone.
func (t TrackerConfig) Location() (*time.Location, error) {
	if t.Timezone == "" || t.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(t.Timezone)
}
