package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"readtrack/internal/structures"
	"strings"
	"time"
)

const DefaultFallbackMessage = "Continue firme na sua jornada de fé!"

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8090)
	v.SetDefault("persistence.saveInterval", 5*time.Second)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.ttl", 24*time.Hour)
	v.SetDefault("bible.baseURL", "https://bible-api.com")
	v.SetDefault("bible.translation", "almeida")
	v.SetDefault("bible.timeout", 10*time.Second)
	v.SetDefault("quotes.baseURL", "https://api.quotable.io")
	v.SetDefault("quotes.tags", "inspirational")
	v.SetDefault("quotes.timeout", 10*time.Second)
	v.SetDefault("quotes.fallbackMessage", DefaultFallbackMessage)
	v.SetDefault("tracker.defaultGoal", 3)
	v.SetDefault("tracker.historyCap", 100)
	v.SetDefault("tracker.historyLimit", 20)
	v.SetDefault("tracker.timezone", "Local")
	v.SetDefault("tracker.resetTokenTTL", 2*time.Minute)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setConfigDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("logger.level", "READTRACK_LOG_LEVEL")
	_ = v.BindEnv("persistence.saveInterval", "READTRACK_SAVE_INTERVAL")
	_ = v.BindEnv("cache.enabled", "READTRACK_CACHE_ENABLED")
	_ = v.BindEnv("bible.baseURL", "READTRACK_BIBLE_URL")
	_ = v.BindEnv("quotes.baseURL", "READTRACK_QUOTES_URL")
	_ = v.BindEnv("tracker.timezone", "READTRACK_TIMEZONE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ReadTrack"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
