package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName        string `mapstructure:"app_name"`
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	HTTPAddr       string `mapstructure:"http_addr"`
	NewsAPIKey     string `mapstructure:"news_api_key"`
	SourcesFile    string `mapstructure:"sources_file"`
	SourceID       string `mapstructure:"source_id"`
	PublishersFile string `mapstructure:"publishers_file"`

	FetchTimeoutSeconds int64         `mapstructure:"fetch_timeout_seconds"`
	FetchTimeout        time.Duration `mapstructure:"-"`
	ToastMillis         int64         `mapstructure:"toast_millis"`
	ToastDuration       time.Duration `mapstructure:"-"`

	SessionTTLSeconds     int64         `mapstructure:"session_ttl_seconds"`
	SessionCleanupSeconds int64         `mapstructure:"session_cleanup_interval_seconds"`
	SessionTTL            time.Duration `mapstructure:"-"`
	SessionCleanup        time.Duration `mapstructure:"-"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	ThemeTTLSeconds        int64         `mapstructure:"theme_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	ThemeTTL               time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Redacted returns a copy safe to log: the API key is masked.
func (c Config) Redacted() Config {
	if c.NewsAPIKey != "" {
		c.NewsAPIKey = "***"
	}
	return c
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "akhbar-tech")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("news_api_key", "")
	v.SetDefault("sources_file", "./configs/sources.yaml")
	v.SetDefault("source_id", "")
	v.SetDefault("publishers_file", "")
	v.SetDefault("fetch_timeout_seconds", 15)
	v.SetDefault("toast_millis", 2000)
	v.SetDefault("session_ttl_seconds", int64((2*time.Hour)/time.Second))
	v.SetDefault("session_cleanup_interval_seconds", int64((5*time.Minute)/time.Second))
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/theme.db")
	v.SetDefault("theme_ttl_seconds", int64((365*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.NewsAPIKey = strings.TrimSpace(c.NewsAPIKey)
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("invalid http_addr (must not be empty)")
	}

	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid fetch_timeout_seconds (must be positive seconds)")
	}
	c.FetchTimeout = time.Duration(c.FetchTimeoutSeconds) * time.Second

	if c.ToastMillis <= 0 {
		return fmt.Errorf("invalid toast_millis (must be positive milliseconds)")
	}
	c.ToastDuration = time.Duration(c.ToastMillis) * time.Millisecond

	if c.SessionTTLSeconds <= 0 {
		return fmt.Errorf("invalid session_ttl_seconds (must be positive seconds)")
	}
	if c.SessionCleanupSeconds <= 0 {
		return fmt.Errorf("invalid session_cleanup_interval_seconds (must be positive seconds)")
	}
	c.SessionTTL = time.Duration(c.SessionTTLSeconds) * time.Second
	c.SessionCleanup = time.Duration(c.SessionCleanupSeconds) * time.Second

	if c.ThemeTTLSeconds <= 0 {
		return fmt.Errorf("invalid theme_ttl_seconds (must be positive seconds)")
	}
	if c.StorageCleanupSeconds <= 0 {
		return fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	c.ThemeTTL = time.Duration(c.ThemeTTLSeconds) * time.Second
	c.StorageCleanupInterval = time.Duration(c.StorageCleanupSeconds) * time.Second

	return nil
}
