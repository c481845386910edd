package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone    = "Asia/Seoul"
	configPathEnv      = "NEWS_COLLECTOR_CONFIG"
	naverClientIDEnv   = "NAVER_CLIENT_ID"
	naverSecretEnv     = "NAVER_CLIENT_SECRET"
	archiveDSNEnv      = "ARCHIVE_DSN"
	telegramTokenEnv   = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv  = "TELEGRAM_CHAT_ID"
	defaultOutputPath  = "data/news.json"
	defaultNaverAPIURL = "https://openapi.naver.com/v1/search/news.json"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Source        SourceConfig       `yaml:"source"`
	Naver         NaverConfig        `yaml:"naver"`
	Aggregation   AggregationConfig  `yaml:"aggregation"`
	Filter        FilterConfig       `yaml:"filter"`
	Archive       ArchiveConfig      `yaml:"archive"`
	Notifications NotificationConfig `yaml:"notifications"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Tickers       []TickerConfig     `yaml:"tickers"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SourceConfig selects the search provider and its fetch behavior.
type SourceConfig struct {
	Provider           string `yaml:"provider"`
	QueryLimit         int    `yaml:"queryLimit"`
	PerTickerCap       int    `yaml:"perTickerCap"`
	RequestTimeoutSec  int    `yaml:"requestTimeoutSec"`
	CourtesyIntervalMS int    `yaml:"courtesyIntervalMs"`
}

// NaverConfig carries Naver open-API credentials and endpoint.
type NaverConfig struct {
	Endpoint     string `yaml:"endpoint"`
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
}

// AggregationConfig defines corpus retention and output location.
type AggregationConfig struct {
	RetentionDays int            `yaml:"retentionDays"`
	OutputPath    string         `yaml:"outputPath"`
	Timezone      string         `yaml:"timezone"`
	location      *time.Location `yaml:"-"`
}

// Location resolves the aggregation timezone string to a time.Location.
func (a AggregationConfig) Location() *time.Location {
	if a.location != nil {
		return a.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// FilterConfig carries the tunable keyword and domain tables. These are
// the main quality lever and stay hot-swappable via the YAML file.
type FilterConfig struct {
	AllowedDomains  []string `yaml:"allowedDomains"`
	BlockedDomains  []string `yaml:"blockedDomains"`
	ExcludeKeywords []string `yaml:"excludeKeywords"`
	FinanceKeywords []string `yaml:"financeKeywords"`
}

// ArchiveConfig enables the optional Postgres run archive.
type ArchiveConfig struct {
	DSN string `yaml:"dsn"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// SchedulerConfig switches between one-shot and recurring operation.
// Enabled is a pointer so a file-level `enabled: false` is
// distinguishable from the key being absent.
type SchedulerConfig struct {
	Enabled        *bool  `yaml:"enabled"`
	CronExpression string `yaml:"cronExpression"`
}

// IsEnabled reports whether the recurring driver should run. Absent
// means disabled.
func (s SchedulerConfig) IsEnabled() bool {
	return s.Enabled != nil && *s.Enabled
}

// TickerConfig binds one tracked symbol to its search query string.
type TickerConfig struct {
	Symbol string `yaml:"symbol"`
	Query  string `yaml:"query"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Tickers) == 0 {
		cfg.Tickers = defaultTickers()
	}

	return cfg
}

// Validate rejects configurations that cannot produce a run. Missing
// credentials abort before any fetch or state mutation.
func (c Config) Validate() error {
	if c.Naver.ClientID == "" || c.Naver.ClientSecret == "" {
		return fmt.Errorf("naver credentials missing: set %s and %s", naverClientIDEnv, naverSecretEnv)
	}
	if c.Aggregation.RetentionDays <= 0 {
		return fmt.Errorf("retentionDays must be positive, got %d", c.Aggregation.RetentionDays)
	}
	if c.Aggregation.OutputPath == "" {
		return fmt.Errorf("outputPath must not be empty")
	}
	if len(c.Tickers) == 0 {
		return fmt.Errorf("ticker table is empty")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(naverClientIDEnv); v != "" {
		c.Naver.ClientID = v
	}

	if v := os.Getenv(naverSecretEnv); v != "" {
		c.Naver.ClientSecret = v
	}

	if v := os.Getenv(archiveDSNEnv); v != "" {
		c.Archive.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Aggregation.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Aggregation.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Source.Provider != "" {
		base.Source.Provider = override.Source.Provider
	}
	if override.Source.QueryLimit > 0 {
		base.Source.QueryLimit = override.Source.QueryLimit
	}
	if override.Source.PerTickerCap > 0 {
		base.Source.PerTickerCap = override.Source.PerTickerCap
	}
	if override.Source.RequestTimeoutSec > 0 {
		base.Source.RequestTimeoutSec = override.Source.RequestTimeoutSec
	}
	if override.Source.CourtesyIntervalMS > 0 {
		base.Source.CourtesyIntervalMS = override.Source.CourtesyIntervalMS
	}

	if override.Naver.Endpoint != "" {
		base.Naver.Endpoint = override.Naver.Endpoint
	}
	if override.Naver.ClientID != "" {
		base.Naver.ClientID = override.Naver.ClientID
	}
	if override.Naver.ClientSecret != "" {
		base.Naver.ClientSecret = override.Naver.ClientSecret
	}

	if override.Aggregation.RetentionDays > 0 {
		base.Aggregation.RetentionDays = override.Aggregation.RetentionDays
	}
	if override.Aggregation.OutputPath != "" {
		base.Aggregation.OutputPath = override.Aggregation.OutputPath
	}
	if override.Aggregation.Timezone != "" {
		base.Aggregation.Timezone = override.Aggregation.Timezone
	}

	if len(override.Filter.AllowedDomains) > 0 {
		base.Filter.AllowedDomains = override.Filter.AllowedDomains
	}
	if len(override.Filter.BlockedDomains) > 0 {
		base.Filter.BlockedDomains = override.Filter.BlockedDomains
	}
	if len(override.Filter.ExcludeKeywords) > 0 {
		base.Filter.ExcludeKeywords = override.Filter.ExcludeKeywords
	}
	if len(override.Filter.FinanceKeywords) > 0 {
		base.Filter.FinanceKeywords = override.Filter.FinanceKeywords
	}

	if override.Archive.DSN != "" {
		base.Archive = override.Archive
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Scheduler.Enabled != nil {
		base.Scheduler.Enabled = override.Scheduler.Enabled
	}
	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}

	if len(override.Tickers) > 0 {
		base.Tickers = override.Tickers
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Source: SourceConfig{
			Provider:           "naver",
			QueryLimit:         20,
			PerTickerCap:       10,
			RequestTimeoutSec:  10,
			CourtesyIntervalMS: 50,
		},
		Naver: NaverConfig{Endpoint: defaultNaverAPIURL},
		Aggregation: AggregationConfig{
			RetentionDays: 90,
			OutputPath:    defaultOutputPath,
			Timezone:      defaultTimezone,
			location:      tz,
		},
		Filter: FilterConfig{
			AllowedDomains:  defaultAllowedDomains(),
			ExcludeKeywords: defaultExcludeKeywords(),
			FinanceKeywords: defaultFinanceKeywords(),
		},
		Scheduler: SchedulerConfig{CronExpression: "0 6 * * *"},
		Tickers:   defaultTickers(),
	}
}
