package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/infrastructure/scraper"
	"listingWatcherBot/internal/infrastructure/storage"
)

type Config struct {
	TelegramToken string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID        string `envconfig:"CHAT_ID" required:"true"`
	SearchURL     string `envconfig:"SEARCH_URL" required:"true"`

	Keyword        string `envconfig:"KEYWORD" default:"4090"`
	HTMLLimit      int    `envconfig:"HTML_LIMIT" default:"3"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"£"`

	FetchInterval int    `envconfig:"FETCH_INTERVAL" default:"20"`
	FetchJitter   int    `envconfig:"FETCH_JITTER" default:"5"`
	HTTPTimeout   int    `envconfig:"HTTP_TIMEOUT" default:"25"`
	UserAgent     string `envconfig:"USER_AGENT"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"json"`
	SeenFile    string `envconfig:"SEEN_FILE" default:"seen_ids.json"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"seen_ids.db"`
	SeenMax     int    `envconfig:"SEEN_MAX" default:"0"`

	NotifyFetchErrors bool `envconfig:"NOTIFY_FETCH_ERRORS" default:"false"`
	DisablePreview    bool `envconfig:"DISABLE_PREVIEW" default:"false"`
	MaxPermits        int  `envconfig:"MAX_PERMITS" default:"3"`
	RefillInterval    int  `envconfig:"REFILL_INTERVAL" default:"1"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Every returned error wraps entity.ErrConfig.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrConfig, err)
	}

	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.ChatID = strings.TrimSpace(cfg.ChatID)
	cfg.SearchURL = strings.TrimSpace(cfg.SearchURL)
	if cfg.UserAgent == "" {
		cfg.UserAgent = scraper.DefaultUserAgent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.ChatID == "" {
		missing = append(missing, "CHAT_ID")
	}
	if c.SearchURL == "" {
		missing = append(missing, "SEARCH_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required settings are empty: %s", entity.ErrConfig, strings.Join(missing, ", "))
	}

	if strings.TrimSpace(c.Keyword) == "" {
		return fmt.Errorf("%w: KEYWORD must not be empty", entity.ErrConfig)
	}
	if c.HTMLLimit <= 0 || c.FetchInterval <= 0 || c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: HTML_LIMIT, FETCH_INTERVAL and HTTP_TIMEOUT must be positive", entity.ErrConfig)
	}
	if c.FetchJitter < 0 || c.SeenMax < 0 {
		return fmt.Errorf("%w: FETCH_JITTER and SEEN_MAX must not be negative", entity.ErrConfig)
	}

	switch strings.ToLower(c.StoreDriver) {
	case storage.DriverJSON, storage.DriverSQLite, storage.DriverMemory:
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", entity.ErrConfig, c.StoreDriver)
	}

	return nil
}

func (c *Config) GetFetchInterval() time.Duration {
	return time.Duration(c.FetchInterval) * time.Second
}

func (c *Config) GetFetchJitter() time.Duration {
	return time.Duration(c.FetchJitter) * time.Second
}

func (c *Config) GetHTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) GetRefillInterval() time.Duration {
	return time.Duration(c.RefillInterval) * time.Second
}

func (c *Config) GetStorageConfig() storage.Config {
	return storage.Config{
		Driver:     c.StoreDriver,
		JSONPath:   c.SeenFile,
		SQLitePath: c.SQLitePath,
	}
}
