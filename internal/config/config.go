package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the space explorer service
type Config struct {
	// Server configuration
	Port        string `env:"PORT,default=7860"`
	CurrentUser string `env:"USER,default=Guest"`

	// NASA configuration
	NASAAPIKey string `env:"NASA_API_KEY,default=DEMO_KEY"`

	// Hosted language model (any OpenAI-compatible chat completion endpoint)
	LLMAPIKey  string        `env:"LLM_API_KEY"`
	LLMBaseURL string        `env:"LLM_BASE_URL,default=https://api.openai.com/v1"`
	LLMModel   string        `env:"LLM_MODEL,default=gpt-4o-mini"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT,default=60s"`

	// Outbound HTTP
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=5s"`

	// Component limits
	SearchLimit         int `env:"SEARCH_LIMIT,default=5"`
	WeatherLookbackDays int `env:"WEATHER_LOOKBACK_DAYS,default=7"`
	ChatRatePerMin      int `env:"CHAT_RATE_PER_MIN,default=20"`
	ChatMaxInputChars   int `env:"CHAT_MAX_INPUT_CHARS,default=2000"`

	// Data source URLs
	APODURL               string `env:"APOD_URL,default=https://api.nasa.gov/planetary/apod"`
	ImageSearchURL        string `env:"IMAGE_SEARCH_URL,default=https://images-api.nasa.gov/search"`
	IOTDFeedURL           string `env:"IOTD_FEED_URL,default=https://www.nasa.gov/feeds/iotd-feed"`
	DONKINotificationsURL string `env:"DONKI_NOTIFICATIONS_URL,default=https://api.nasa.gov/DONKI/notifications"`
	DONKICMEURL           string `env:"DONKI_CME_URL,default=https://api.nasa.gov/DONKI/CME"`
	NOAAKIndexURL         string `env:"NOAA_K_INDEX_URL,default=https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json"`

	// Offline demo with embedded fixtures
	MockupMode bool `env:"MOCKUP_MODE,default=false"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=auto"`
}

// DotEnvFile is loaded before the environment is processed, when present
const DotEnvFile = ".env"

// Load loads configuration from a .env file and environment variables
func Load(ctx context.Context) (*Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith loads configuration from the given lookuper and validates it
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from path without overriding the real environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks that required settings are present and limits are sane
func (c *Config) Validate() error {
	if !c.MockupMode && c.LLMAPIKey == "" {
		return errors.New("LLM_API_KEY is required unless MOCKUP_MODE is enabled")
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive, got %d", c.SearchLimit)
	}
	if c.WeatherLookbackDays <= 0 {
		return fmt.Errorf("WEATHER_LOOKBACK_DAYS must be positive, got %d", c.WeatherLookbackDays)
	}
	if c.ChatRatePerMin <= 0 {
		return fmt.Errorf("CHAT_RATE_PER_MIN must be positive, got %d", c.ChatRatePerMin)
	}
	if c.ChatMaxInputChars <= 0 {
		return fmt.Errorf("CHAT_MAX_INPUT_CHARS must be positive, got %d", c.ChatMaxInputChars)
	}
	if c.HTTPTimeout <= 0 || c.LLMTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT and LLM_TIMEOUT must be positive")
	}
	return nil
}
