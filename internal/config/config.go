package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported generation providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	LogFile         string
	LogMaxSizeMB    int
	LogMaxBackups   int
	LogMaxAgeDays   int
	CORSAllowedOrig []string

	Provider      string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string

	ProviderTimeout       time.Duration
	ProviderMaxConcurrent int
	ProviderRatePerSec    float64

	GenerationRetryBudget int
	MaxItemsPerSet        int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:     envOr("ADDR", ":8080"),
		DBPath:   envOr("DB_PATH", "file:lecturedeck.db"),
		LogLevel: envOr("LOG_LEVEL", "INFO"),

		LogFile:         envOr("LOG_FILE", ""),
		LogMaxSizeMB:    envIntOr("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups:   envIntOr("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays:   envIntOr("LOG_MAX_AGE_DAYS", 28),
		CORSAllowedOrig: envListOr("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		Provider:      strings.ToLower(envOr("PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOr("GEMINI_MODEL", "gemini-1.5-flash"),

		ProviderTimeout:       envDurationOr("PROVIDER_TIMEOUT", 60*time.Second),
		ProviderMaxConcurrent: envIntOr("PROVIDER_MAX_CONCURRENT", 4),
		ProviderRatePerSec:    envFloatOr("PROVIDER_RATE_PER_SEC", 2),

		GenerationRetryBudget: envIntOr("GENERATION_RETRY_BUDGET", 1),
		MaxItemsPerSet:        envIntOr("MAX_ITEMS_PER_SET", 50),
	}
}

// Validate checks the configuration for values the server cannot run with.
// Missing provider credentials are not an error here: generation calls report them.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %s", c.ProviderTimeout)
	}
	if c.ProviderMaxConcurrent < 1 {
		return fmt.Errorf("PROVIDER_MAX_CONCURRENT must be at least 1, got %d", c.ProviderMaxConcurrent)
	}
	if c.ProviderRatePerSec <= 0 {
		return fmt.Errorf("PROVIDER_RATE_PER_SEC must be positive, got %v", c.ProviderRatePerSec)
	}
	if c.GenerationRetryBudget < 0 {
		return fmt.Errorf("GENERATION_RETRY_BUDGET cannot be negative, got %d", c.GenerationRetryBudget)
	}
	if c.MaxItemsPerSet < 1 {
		return fmt.Errorf("MAX_ITEMS_PER_SET must be at least 1, got %d", c.MaxItemsPerSet)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
