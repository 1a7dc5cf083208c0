package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "5000"
	DefaultProvider = "openai"
)

// Config holds every runtime setting read from the environment.
type Config struct {
	Port     string
	GinMode  string
	LogMode  string
	LogLevel string

	// Provider selects the completion backend: "openai", "anthropic" or "gemini".
	Provider  string
	OpenAI    ProviderConfig
	Anthropic ProviderConfig
	Gemini    ProviderConfig

	// UpstreamTimeout bounds a single completion call. Zero keeps the
	// HTTP client's own behavior.
	UpstreamTimeout time.Duration

	AllowOrigins []string
}

// ProviderConfig is the credential and model for one completion backend.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Load reads a .env file if present and builds a Config from the environment.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// a missing .env is normal in containers
		_ = godotenv.Load(f)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := Config{
		Port:     getenv("PORT", DefaultPort),
		GinMode:  os.Getenv("GIN_MODE"),
		LogMode:  getenv("LOG_MODE", "dev"),
		LogLevel: os.Getenv("LOG_LEVEL"),
		Provider: strings.ToLower(getenv("LLM_PROVIDER", DefaultProvider)),
		OpenAI: ProviderConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getenv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		Anthropic: ProviderConfig{
			APIKey:  os.Getenv("ANTHROPIC_API_KEY"),
			Model:   getenv("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
			BaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
		},
		Gemini: ProviderConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		AllowOrigins: splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
	if v := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.UpstreamTimeout = d
		}
	}
	return cfg
}

// Selected returns the settings of the configured provider.
func (c Config) Selected() ProviderConfig {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic
	case "gemini":
		return c.Gemini
	default:
		return c.OpenAI
	}
}

// APIKey returns the credential of the configured provider.
func (c Config) APIKey() string { return c.Selected().APIKey }

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
