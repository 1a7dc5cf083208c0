package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-coach-backend/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LLM_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"UPSTREAM_TIMEOUT", "CORS_ALLOW_ORIGINS", "LOG_MODE", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.FromEnv()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, time.Duration(0), cfg.UpstreamTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Empty(t, cfg.APIKey())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("UPSTREAM_TIMEOUT", "15s")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, http://127.0.0.1:5173")

	cfg := config.FromEnv()
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.APIKey())
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:5173"}, cfg.AllowOrigins)
}

func TestFromEnv_BadTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	cfg := config.FromEnv()
	assert.Equal(t, time.Duration(0), cfg.UpstreamTimeout)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY=sk-from-file\nPORT=7000\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("PORT")
	})

	cfg := config.Load(path)
	assert.Equal(t, "sk-from-file", cfg.APIKey())
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	clearEnv(t)
	cfg := config.Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Equal(t, "5000", cfg.Port)
}
