package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test. t.Setenv registers the
// restore; the explicit unset gives true not-set semantics.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// clearGameplanEnv pins every variable Load reads so ambient values cannot
// leak into assertions.
func clearGameplanEnv(t *testing.T) {
	t.Helper()
	unsetEnv(t,
		"GAMEPLAN_MODEL", "GAMEPLAN_ENDPOINT", "GAMEPLAN_TIMEOUT_MS",
		"GAMEPLAN_MAX_RETRIES", "GAMEPLAN_LOG_CALLS", "GAMEPLAN_ADDR",
	)
}

func TestLoad_MissingAPIKeyFailsFast(t *testing.T) {
	clearGameplanEnv(t)
	unsetEnv(t, "OPENAI_API_KEY")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
	assert.ErrorContains(t, err, ".env")
}

func TestLoad_Defaults(t *testing.T) {
	clearGameplanEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "https://api.openai.com", cfg.Endpoint)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	clearGameplanEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GAMEPLAN_MODEL", "gpt-4o")
	t.Setenv("GAMEPLAN_ENDPOINT", "http://localhost:8089")
	t.Setenv("GAMEPLAN_TIMEOUT_MS", "5000")
	t.Setenv("GAMEPLAN_MAX_RETRIES", "3")
	t.Setenv("GAMEPLAN_LOG_CALLS", "true")
	t.Setenv("GAMEPLAN_ADDR", ":9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "http://localhost:8089", cfg.Endpoint)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_RejectsBadNumbers(t *testing.T) {
	clearGameplanEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	t.Setenv("GAMEPLAN_TIMEOUT_MS", "0")
	_, err := Load()
	assert.ErrorContains(t, err, "GAMEPLAN_TIMEOUT_MS")

	unsetEnv(t, "GAMEPLAN_TIMEOUT_MS")
	t.Setenv("GAMEPLAN_MAX_RETRIES", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "GAMEPLAN_MAX_RETRIES")
}

func TestConfig_LLMMapping(t *testing.T) {
	clearGameplanEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GAMEPLAN_MODEL", "gpt-4o")
	t.Setenv("GAMEPLAN_TIMEOUT_MS", "12000")

	cfg, err := Load()
	require.NoError(t, err)

	lc := cfg.LLM()
	assert.Equal(t, "sk-test", lc.APIKey)
	assert.Equal(t, "gpt-4o", lc.Model)
	assert.Equal(t, "https://api.openai.com", lc.Endpoint)
	assert.Equal(t, 12000, lc.TimeoutMs)
	assert.Equal(t, 1, lc.MaxRetries)
}
