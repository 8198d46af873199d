package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvCSV(t *testing.T) {
	t.Setenv("TEST_CSV", " http://a.test , ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvCSV("TEST_CSV", nil))

	t.Setenv("TEST_CSV", " , ")
	assert.Equal(t, []string{"*"}, getEnvCSV("TEST_CSV", []string{"*"}))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CHATBOT_PORT", "ENV", "NODE_ENV", "LLM_PROVIDER", "GEMINI_API_KEY", "API_KEY",
		"GEMINI_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL", "LLM_TIMEOUT_SECONDS", "SUPPORT_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model())
	assert.Equal(t, 20*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "support@masterstudent.in", cfg.SupportEmail)
	assert.False(t, cfg.Debug())
	assert.Empty(t, cfg.APIKey())
	require.NoError(t, cfg.Validate())
}

func TestLoad_LegacyNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATBOT_PORT", "5050")
	t.Setenv("NODE_ENV", "development")
	t.Setenv("API_KEY", "generic-key")

	cfg := Load()

	assert.Equal(t, "5050", cfg.Port)
	assert.True(t, cfg.Debug())
	assert.Equal(t, "generic-key", cfg.APIKey())
}

func TestLoad_PrefersSpecificNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("CHATBOT_PORT", "5050")
	t.Setenv("API_KEY", "generic-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "gemini-key", cfg.APIKey())
}

func TestLoad_OpenAIProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("OPENAI_MODEL", "llama3.1:8b")

	cfg := Load()

	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "oa-key", cfg.APIKey())
	assert.Equal(t, "llama3.1:8b", cfg.Model())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:         "5000",
			LLMProvider:  ProviderGemini,
			LLMTimeout:   time.Second,
			SupportEmail: "support@example.com",
		}
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.LLMProvider = "claude"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Port = "http"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.LLMTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.SupportEmail = " "
	assert.Error(t, cfg.Validate())
}
