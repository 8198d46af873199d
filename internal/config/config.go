package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// LLM
	LLMProvider   string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	LLMTimeout    time.Duration

	// Support
	SupportEmail string

	// SMTP
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Redis (optional ticket sink)
	RedisURL string

	// CORS
	CORSAllowOrigins []string
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", getEnvOrDefault("CHATBOT_PORT", "5000")),
		Env:              getEnvOrDefault("ENV", getEnvOrDefault("NODE_ENV", "production")),
		LLMProvider:      strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:     getEnvOrDefault("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:     getEnvOrDefault("OPENAI_API_KEY", os.Getenv("API_KEY")),
		OpenAIBaseURL:    getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:      getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		LLMTimeout:       time.Duration(getEnvAsIntOrDefault("LLM_TIMEOUT_SECONDS", 20)) * time.Second,
		SupportEmail:     getEnvOrDefault("SUPPORT_EMAIL", "support@masterstudent.in"),
		SMTPHost:         getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:         getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:         getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:         getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:         getEnvOrDefault("SMTP_FROM", "noreply@masterstudent.in"),
		RedisURL:         getEnvOrDefault("REDIS_URL", ""),
		CORSAllowOrigins: getEnvCSV("CORS_ALLOW_ORIGINS", []string{"*"}),
	}

	return cfg
}

// Debug reports whether the service runs in development mode.
func (c *Config) Debug() bool {
	return c.Env == "development"
}

// APIKey returns the key for the selected provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model id for the selected provider.
func (c *Config) Model() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.LLMProvider)
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT_SECONDS must be positive")
	}
	if strings.TrimSpace(c.SupportEmail) == "" {
		return fmt.Errorf("SUPPORT_EMAIL must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvCSV(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
