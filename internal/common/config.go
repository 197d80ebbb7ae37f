package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default model identifiers. One identifier serves both JSON-extraction and
// vision calls; OPENAI_MODEL overrides it for both.
const (
	DefaultOpenAIModel    = "gpt-4.1"
	DefaultAnthropicModel = "claude-3-sonnet-20240229"
)

// Config holds all application configuration
type Config struct {
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Extract   ExtractConfig
}

// OpenAIConfig holds OpenAI-related configuration
type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int // output cap for free-text drawing analysis
}

// AnthropicConfig holds Anthropic-related configuration. The whole provider
// is an optional path; an absent key just disables it.
type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// ExtractConfig holds document-extraction configuration
type ExtractConfig struct {
	Pdftoppm string // binary name or absolute path
	DPI      int    // rasterization resolution
	MaxPages int    // 0 = no limit
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is honored first, the way operators configure the
// hosted deployment.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:     getEnv("OPENAI_MODEL", DefaultOpenAIModel),
			Timeout:   getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			MaxTokens: getEnvAsInt("OPENAI_MAX_TOKENS", 1000),
		},
		Anthropic: AnthropicConfig{
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:   getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Model:     getEnv("ANTHROPIC_MODEL", DefaultAnthropicModel),
			Timeout:   getEnvAsDuration("ANTHROPIC_TIMEOUT", 60*time.Second),
			MaxTokens: getEnvAsInt("ANTHROPIC_MAX_TOKENS", 1000),
		},
		Extract: ExtractConfig{
			Pdftoppm: getEnv("PDFTOPPM", "pdftoppm"),
			DPI:      getEnvAsInt("RFQ_DPI", 150),
			MaxPages: getEnvAsInt("RFQ_MAX_PAGES", 0),
		},
	}
}

// HasKey reports whether a credential is usable: present and non-blank after
// trimming. A whitespace-only value is treated as absent.
func HasKey(key string) bool {
	return strings.TrimSpace(key) != ""
}

// Validate checks that model-dependent work can start at all. Called before
// any extraction pass so a missing credential fails fast.
func (c *Config) Validate() error {
	if !HasKey(c.OpenAI.APIKey) {
		return NewError(ErrMissingCredential, "OPENAI_API_KEY is required", nil)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
