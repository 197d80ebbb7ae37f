package anthropic

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quotecraft/rfq-analyzer/internal/common"
)

// Config for the Anthropic client. The whole provider is an optional path:
// an absent key disables it without affecting anything else.
type Config struct {
	APIKey    string
	BaseURL   string        // default https://api.anthropic.com
	Model     string        // default common.DefaultAnthropicModel
	Timeout   time.Duration // http client timeout
	MaxTokens int           // messages API requires an explicit output cap
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = common.DefaultAnthropicModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
