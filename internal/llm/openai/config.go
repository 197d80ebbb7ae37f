package openai

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quotecraft/rfq-analyzer/internal/common"
)

// Config for the OpenAI client.
type Config struct {
	APIKey  string
	BaseURL string        // default https://api.openai.com/v1
	Model   string        // default common.DefaultOpenAIModel
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = common.DefaultOpenAIModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
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
