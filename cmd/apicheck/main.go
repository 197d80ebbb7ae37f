package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/llm"
	"github.com/quotecraft/rfq-analyzer/internal/llm/anthropic"
	"github.com/quotecraft/rfq-analyzer/internal/llm/openai"
)

// apicheck reports which provider credentials are configured, and with
// --ping issues one minimal request per configured provider to confirm the
// credential is actually accepted.
func main() {
	ping := flag.Bool("ping", false, "send a test request to each configured provider")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg := common.LoadConfig()

	status := func(key string) string {
		if common.HasKey(key) {
			return "configured"
		}
		return "missing"
	}
	fmt.Printf("OPENAI_API_KEY:    %s (model %s)\n", status(cfg.OpenAI.APIKey), cfg.OpenAI.Model)
	fmt.Printf("ANTHROPIC_API_KEY: %s (model %s)\n", status(cfg.Anthropic.APIKey), cfg.Anthropic.Model)

	if !*ping {
		return
	}

	ctx := context.Background()
	failed := false

	if common.HasKey(cfg.OpenAI.APIKey) {
		client := openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		}, logger)
		failed = pingProvider(ctx, "openai", client) || failed
	}
	if common.HasKey(cfg.Anthropic.APIKey) {
		client := anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.Anthropic.APIKey,
			BaseURL:   cfg.Anthropic.BaseURL,
			Model:     cfg.Anthropic.Model,
			Timeout:   cfg.Anthropic.Timeout,
			MaxTokens: 16,
		}, logger)
		failed = pingProvider(ctx, "anthropic", client) || failed
	}

	if failed {
		os.Exit(1)
	}
}

func pingProvider(ctx context.Context, name string, inv llm.Invoker) bool {
	res, err := inv.Invoke(ctx, llm.Request{
		User:      "Reply with the single word: ok",
		MaxTokens: 16,
	})
	if err != nil {
		fmt.Printf("%s: FAILED (%v)\n", name, err)
		return true
	}
	fmt.Printf("%s: ok (%s)\n", name, res.Model)
	return false
}
