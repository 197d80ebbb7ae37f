package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/export"
	"github.com/quotecraft/rfq-analyzer/internal/extract"
	"github.com/quotecraft/rfq-analyzer/internal/ingest"
	"github.com/quotecraft/rfq-analyzer/internal/llm"
	"github.com/quotecraft/rfq-analyzer/internal/llm/anthropic"
	"github.com/quotecraft/rfq-analyzer/internal/llm/openai"
	"github.com/quotecraft/rfq-analyzer/internal/pipeline"
	"github.com/quotecraft/rfq-analyzer/internal/session"
)

func main() {
	var (
		file         = flag.String("file", "", "drawing PDF or image to analyze (required)")
		analysisType = flag.String("type", "comprehensive", "analysis type: dimensions|materials|construction|complexity|comprehensive")
		providerStr  = flag.String("provider", "openai", "vision provider: openai|anthropic")
		out          = flag.String("out", "", "report file path (default: stdout)")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		os.Exit(1)
	}
	provider, ok := constants.ParseProvider(*providerStr)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown --provider %q, use openai or anthropic\n", *providerStr)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	invokers := map[constants.Provider]llm.Invoker{
		constants.ProviderOpenAI: openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		}, logger),
		constants.ProviderAnthropic: anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.Anthropic.APIKey,
			BaseURL:   cfg.Anthropic.BaseURL,
			Model:     cfg.Anthropic.Model,
			Timeout:   cfg.Anthropic.Timeout,
			MaxTokens: cfg.Anthropic.MaxTokens,
		}, logger),
	}

	extractor := extract.NewExtractor(extract.Config{
		Pdftoppm: cfg.Extract.Pdftoppm,
		DPI:      cfg.Extract.DPI,
		MaxPages: cfg.Extract.MaxPages,
	}, logger)

	processor := pipeline.NewProcessor(logger, extractor, invokers)
	processor.MaxTokens = cfg.OpenAI.MaxTokens

	sess := session.New()
	defer sess.Close()
	ctx = common.WithSessionID(ctx, sess.ID.String())

	doc, err := ingest.LoadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := processor.AnalyzeDrawing(ctx, sess, doc, *analysisType, provider); err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	report := export.BuildBatchReport(sess.Results())
	if *out == "" {
		fmt.Println(report)
		return
	}
	if err := os.WriteFile(*out, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report written to %s\n", *out)
}
