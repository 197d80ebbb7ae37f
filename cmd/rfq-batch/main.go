package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/entity"
	"github.com/quotecraft/rfq-analyzer/internal/export"
	"github.com/quotecraft/rfq-analyzer/internal/extract"
	"github.com/quotecraft/rfq-analyzer/internal/ingest"
	"github.com/quotecraft/rfq-analyzer/internal/llm"
	"github.com/quotecraft/rfq-analyzer/internal/llm/anthropic"
	"github.com/quotecraft/rfq-analyzer/internal/llm/openai"
	"github.com/quotecraft/rfq-analyzer/internal/pipeline"
	"github.com/quotecraft/rfq-analyzer/internal/session"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir          = flag.String("dir", "", "directory of drawing documents to analyze (required)")
		specFile     = flag.String("spec", "", "specification PDF to extract project data from")
		materialFile = flag.String("materials", "", "material database JSON file (defaults to the built-in sample)")
		analysisType = flag.String("type", "comprehensive", "analysis type: dimensions|materials|construction|complexity|comprehensive")
		providerStr  = flag.String("provider", "openai", "vision provider: openai|anthropic")
		out          = flag.String("out", "", "output report file path (optional, defaults to parent directory)")
		xlsxOut      = flag.String("xlsx", "", "output XLSX estimate path (optional)")
		concurrency  = flag.Int("concurrency", 1, "concurrent page analyses per document")
		demo         = flag.Bool("demo", false, "use the built-in sample specification instead of extracting one")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	provider, ok := constants.ParseProvider(*providerStr)
	if !ok {
		printError("Error: unknown --provider %q, use openai or anthropic\n", *providerStr)
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "rfq-report.txt")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	// Wire providers. Anthropic is optional; an absent key just disables it.
	invokers := map[constants.Provider]llm.Invoker{
		constants.ProviderOpenAI: openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		}, logger),
	}
	if common.HasKey(cfg.Anthropic.APIKey) {
		invokers[constants.ProviderAnthropic] = anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.Anthropic.APIKey,
			BaseURL:   cfg.Anthropic.BaseURL,
			Model:     cfg.Anthropic.Model,
			Timeout:   cfg.Anthropic.Timeout,
			MaxTokens: cfg.Anthropic.MaxTokens,
		}, logger)
	} else if provider == constants.ProviderAnthropic {
		logger.Error("ANTHROPIC_API_KEY is not configured")
		os.Exit(1)
	}

	extractor := extract.NewExtractor(extract.Config{
		Pdftoppm: cfg.Extract.Pdftoppm,
		DPI:      cfg.Extract.DPI,
		MaxPages: cfg.Extract.MaxPages,
	}, logger)

	processor := pipeline.NewProcessor(logger, extractor, invokers)
	processor.Concurrency = *concurrency
	processor.MaxTokens = cfg.OpenAI.MaxTokens

	sess := session.New()
	defer sess.Close()
	ctx = common.WithSessionID(ctx, sess.ID.String())

	// Resolve the project specification: extracted, or the built-in sample.
	var spec entity.SpecificationData
	switch {
	case *demo:
		spec = entity.DemoSpecification()
		sess.SetSpecification(spec)
		logger.Info("using sample specification", "project", spec.ProjectName)
	case *specFile != "":
		doc, err := ingest.LoadFile(*specFile)
		if err != nil {
			logger.Error("failed to load specification file", "error", err)
			os.Exit(1)
		}
		spec, err = processor.ExtractSpecification(ctx, sess, doc, "specification")
		if err != nil {
			logger.Error("failed to extract specification", "file", *specFile, "error", err)
			os.Exit(1)
		}
	default:
		printError("Error: either --spec or --demo is required\n")
		os.Exit(1)
	}

	materials := entity.DemoMaterialDatabase()
	if *materialFile != "" {
		raw, err := os.ReadFile(*materialFile)
		if err != nil {
			logger.Error("failed to read material database", "error", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(raw, &materials); err != nil {
			logger.Error("failed to parse material database", "error", err)
			os.Exit(1)
		}
	}
	sess.SetMaterials(materials)

	// Ingest and analyze drawings
	logger.Info("starting ingestion", "dir", *dir)
	docs, err := ingest.ScanDirectory(*dir, logger)
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		printError("Error: no supported documents found in %s\n", *dir)
		os.Exit(1)
	}

	failures := processor.AnalyzeBatch(ctx, sess, docs, *analysisType, provider)

	// Generate the estimate from whatever succeeded
	est, err := processor.GenerateEstimate(ctx, sess, spec, materials)
	if err != nil {
		logger.Error("failed to generate estimate", "error", err)
		os.Exit(1)
	}
	sess.SaveQuote()

	// Write the text report
	results := sess.Results()
	report := export.BuildBatchReport(results) +
		"\n" + export.BuildEstimateReport(est) +
		"\n" + export.BuildBatchSummary(results, failures)
	if err := os.WriteFile(*out, []byte(report), 0644); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	// Optional XLSX estimate
	if *xlsxOut != "" {
		buf, err := export.EstimateXLSX(est)
		if err != nil {
			logger.Error("failed to build XLSX estimate", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, buf.Bytes(), 0644); err != nil {
			logger.Error("failed to write XLSX estimate", "error", err)
			os.Exit(1)
		}
	}

	analyzed := 0
	for _, r := range results {
		if r.AnalysisType != "" && r.Err == nil {
			analyzed++
		}
	}
	logger.Info("batch processing complete",
		"documents", len(docs),
		"pages_analyzed", analyzed,
		"failures", len(failures),
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents: %d\n", len(docs))
	fmt.Printf("- Pages analyzed: %d\n", analyzed)
	fmt.Printf("- Failed documents: %d\n", len(failures))
	fmt.Printf("- Total cost: %s\n", est.TotalCost)
	fmt.Printf("- Output: %s\n", *out)
}
