package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/entity"
	"github.com/quotecraft/rfq-analyzer/internal/llm"
	"github.com/quotecraft/rfq-analyzer/internal/prompt"
	"github.com/quotecraft/rfq-analyzer/internal/session"
)

// DocumentExtractor is what the processor needs from the extract package.
type DocumentExtractor interface {
	ExtractText(ctx context.Context, pdfBytes []byte) (string, error)
	Rasterize(ctx context.Context, pdfBytes []byte) ([]entity.PageImage, error)
	DecodeImage(raw []byte) (entity.PageImage, error)
	EncodeJPEGBase64(p entity.PageImage) (string, []byte, error)
}

// Processor coordinates extract → prompt → invoke → store for each document.
// Each unit runs to completion before the next; Concurrency > 1 enables
// bounded page fan-out within a document, with results still flushed to the
// store in ordinal order.
type Processor struct {
	Logger      *slog.Logger
	Extractor   DocumentExtractor
	Invokers    map[constants.Provider]llm.Invoker
	Concurrency int
	MaxTokens   int // output cap for free-text drawing analysis
}

func NewProcessor(logger *slog.Logger, extractor DocumentExtractor, invokers map[constants.Provider]llm.Invoker) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:      logger,
		Extractor:   extractor,
		Invokers:    invokers,
		Concurrency: 1,
		MaxTokens:   1000,
	}
}

// invoker resolves a provider, failing fast before any extraction work when
// the provider is absent or has no credential.
func (p *Processor) invoker(provider constants.Provider) (llm.Invoker, error) {
	inv, ok := p.Invokers[provider]
	if !ok {
		return nil, common.NewError(common.ErrMissingCredential,
			string(provider)+" provider is not configured", nil)
	}
	if !inv.Configured() {
		return nil, common.NewError(common.ErrMissingCredential,
			string(provider)+" credential is not configured", nil)
	}
	return inv, nil
}

// ExtractSpecification runs text extraction plus mandated-JSON model
// extraction for a specification or drawing PDF. documentType tags the
// document kind in the prompt ("specification" or "drawing"). The parsed
// specification is stored on the session; the raw reply is appended to the
// result store.
func (p *Processor) ExtractSpecification(ctx context.Context, sess *session.Session, doc entity.UploadedDocument, documentType string) (entity.SpecificationData, error) {
	inv, err := p.invoker(constants.ProviderOpenAI)
	if err != nil {
		return entity.SpecificationData{}, err
	}

	text, err := p.Extractor.ExtractText(ctx, doc.Data)
	if err != nil {
		return entity.SpecificationData{}, err
	}

	system, user, err := prompt.BuildSpecificationPrompt(text, documentType)
	if err != nil {
		return entity.SpecificationData{}, err
	}

	res, err := inv.Invoke(ctx, llm.Request{
		System:     system,
		User:       user,
		JSONObject: true,
	})
	if err != nil {
		return entity.SpecificationData{}, err
	}

	raw := []byte(res.Text)
	if err := llm.ValidateJSONAgainstSchema(llm.BuildSpecificationJSONSchema(), raw); err != nil {
		// Terminal for this request; no reprompt.
		return entity.SpecificationData{}, common.NewError(common.ErrResponseFormat,
			"specification reply does not match the documented shape", err)
	}

	var spec entity.SpecificationData
	if err := json.Unmarshal(raw, &spec); err != nil {
		return entity.SpecificationData{}, common.NewError(common.ErrResponseFormat,
			"decode specification fields", err)
	}

	sess.SetSpecification(spec)
	sess.Append(entity.AnalysisResult{
		SourceName: doc.Name,
		Provider:   res.Provider,
		ModelUsed:  res.Model,
		Text:       res.Text,
		CreatedAt:  time.Now(),
	})

	p.Logger.Info("pipeline.extract_specification.ok",
		"source", doc.Name,
		"document_type", documentType,
		"project", spec.ProjectName,
		"furniture_type", spec.FurnitureType,
	)
	return spec, nil
}

// AnalyzeDrawing analyzes one drawing upload (PDF or still image) with the
// requested provider and analysis type, appending one result per page in
// ordinal order. A single page failure is recorded on its result entry and
// the remaining pages continue.
func (p *Processor) AnalyzeDrawing(ctx context.Context, sess *session.Session, doc entity.UploadedDocument, analysisType string, provider constants.Provider) error {
	inv, err := p.invoker(provider)
	if err != nil {
		return err
	}

	at, instruction := prompt.DrawingInstruction(analysisType)
	system, err := prompt.SystemPrompt(prompt.TemplateDrawingAnalysis)
	if err != nil {
		return err
	}

	var pages []entity.PageImage
	paged := false
	switch doc.Format {
	case constants.PDF:
		pages, err = p.Extractor.Rasterize(ctx, doc.Data)
		paged = true
	case constants.IMAGE:
		var pg entity.PageImage
		pg, err = p.Extractor.DecodeImage(doc.Data)
		pages = []entity.PageImage{pg}
	default:
		err = common.NewError(common.ErrExtraction, "unsupported document format "+doc.Format, nil)
	}
	if err != nil {
		return err
	}

	results := make([]entity.AnalysisResult, len(pages))
	analyze := func(ctx context.Context, i int) error {
		page := pages[i]
		r := entity.AnalysisResult{
			SourceName:   doc.Name,
			AnalysisType: at,
			Provider:     provider,
			CreatedAt:    time.Now(),
		}
		if paged {
			r.PageOrdinal = page.Ordinal
			r.PageCount = len(pages)
		}

		payload, jpegBytes, encErr := p.Extractor.EncodeJPEGBase64(page)
		if encErr != nil {
			r.Err = encErr
			results[i] = r
			return nil
		}

		res, ierr := inv.Invoke(ctx, llm.Request{
			System:    system,
			User:      instruction,
			Image:     &llm.ImagePayload{Base64: payload, MediaType: "image/jpeg"},
			MaxTokens: p.MaxTokens,
		})
		if ierr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.Logger.Warn("pipeline.analyze_drawing.page_failed",
				"source", doc.Name, "page", page.Ordinal, "error", ierr)
			r.Err = ierr
			results[i] = r
			return nil
		}

		r.ModelUsed = res.Model
		r.Text = res.Text
		r.ImageJPEG = jpegBytes
		results[i] = r
		return nil
	}

	if p.Concurrency > 1 && len(pages) > 1 {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(p.Concurrency)
		for i := range pages {
			i := i // keep per-iteration semantics under go < 1.22
			eg.Go(func() error { return analyze(gctx, i) })
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	} else {
		for i := range pages {
			// Cancellation is honored between pages, not mid-call.
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := analyze(ctx, i); err != nil {
				return err
			}
		}
	}

	// Flush in ordinal order regardless of completion order.
	for _, r := range results {
		sess.Append(r)
	}

	p.Logger.Info("pipeline.analyze_drawing.ok",
		"source", doc.Name,
		"pages", len(pages),
		"analysis_type", string(at),
		"provider", string(provider),
	)
	return nil
}

// AnalyzeBatch processes documents in submission order. Per-document
// failures are collected and returned keyed by document name; one bad
// document never aborts the rest of the batch. A canceled context stops the
// loop before the next document.
func (p *Processor) AnalyzeBatch(ctx context.Context, sess *session.Session, docs []entity.UploadedDocument, analysisType string, provider constants.Provider) map[string]error {
	failures := make(map[string]error)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			failures[doc.Name] = err
			return failures
		}
		if err := p.AnalyzeDrawing(ctx, sess, doc, analysisType, provider); err != nil {
			p.Logger.Error("pipeline.batch.document_failed", "source", doc.Name, "error", err)
			failures[doc.Name] = err
		}
	}
	return failures
}

// GenerateEstimate produces a cost estimate from the session's extracted
// specification, the material database, and any successful drawing analyses
// already stored.
func (p *Processor) GenerateEstimate(ctx context.Context, sess *session.Session, spec entity.SpecificationData, materials entity.MaterialDatabase) (entity.CostEstimate, error) {
	inv, err := p.invoker(constants.ProviderOpenAI)
	if err != nil {
		return entity.CostEstimate{}, err
	}

	var drawings []entity.AnalysisResult
	for _, r := range sess.Results() {
		if r.AnalysisType != "" && r.Err == nil {
			drawings = append(drawings, r)
		}
	}

	system, user, err := prompt.BuildEstimatePrompt(spec, materials, drawings)
	if err != nil {
		return entity.CostEstimate{}, err
	}

	res, err := inv.Invoke(ctx, llm.Request{
		System:     system,
		User:       user,
		JSONObject: true,
	})
	if err != nil {
		return entity.CostEstimate{}, err
	}

	raw := []byte(res.Text)
	if err := llm.ValidateJSONAgainstSchema(llm.BuildEstimateJSONSchema(), raw); err != nil {
		return entity.CostEstimate{}, common.NewError(common.ErrResponseFormat,
			"estimate reply does not match the documented shape", err)
	}

	var est entity.CostEstimate
	if err := json.Unmarshal(raw, &est); err != nil {
		return entity.CostEstimate{}, common.NewError(common.ErrResponseFormat,
			"decode estimate fields", err)
	}

	sess.SetEstimate(est)
	p.Logger.Info("pipeline.generate_estimate.ok",
		"total_cost", est.TotalCost,
		"drawing_analyses", len(drawings),
	)
	return est, nil
}
