package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	// Registered decoders for the upload formats we accept.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/entity"
)

const jpegQuality = 90

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // rasterization resolution; pdftoppm scales by DPI/72
	MaxPages int    // 0 = no limit
}

// Extractor turns uploaded byte streams into model-ready content: the PDF
// text layer, rasterized page images, or a decoded still image.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 150
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner is NewExtractor with an explicit Runner, for callers
// that stub the external renderer.
func NewExtractorWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = runner
	return e
}

// ExtractText concatenates the text layer of every page in physical page
// order, joined with a form feed. Best-effort: a page with no extractable
// text contributes an empty segment rather than failing the document.
func (e *Extractor) ExtractText(ctx context.Context, pdfBytes []byte) (text string, err error) {
	// The parser panics on some malformed content streams; surface those as
	// extraction failures like any other unparseable input.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = common.NewError(common.ErrExtraction, fmt.Sprintf("pdf parse: %v", r), nil)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return "", common.NewError(common.ErrExtraction, "not a parseable PDF", err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("extract.text.page_failed", "page", i, "error", err)
			txt = ""
		}
		pages = append(pages, txt)
	}
	return strings.Join(pages, "\f"), nil
}

// Rasterize renders each page to an image at the configured DPI. All-or-
// nothing: the caller sees either the full ordered sequence, ordinals 1..N in
// physical page order, or an error. Temporary files are removed on every
// exit path.
func (e *Extractor) Rasterize(ctx context.Context, pdfBytes []byte) ([]entity.PageImage, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	pageCount, err := api.PageCount(bytes.NewReader(pdfBytes), conf)
	if err != nil {
		return nil, common.NewError(common.ErrExtraction, "cannot open PDF", err)
	}
	if pageCount < 1 {
		return nil, common.NewError(common.ErrExtraction, "document has no pages", nil)
	}
	if e.cfg.MaxPages > 0 && pageCount > e.cfg.MaxPages {
		return nil, common.NewError(common.ErrExtraction,
			fmt.Sprintf("document has %d pages, limit is %d", pageCount, e.cfg.MaxPages), nil)
	}

	tmpDir, err := os.MkdirTemp("", "rfq-pp-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("extract.rasterize.cleanup_failed", "dir", tmpDir, "error", err)
		}
	}()

	src := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(src, pdfBytes, 0o600); err != nil {
		return nil, err
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <doc.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", src, prefix)
	if err != nil {
		return nil, common.NewError(common.ErrExtraction, strings.TrimSpace(string(errb)), err)
	}

	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	// Lexical order would put page-10 before page-2.
	sort.Slice(matches, func(i, j int) bool {
		return pageOrdinal(matches[i]) < pageOrdinal(matches[j])
	})
	if len(matches) != pageCount {
		return nil, common.NewError(common.ErrExtraction,
			fmt.Sprintf("rendered %d of %d pages", len(matches), pageCount), nil)
	}

	images := make([]entity.PageImage, 0, pageCount)
	for i, m := range matches {
		raw, err := os.ReadFile(m)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, common.NewError(common.ErrExtraction, "decode rendered page "+filepath.Base(m), err)
		}
		images = append(images, entity.PageImage{Ordinal: i + 1, Image: img})
	}

	e.logger.Info("extract.rasterize.ok", "pages", pageCount, "dpi", e.cfg.DPI)
	return images, nil
}

// DecodeImage accepts a single still-image upload directly, no rasterization
// needed.
func (e *Extractor) DecodeImage(raw []byte) (entity.PageImage, error) {
	mt := mimetype.Detect(raw)
	if !strings.HasPrefix(mt.String(), "image/") {
		return entity.PageImage{}, common.NewError(common.ErrExtraction,
			"unsupported upload type "+mt.String(), nil)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return entity.PageImage{}, common.NewError(common.ErrExtraction, "corrupt image", err)
	}
	return entity.PageImage{Ordinal: 1, Image: img}, nil
}

// EncodeJPEGBase64 re-encodes a page image as JPEG and returns both the raw
// bytes and the base64 transport form embedded in model requests. Lossy;
// pixel dimensions are preserved exactly.
func (e *Extractor) EncodeJPEGBase64(p entity.PageImage) (string, []byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, p.Image, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", nil, common.NewError(common.ErrExtraction, "jpeg encode", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), buf.Bytes(), nil
}

// pageOrdinal parses the page number out of a pdftoppm output name
// (page-1.png, page-01.png, ...).
func pageOrdinal(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
