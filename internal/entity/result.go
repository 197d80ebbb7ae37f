package entity

import (
	"time"

	"github.com/quotecraft/rfq-analyzer/constants"
)

// AnalysisResult is one stored analysis outcome for a drawing, a single
// rasterized page, or a structured extraction. Append-only; never mutated
// after creation.
type AnalysisResult struct {
	SourceName   string
	PageOrdinal  int // 1-based; 0 when the source was not paged
	PageCount    int // total pages of the source; 0 when not paged
	AnalysisType constants.AnalysisType // empty for structured extraction
	Provider     constants.Provider
	ModelUsed    string
	Text         string // analysis body, or raw JSON for structured extraction
	ImageJPEG    []byte // originating image re-encoded as JPEG; nil for text-only
	Err          error  // per-page failure; the rest of the batch continues
	CreatedAt    time.Time
}

// SavedQuote pairs an extracted specification with the estimate generated
// from it, snapshotted at save time.
type SavedQuote struct {
	Timestamp     time.Time
	Specification SpecificationData
	Estimate      CostEstimate
}
