package llm

import (
	"context"

	"github.com/quotecraft/rfq-analyzer/constants"
)

// ImagePayload is one inline image attached to a request, already re-encoded
// as base64 JPEG.
type ImagePayload struct {
	Base64    string
	MediaType string // e.g. "image/jpeg"
}

// Request is a composed prompt pair plus invocation options. The system
// prompt is passed through verbatim from the template registry.
type Request struct {
	System     string
	User       string
	Image      *ImagePayload
	MaxTokens  int  // 0 = provider default
	JSONObject bool // mandate a JSON-object-shaped response
}

// RawResult is a provider reply before any schema validation.
type RawResult struct {
	Provider constants.Provider
	Model    string
	Text     string
}

// Invoker is the capability set shared by both providers: a system+user text
// prompt, optionally one inline image, returning either free text or a
// JSON-object-constrained reply. Implementations perform no retries and no
// caching; identical inputs issue independent external calls.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (RawResult, error)
	Provider() constants.Provider
	// Configured reports whether a credential is present, so callers can
	// fail fast before any extraction work. It never performs network I/O.
	Configured() bool
}
