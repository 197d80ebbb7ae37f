package prompt

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var templateFS embed.FS

// Identifiers for the two system prompt templates. The templates are
// versionable resources: their content is opaque to the core and passed
// through verbatim as the system role, with no substitution.
const (
	TemplateRFQAnalysis     = "rfq_analysis"
	TemplateDrawingAnalysis = "drawing_analysis"
)

// SystemPrompt returns the exact prompt text registered under id.
func SystemPrompt(id string) (string, error) {
	b, err := templateFS.ReadFile("templates/" + id + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown prompt template %q: %w", id, err)
	}
	return string(b), nil
}
