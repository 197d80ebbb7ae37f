package constants

import "strings"

// AnalysisType selects which drawing-analysis instruction is sent to the model.
type AnalysisType string

const (
	AnalysisDimensions    AnalysisType = "dimensions"
	AnalysisMaterials     AnalysisType = "materials"
	AnalysisConstruction  AnalysisType = "construction"
	AnalysisComplexity    AnalysisType = "complexity"
	AnalysisComprehensive AnalysisType = "comprehensive"
)

var allAnalysisTypes = []AnalysisType{
	AnalysisComprehensive,
	AnalysisDimensions,
	AnalysisMaterials,
	AnalysisConstruction,
	AnalysisComplexity,
}

// AnalysisTypes returns the known analysis types as strings, comprehensive first.
func AnalysisTypes() []string {
	result := make([]string, len(allAnalysisTypes))
	for i, at := range allAnalysisTypes {
		result[i] = string(at)
	}
	return result
}

// CanonicalizeAnalysisType maps free-form input onto a known analysis type.
// Unknown or empty input falls back to comprehensive so a stale or mistyped
// selection still produces an analysis instead of failing the request.
func CanonicalizeAnalysisType(input string) (AnalysisType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, at := range allAnalysisTypes {
		if normalized == string(at) {
			return at, true
		}
	}
	return AnalysisComprehensive, false
}
