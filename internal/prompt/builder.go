package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/entity"
)

// specificationShape is the literal JSON template the model is told to fill
// in. Field names and nesting must stay byte-for-byte stable across calls:
// display and export key into the response by these exact names.
const specificationShape = `{
    "project_name": "Project name or identifier",
    "furniture_type": "Type of furniture (e.g., table, chair, cabinet)",
    "dimensions": {
        "length": "Length in mm",
        "width": "Width in mm",
        "height": "Height in mm"
    },
    "materials": [
        {
            "material_type": "Type of material",
            "specifications": "Material specifications",
            "quantity": "Required quantity"
        }
    ],
    "construction_methods": [
        "List of construction methods required"
    ],
    "finish_requirements": "Finish specifications",
    "quantity": "Number of pieces to manufacture",
    "delivery_requirements": "Delivery timeline and requirements",
    "special_features": [
        "List of special features or customizations"
    ],
    "quality_standards": "Quality standards and certifications",
    "additional_notes": "Any additional requirements or notes"
}`

// estimateShape is the literal JSON template for cost estimates.
const estimateShape = `{
    "project_summary": "Brief overview of the project",
    "material_costs": [
        {
            "item": "Material name",
            "specification": "Material specification",
            "quantity": "Required quantity",
            "unit_cost": "Cost per unit",
            "total_cost": "Total cost for this material"
        }
    ],
    "labor_costs": [
        {
            "operation": "Manufacturing operation",
            "hours": "Estimated hours",
            "hourly_rate": "Hourly rate",
            "total_cost": "Total labor cost"
        }
    ],
    "overhead_costs": {
        "percentage": "Overhead percentage",
        "amount": "Overhead amount"
    },
    "profit_margin": {
        "percentage": "Profit margin percentage",
        "amount": "Profit amount"
    },
    "total_cost": "Total project cost",
    "price_per_unit": "Price per furniture piece",
    "delivery_timeline": "Estimated delivery timeline",
    "notes": "Additional notes and recommendations"
}`

// drawingInstructions are the five fixed analysis instructions, keyed by
// analysis type.
var drawingInstructions = map[constants.AnalysisType]string{
	constants.AnalysisDimensions:    "Analyze this drawing to extract all dimensions, measurements, and size specifications. Identify length, width, height, thickness, and any other critical measurements.",
	constants.AnalysisMaterials:     "Analyze this drawing to identify material requirements, specifications, and types. Look for wood types, hardware, finishes, and any special materials needed.",
	constants.AnalysisConstruction:  "Analyze this drawing to identify construction methods, joinery techniques, and assembly requirements. Look for joints, fasteners, and construction details.",
	constants.AnalysisComplexity:    "Analyze this drawing to assess manufacturing complexity, difficulty level, and potential challenges. Consider precision requirements, special tools needed, and skill level required.",
	constants.AnalysisComprehensive: "Provide a comprehensive analysis of this technical drawing including dimensions, materials, construction methods, complexity assessment, and manufacturing recommendations.",
}

// DrawingInstruction resolves the instruction string for an analysis type.
// Unknown input falls back to the comprehensive instruction rather than
// failing the request.
func DrawingInstruction(analysisType string) (constants.AnalysisType, string) {
	at, _ := constants.CanonicalizeAnalysisType(analysisType)
	return at, drawingInstructions[at]
}

// BuildSpecificationPrompt composes the prompt pair for structured
// specification extraction from a text-bearing document. documentType tags
// the document kind ("specification" or "drawing"); the extracted text is
// embedded verbatim, no chunking or truncation.
func BuildSpecificationPrompt(text, documentType string) (system, user string, err error) {
	system, err = SystemPrompt(TemplateRFQAnalysis)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Extract all relevant furniture manufacturing specifications from this %s document.\n", documentType)
	b.WriteString("The document text is provided below:\n\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn the extracted information as a JSON object with the following structure:\n")
	b.WriteString(specificationShape)
	return system, b.String(), nil
}

// BuildEstimatePrompt composes the prompt pair for cost estimate generation
// from an extracted specification, the material database, and any completed
// drawing analyses.
func BuildEstimatePrompt(spec entity.SpecificationData, materials entity.MaterialDatabase, drawings []entity.AnalysisResult) (system, user string, err error) {
	system, err = SystemPrompt(TemplateRFQAnalysis)
	if err != nil {
		return "", "", err
	}

	specJSON, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal specification: %w", err)
	}
	materialJSON, err := json.MarshalIndent(materials, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal material database: %w", err)
	}

	var b strings.Builder
	b.WriteString("Generate a detailed cost estimate for the following furniture manufacturing project:\n\n")
	b.WriteString("PROJECT SPECIFICATIONS:\n")
	b.Write(specJSON)
	b.WriteString("\n\nMATERIAL DATABASE:\n")
	b.Write(materialJSON)
	b.WriteString("\n")

	if len(drawings) > 0 {
		b.WriteString("\nDRAWING ANALYSES:\n")
		for i, d := range drawings {
			fmt.Fprintf(&b, "\nDrawing %d: %s\n", i+1, d.SourceName)
			fmt.Fprintf(&b, "Analysis: %s\n", d.Text)
			b.WriteString(strings.Repeat("-", 50))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nReturn the cost estimate as a JSON object with the following structure:\n")
	b.WriteString(estimateShape)
	return system, b.String(), nil
}
