package llm

// BuildSpecificationJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for the specification extraction reply. Nothing is required and extra
// properties are allowed: the core does not enforce schema completeness, it
// only rejects replies whose present fields have the wrong shape. Missing
// fields surface downstream as "N/A" placeholders.
func BuildSpecificationJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"project_name":   strProp(),
			"furniture_type": strProp(),
			"dimensions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"length": strProp(),
					"width":  strProp(),
					"height": strProp(),
				},
			},
			"materials": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"material_type":  strProp(),
						"specifications": strProp(),
						"quantity":       strProp(),
					},
				},
			},
			"construction_methods":  strArrayProp(),
			"finish_requirements":   strProp(),
			"quantity":              strProp(),
			"delivery_requirements": strProp(),
			"special_features":      strArrayProp(),
			"quality_standards":     strProp(),
			"additional_notes":      strProp(),
		},
	}
}

// BuildEstimateJSONSchema returns the schema for the cost estimate reply.
func BuildEstimateJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"project_summary": strProp(),
			"material_costs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item":          strProp(),
						"specification": strProp(),
						"quantity":      strProp(),
						"unit_cost":     strProp(),
						"total_cost":    strProp(),
					},
				},
			},
			"labor_costs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"operation":   strProp(),
						"hours":       strProp(),
						"hourly_rate": strProp(),
						"total_cost":  strProp(),
					},
				},
			},
			"overhead_costs":    percentAmountProp(),
			"profit_margin":     percentAmountProp(),
			"total_cost":        strProp(),
			"price_per_unit":    strProp(),
			"delivery_timeline": strProp(),
			"notes":             strProp(),
		},
	}
}

func strProp() map[string]any {
	return map[string]any{"type": "string"}
}

func strArrayProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": strProp(),
	}
}

func percentAmountProp() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"percentage": strProp(),
			"amount":     strProp(),
		},
	}
}
