package llm

import "testing"

func TestValidateSpecificationReply(t *testing.T) {
	full := []byte(`{
		"project_name": "Office Conference Table",
		"furniture_type": "table",
		"dimensions": {"length": "2400mm", "width": "1200mm", "height": "750mm"},
		"materials": [{"material_type": "oak", "specifications": "veneer A-grade", "quantity": "4 sheets"}],
		"construction_methods": ["mortise and tenon"],
		"finish_requirements": "matte lacquer",
		"quantity": "4",
		"delivery_requirements": "6 weeks",
		"special_features": ["cable grommets"],
		"quality_standards": "BIFMA",
		"additional_notes": ""
	}`)
	if err := ValidateJSONAgainstSchema(BuildSpecificationJSONSchema(), full); err != nil {
		t.Fatalf("full reply rejected: %v", err)
	}
}

func TestValidatePartialReplyAccepted(t *testing.T) {
	// The model may omit fields it could not extract; the reply is still
	// usable and missing values render as placeholders.
	partial := []byte(`{"project_name": "Desk"}`)
	if err := ValidateJSONAgainstSchema(BuildSpecificationJSONSchema(), partial); err != nil {
		t.Fatalf("partial reply rejected: %v", err)
	}
}

func TestValidateWrongShapeRejected(t *testing.T) {
	cases := map[string][]byte{
		"non-object":            []byte(`["a", "b"]`),
		"wrong field type":      []byte(`{"project_name": 42}`),
		"wrong nested type":     []byte(`{"dimensions": "2400x1200"}`),
		"wrong array item type": []byte(`{"construction_methods": [1, 2]}`),
	}
	for name, data := range cases {
		if err := ValidateJSONAgainstSchema(BuildSpecificationJSONSchema(), data); err == nil {
			t.Errorf("%s: expected rejection", name)
		}
	}
}

func TestValidateEstimateReply(t *testing.T) {
	est := []byte(`{
		"project_summary": "4 oak conference tables",
		"material_costs": [{"item": "oak veneer", "specification": "A-grade", "quantity": "4", "unit_cost": "120.00", "total_cost": "480.00"}],
		"labor_costs": [{"operation": "assembly", "hours": "16", "hourly_rate": "30.00", "total_cost": "480.00"}],
		"overhead_costs": {"percentage": "15%", "amount": "144.00"},
		"profit_margin": {"percentage": "20%", "amount": "220.80"},
		"total_cost": "1324.80",
		"price_per_unit": "331.20",
		"delivery_timeline": "6 weeks",
		"notes": ""
	}`)
	if err := ValidateJSONAgainstSchema(BuildEstimateJSONSchema(), est); err != nil {
		t.Fatalf("estimate reply rejected: %v", err)
	}

	bad := []byte(`{"material_costs": {"item": "oak"}}`)
	if err := ValidateJSONAgainstSchema(BuildEstimateJSONSchema(), bad); err == nil {
		t.Error("expected rejection for non-array material_costs")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if err := ValidateJSONAgainstSchema(BuildSpecificationJSONSchema(), []byte(`{"project_name":`)); err == nil {
		t.Error("expected an error for truncated JSON")
	}
}
