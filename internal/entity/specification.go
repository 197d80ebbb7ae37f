package entity

// SpecificationData mirrors the JSON object the extraction prompt instructs
// the model to fill in. The field names are load-bearing: display and export
// key into the response by these exact names. All values arrive as strings;
// the model is not trusted to produce numbers.
type SpecificationData struct {
	ProjectName          string     `json:"project_name"`
	FurnitureType        string     `json:"furniture_type"`
	Dimensions           Dimensions `json:"dimensions"`
	Materials            []Material `json:"materials"`
	ConstructionMethods  []string   `json:"construction_methods"`
	FinishRequirements   string     `json:"finish_requirements"`
	Quantity             string     `json:"quantity"`
	DeliveryRequirements string     `json:"delivery_requirements"`
	SpecialFeatures      []string   `json:"special_features"`
	QualityStandards     string     `json:"quality_standards"`
	AdditionalNotes      string     `json:"additional_notes"`
}

// Dimensions are overall piece dimensions in mm.
type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Material is one required material line in a specification.
type Material struct {
	MaterialType   string `json:"material_type"`
	Specifications string `json:"specifications"`
	Quantity       string `json:"quantity"`
}
