package entity

// MaterialDatabase is the pricing input to cost estimation: available
// materials with supplier pricing, plus shop labor rates per operation.
// Opaque to the core; it is marshaled into the estimate prompt verbatim.
type MaterialDatabase struct {
	Materials  []MaterialEntry    `json:"materials"`
	LaborRates map[string]float64 `json:"labor_rates"`
}

// MaterialEntry is one priced material. Pricing fields are optional because
// suppliers quote either per area or per piece.
type MaterialEntry struct {
	Name          string `json:"name"`
	Grade         string `json:"grade,omitempty"`
	Specification string `json:"specification,omitempty"`
	Thickness     string `json:"thickness,omitempty"`
	PricePerSqm   string `json:"price_per_sqm,omitempty"`
	PricePerPiece string `json:"price_per_piece,omitempty"`
	Supplier      string `json:"supplier,omitempty"`
}
