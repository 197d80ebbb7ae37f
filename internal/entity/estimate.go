package entity

// CostEstimate mirrors the JSON object the estimate prompt instructs the
// model to fill in. Field names are fixed; see SpecificationData.
type CostEstimate struct {
	ProjectSummary   string         `json:"project_summary"`
	MaterialCosts    []MaterialCost `json:"material_costs"`
	LaborCosts       []LaborCost    `json:"labor_costs"`
	OverheadCosts    PercentAmount  `json:"overhead_costs"`
	ProfitMargin     PercentAmount  `json:"profit_margin"`
	TotalCost        string         `json:"total_cost"`
	PricePerUnit     string         `json:"price_per_unit"`
	DeliveryTimeline string         `json:"delivery_timeline"`
	Notes            string         `json:"notes"`
}

// MaterialCost is one material line of an estimate.
type MaterialCost struct {
	Item          string `json:"item"`
	Specification string `json:"specification"`
	Quantity      string `json:"quantity"`
	UnitCost      string `json:"unit_cost"`
	TotalCost     string `json:"total_cost"`
}

// LaborCost is one manufacturing operation line of an estimate.
type LaborCost struct {
	Operation  string `json:"operation"`
	Hours      string `json:"hours"`
	HourlyRate string `json:"hourly_rate"`
	TotalCost  string `json:"total_cost"`
}

// PercentAmount is a percentage plus the resulting amount, used for overhead
// and profit margin.
type PercentAmount struct {
	Percentage string `json:"percentage"`
	Amount     string `json:"amount"`
}
