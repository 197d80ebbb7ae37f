package entity

// Demo fixtures used when no real uploads or pricing data are available.

// DemoSpecification returns a sample extracted specification for an office
// conference table.
func DemoSpecification() SpecificationData {
	return SpecificationData{
		ProjectName:   "Office Conference Table",
		FurnitureType: "Conference Table",
		Dimensions: Dimensions{
			Length: "3000",
			Width:  "1200",
			Height: "750",
		},
		Materials: []Material{
			{
				MaterialType:   "Solid Oak",
				Specifications: "Grade A, 25mm thickness",
				Quantity:       "3.6 sqm",
			},
			{
				MaterialType:   "Steel Legs",
				Specifications: "Powder coated, 40x40mm",
				Quantity:       "4 pieces",
			},
		},
		ConstructionMethods:  []string{"Mortise and tenon joints", "Dovetail corners"},
		FinishRequirements:   "Natural oil finish",
		Quantity:             "1",
		DeliveryRequirements: "4 weeks",
		SpecialFeatures:      []string{"Cable management", "Adjustable feet"},
		QualityStandards:     "ISO 9001",
		AdditionalNotes:      "Must be able to seat 8 people comfortably",
	}
}

// DemoMaterialDatabase returns sample supplier pricing and labor rates.
func DemoMaterialDatabase() MaterialDatabase {
	return MaterialDatabase{
		Materials: []MaterialEntry{
			{
				Name:        "Solid Oak",
				Grade:       "A",
				Thickness:   "25mm",
				PricePerSqm: "85.00",
				Supplier:    "TimberCo",
			},
			{
				Name:          "Steel Legs",
				Specification: "40x40mm powder coated",
				PricePerPiece: "45.00",
				Supplier:      "MetalWorks",
			},
		},
		LaborRates: map[string]float64{
			"cutting":   25.00,
			"assembly":  30.00,
			"finishing": 35.00,
		},
	}
}
