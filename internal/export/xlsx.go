package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/quotecraft/rfq-analyzer/internal/entity"
)

const estimateSheet = "Estimate"

// EstimateXLSX renders a cost estimate as a workbook with a summary block
// followed by material and labor cost tables.
func EstimateXLSX(est entity.CostEstimate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(estimateSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	row := 1
	setRow := func(values ...any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(estimateSheet, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	summary := [][2]string{
		{"Project Summary", orNA(est.ProjectSummary)},
		{"Total Cost", orNA(est.TotalCost)},
		{"Price Per Unit", orNA(est.PricePerUnit)},
		{"Overhead", orNA(est.OverheadCosts.Amount)},
		{"Overhead %", orNA(est.OverheadCosts.Percentage)},
		{"Profit Margin", orNA(est.ProfitMargin.Amount)},
		{"Profit Margin %", orNA(est.ProfitMargin.Percentage)},
		{"Delivery Timeline", orNA(est.DeliveryTimeline)},
		{"Notes", orNA(est.Notes)},
	}
	for _, kv := range summary {
		if err := setRow(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	row++

	if err := setRow("Material Costs"); err != nil {
		return nil, err
	}
	if err := setRow("Item", "Specification", "Quantity", "Unit Cost", "Total Cost"); err != nil {
		return nil, err
	}
	for _, m := range est.MaterialCosts {
		if err := setRow(m.Item, m.Specification, m.Quantity, m.UnitCost, m.TotalCost); err != nil {
			return nil, err
		}
	}
	row++

	if err := setRow("Labor Costs"); err != nil {
		return nil, err
	}
	if err := setRow("Operation", "Hours", "Hourly Rate", "Total Cost"); err != nil {
		return nil, err
	}
	for _, l := range est.LaborCosts {
		if err := setRow(l.Operation, l.Hours, l.HourlyRate, l.TotalCost); err != nil {
			return nil, err
		}
	}

	widths := []float64{28, 30, 14, 14, 14}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(estimateSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}
