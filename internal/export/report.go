package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quotecraft/rfq-analyzer/internal/entity"
)

// orNA substitutes the placeholder for values the analysis never produced.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// BuildAnalysisReport renders one drawing analysis result as a plain-text
// report. Failed pages render their error in place of the analysis body.
func BuildAnalysisReport(r entity.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("Drawing Analysis Report\n")
	b.WriteString("======================\n\n")
	fmt.Fprintf(&b, "Drawing: %s\n", orNA(r.SourceName))
	if r.PageOrdinal > 0 {
		fmt.Fprintf(&b, "Page: %d of %d\n", r.PageOrdinal, r.PageCount)
	}
	fmt.Fprintf(&b, "Analysis Type: %s\n", orNA(string(r.AnalysisType)))
	fmt.Fprintf(&b, "Model Used: %s\n", orNA(r.ModelUsed))
	b.WriteString("\n")
	if r.Err != nil {
		fmt.Fprintf(&b, "Analysis failed: %v\n", r.Err)
		return b.String()
	}
	b.WriteString(orNA(r.Text))
	b.WriteString("\n")
	return b.String()
}

// BuildBatchReport concatenates per-result reports for a whole session, in
// stored order, separated by a rule line.
func BuildBatchReport(results []entity.AnalysisResult) string {
	var parts []string
	for _, r := range results {
		if r.AnalysisType == "" {
			continue // structured extractions have their own export path
		}
		parts = append(parts, BuildAnalysisReport(r))
	}
	return strings.Join(parts, "\n"+strings.Repeat("=", 60)+"\n\n")
}

// BuildEstimateReport renders a cost estimate as a plain-text summary.
func BuildEstimateReport(est entity.CostEstimate) string {
	var b strings.Builder
	b.WriteString("Cost Estimate\n")
	b.WriteString("=============\n\n")
	fmt.Fprintf(&b, "Project: %s\n\n", orNA(est.ProjectSummary))

	if len(est.MaterialCosts) > 0 {
		b.WriteString("Material Costs:\n")
		for _, m := range est.MaterialCosts {
			fmt.Fprintf(&b, "  %s (%s) x %s @ %s = %s\n",
				orNA(m.Item), orNA(m.Specification), orNA(m.Quantity),
				orNA(m.UnitCost), orNA(m.TotalCost))
		}
		b.WriteString("\n")
	}
	if len(est.LaborCosts) > 0 {
		b.WriteString("Labor Costs:\n")
		for _, l := range est.LaborCosts {
			fmt.Fprintf(&b, "  %s: %s h @ %s = %s\n",
				orNA(l.Operation), orNA(l.Hours), orNA(l.HourlyRate), orNA(l.TotalCost))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Overhead: %s (%s)\n", orNA(est.OverheadCosts.Amount), orNA(est.OverheadCosts.Percentage))
	fmt.Fprintf(&b, "Profit Margin: %s (%s)\n", orNA(est.ProfitMargin.Amount), orNA(est.ProfitMargin.Percentage))
	fmt.Fprintf(&b, "Total Cost: %s\n", orNA(est.TotalCost))
	fmt.Fprintf(&b, "Price Per Unit: %s\n", orNA(est.PricePerUnit))
	fmt.Fprintf(&b, "Delivery Timeline: %s\n", orNA(est.DeliveryTimeline))
	if strings.TrimSpace(est.Notes) != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", est.Notes)
	}
	return b.String()
}

// BuildBatchSummary renders a one-line-per-document outcome table for a
// batch run, failures first grouped out for visibility.
func BuildBatchSummary(results []entity.AnalysisResult, failures map[string]error) string {
	perSource := map[string][2]int{} // [ok, failed]
	for _, r := range results {
		if r.AnalysisType == "" {
			continue
		}
		c := perSource[r.SourceName]
		if r.Err != nil {
			c[1]++
		} else {
			c[0]++
		}
		perSource[r.SourceName] = c
	}

	names := make([]string, 0, len(perSource))
	for n := range perSource {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Batch Summary\n")
	b.WriteString("=============\n")
	for _, n := range names {
		c := perSource[n]
		fmt.Fprintf(&b, "  %s: %d analyzed, %d failed\n", n, c[0], c[1])
	}
	if len(failures) > 0 {
		b.WriteString("\nFailed documents:\n")
		fnames := make([]string, 0, len(failures))
		for n := range failures {
			fnames = append(fnames, n)
		}
		sort.Strings(fnames)
		for _, n := range fnames {
			fmt.Fprintf(&b, "  %s: %v\n", n, failures[n])
		}
	}
	return b.String()
}
