// Package report renders an analysis result as a Markdown document for the
// display layer. Formatting only; every number comes from the core as-is.
package report

import (
	"fmt"
	"strings"

	"taxdeedflow/pkg/core/analysis"
)

// Build renders the full Markdown report for a finished analysis.
func Build(res *analysis.Result) string {
	var b strings.Builder
	rec := res.Recommendation

	fmt.Fprintf(&b, "# Investment Analysis — %s\n\n", res.Property.Address)
	fmt.Fprintf(&b, "Parcel %s · %s, %s %s · analysis `%s`\n\n",
		res.Property.ParcelNumber, res.Property.City, res.Property.State,
		res.Property.Zip, res.AnalysisID)

	fmt.Fprintf(&b, "## Verdict: %s\n\n", strings.ToUpper(string(rec.Verdict)))
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Max bid | $%.0f |\n", rec.MaxBid)
	fmt.Fprintf(&b, "| Target profit | $%.0f |\n", rec.TargetProfit)
	fmt.Fprintf(&b, "| Exit strategy | %s |\n", rec.ExitStrategy)
	fmt.Fprintf(&b, "| Timeline | %.1f months |\n", rec.TimelineMonths)
	fmt.Fprintf(&b, "| Confidence | %.0f/100 |\n\n", rec.Confidence)

	fmt.Fprintf(&b, "## Deal Metrics\n\n")
	m := res.Metrics
	fmt.Fprintf(&b, "- ROI: %.1f%%\n", m.ROI)
	fmt.Fprintf(&b, "- Profit margin: %.1f%% of ARV\n", m.ProfitMargin)
	fmt.Fprintf(&b, "- Net profit: $%.0f (gross $%.0f)\n", m.NetProfit, m.GrossProfit)
	fmt.Fprintf(&b, "- Price-to-ARV: %.2f (total investment %.2f)\n", m.PriceToARV, m.TotalInvestmentToARV)
	fmt.Fprintf(&b, "- Break-even sale price: $%.0f\n", m.BreakEvenPrice)
	if m.IRRValid {
		fmt.Fprintf(&b, "- IRR: %.1f%% annualized\n", m.IRR)
	} else {
		fmt.Fprintf(&b, "- IRR: undefined for this cash-flow profile\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Exit Strategy Ranking\n\n")
	fmt.Fprintf(&b, "| # | Strategy | Score | Net Profit | Net ROI | Risk |\n")
	fmt.Fprintf(&b, "|---|----------|-------|------------|---------|------|\n")
	for i, a := range res.Strategies.Ranked {
		fmt.Fprintf(&b, "| %d | %s | %d | $%.0f | %.1f%% | %d/10 |\n",
			i+1, a.Strategy, a.Score, a.NetProfit, a.Metrics.NetROI*100, a.RiskLevel)
	}
	fmt.Fprintf(&b, "\nRecommended: **%s** (confidence %.0f)\n\n",
		res.Strategies.Recommended, res.Strategies.Confidence)

	fmt.Fprintf(&b, "## Monthly Holding Costs\n\n")
	h := res.HoldingCosts
	fmt.Fprintf(&b, "Total $%.2f/month, $%.2f over %d months.\n\n",
		h.TotalMonthly, h.TotalHolding, h.HoldingMonths)
	lines := []struct {
		name   string
		amount float64
	}{
		{"Taxes", h.Tax}, {"Insurance", h.Insurance}, {"Utilities", h.Utilities},
		{"Maintenance", h.Maintenance}, {"Loan payment", h.LoanPayment},
		{"HOA", h.HOA}, {"Security", h.Security}, {"Lawn care", h.LawnCare},
		{"Pool", h.Pool}, {"Pest control", h.PestControl},
	}
	for _, line := range lines {
		if line.amount > 0 {
			fmt.Fprintf(&b, "- %s: $%.2f\n", line.name, line.amount)
		}
	}
	b.WriteString("\n")

	writeList(&b, "Key Factors", rec.KeyFactors)
	writeList(&b, "Risks", rec.Risks)
	writeList(&b, "Opportunities", rec.Opportunities)

	if len(res.Warnings) > 0 {
		writeList(&b, "Input Warnings", res.Warnings)
	}
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
