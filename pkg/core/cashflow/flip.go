package cashflow

import (
	"fmt"

	"taxdeedflow/pkg/models"
)

// GenerateFlip builds the fix-and-flip series:
//
//	period 0      -(acquisition + closing + rehab)
//	periods 1..N-1  -monthlyHolding
//	period N      ARV - selling costs - final month's holding
//
// monthlyHolding comes from the holding-cost estimator; the generator does
// not recompute it.
func GenerateFlip(d models.DealAssumptions, monthlyHolding float64) Series {
	months := d.HoldingMonths
	if months < 1 {
		months = 1
	}

	series := make(Series, 0, months+1)
	series = append(series, Entry{
		Period: 0,
		Amount: -d.TotalAcquisitionCost(),
		Label:  "acquisition + closing + rehab",
	})

	for m := 1; m < months; m++ {
		series = append(series, Entry{
			Period: m,
			Amount: -monthlyHolding,
			Label:  fmt.Sprintf("holding costs month %d", m),
		})
	}

	saleProceeds := d.ARV - d.ARV*d.SellingCostRate - monthlyHolding
	series = append(series, Entry{
		Period: months,
		Amount: saleProceeds,
		Label:  "sale proceeds net of selling costs",
	})
	return series
}
