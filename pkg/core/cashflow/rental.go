package cashflow

import (
	"fmt"
	"math"

	"taxdeedflow/pkg/models"
)

// DefaultAppreciationRate is applied when the deal does not specify an
// annual appreciation assumption.
const DefaultAppreciationRate = 0.03

// RentalHoldMonths resolves the rental hold horizon: explicit hold years win,
// otherwise the deal's holding months, with a 12-month floor (a rental held
// under a year is a flip in disguise).
func RentalHoldMonths(d models.DealAssumptions) int {
	if d.RentalHoldYears > 0 {
		return d.RentalHoldYears * 12
	}
	if d.HoldingMonths >= 12 {
		return d.HoldingMonths
	}
	return 12
}

// GenerateRentalHold builds the buy-and-hold series: the acquisition outlay,
// then monthly net rent (rent minus operating expenses, possibly negative),
// and a terminal entry selling at the ARV compounded by the annual
// appreciation rate over the hold years, net of selling costs, plus the
// final month's cash flow.
func GenerateRentalHold(d models.DealAssumptions) Series {
	months := RentalHoldMonths(d)
	years := float64(months) / 12

	appreciation := d.AnnualAppreciationRate
	if appreciation == 0 {
		appreciation = DefaultAppreciationRate
	}

	monthlyNet := d.MonthlyRent - d.MonthlyOperatingExpense

	series := make(Series, 0, months+1)
	series = append(series, Entry{
		Period: 0,
		Amount: -d.TotalAcquisitionCost(),
		Label:  "acquisition + closing + rehab",
	})

	for m := 1; m < months; m++ {
		series = append(series, Entry{
			Period: m,
			Amount: monthlyNet,
			Label:  fmt.Sprintf("net rent month %d", m),
		})
	}

	appreciatedValue := d.ARV * math.Pow(1+appreciation, years)
	terminal := appreciatedValue - appreciatedValue*d.SellingCostRate + monthlyNet
	series = append(series, Entry{
		Period: months,
		Amount: terminal,
		Label:  "sale at appreciated value + final month rent",
	})
	return series
}
