package cashflow

import (
	"fmt"

	"taxdeedflow/pkg/core/finance"
	"taxdeedflow/pkg/models"
)

// GenerateOwnerFinance builds the seller-carry series: the acquisition outlay
// reduced by the buyer's down payment at period 0, the amortizing monthly
// payment thereafter, and — when a balloon term shorter than the
// amortization schedule is set — the remaining balance due in full at the
// balloon month.
func GenerateOwnerFinance(d models.DealAssumptions) Series {
	of := d.OwnerFinance

	amort := of.AmortizationMonths
	if amort < 1 {
		amort = 360
	}

	principal := of.SalePrice - of.DownPayment
	if principal < 0 {
		principal = 0
	}
	payment := finance.MonthlyPayment(principal, of.AnnualRate, amort)

	months := amort
	balloon := of.BalloonMonths > 0 && of.BalloonMonths < amort
	if balloon {
		months = of.BalloonMonths
	}

	series := make(Series, 0, months+1)
	series = append(series, Entry{
		Period: 0,
		Amount: -d.TotalAcquisitionCost() + of.DownPayment,
		Label:  "acquisition net of down payment",
	})

	for m := 1; m < months; m++ {
		series = append(series, Entry{
			Period: m,
			Amount: payment,
			Label:  fmt.Sprintf("note payment month %d", m),
		})
	}

	final := payment
	label := "final note payment"
	if balloon {
		final += finance.RemainingBalance(principal, of.AnnualRate, amort, months)
		label = "final note payment + balloon payoff"
	}
	series = append(series, Entry{Period: months, Amount: final, Label: label})
	return series
}
