package strategy

import (
	"time"

	"taxdeedflow/pkg/core/cashflow"
	"taxdeedflow/pkg/models"
)

// Risk levels run 1 (safest) to 10. Each strategy starts from a base and
// takes deterministic adjustments from the market, the rehab load, and the
// property itself.

// propertyAge resolves the property age against the context's as-of year.
// Returns 0 when the build year is unknown.
func propertyAge(ctx Context) int {
	if ctx.Property.YearBuilt <= 0 {
		return 0
	}
	year := ctx.AsOfYear
	if year == 0 {
		year = time.Now().Year()
	}
	return year - ctx.Property.YearBuilt
}

func clampRisk(level int) int {
	if level < 1 {
		return 1
	}
	if level > 10 {
		return 10
	}
	return level
}

// marketRiskShift is the common market adjustment: hot markets de-risk a
// quick exit, slow and declining markets add to it.
func marketRiskShift(m models.MarketCondition) int {
	switch m {
	case models.MarketHot:
		return -1
	case models.MarketSlow:
		return 1
	case models.MarketDeclining:
		return 2
	}
	return 0
}

func flipRisk(ctx Context) int {
	risk := 5
	risk += marketRiskShift(ctx.Deal.MarketCondition)

	// Heavy rehab relative to purchase price is the classic flip killer.
	if ctx.Deal.AcquisitionPrice > 0 {
		ratio := ctx.Deal.RehabCost / ctx.Deal.AcquisitionPrice
		if ratio > 0.6 {
			risk += 2
		} else if ratio > 0.3 {
			risk++
		}
	}

	if propertyAge(ctx) > 50 {
		risk++
	}
	return clampRisk(risk)
}

func wholesaleRisk(ctx Context) int {
	risk := 3
	risk += marketRiskShift(ctx.Deal.MarketCondition)

	// A thin assignment fee leaves no room for renegotiation.
	fee := ctx.Deal.Wholesale.AssignmentFee
	if fee == 0 {
		fee = cashflow.DefaultAssignmentFee(ctx.Deal.ARV)
	}
	if fee < cashflow.MinAssignmentFee {
		risk++
	}
	return clampRisk(risk)
}

func rentalRisk(ctx Context) int {
	risk := 4
	if ctx.Deal.MarketCondition == models.MarketHot {
		risk--
	}

	monthlyNet := ctx.Deal.MonthlyRent - ctx.Deal.MonthlyOperatingExpense
	if monthlyNet < -200 {
		risk += 2
	} else if monthlyNet < 0 {
		risk++
	}

	if propertyAge(ctx) > 50 {
		risk++
	}
	return clampRisk(risk)
}

func leaseOptionRisk(ctx Context) int {
	risk := 6
	if ctx.Deal.LeaseOption.ExerciseProbability < 0.5 {
		risk++
	}
	if ctx.Deal.MarketCondition == models.MarketDeclining {
		risk++
	}
	// A real option fee signals a committed tenant-buyer.
	if ctx.Deal.AcquisitionPrice > 0 &&
		ctx.Deal.LeaseOption.OptionFee >= 0.02*ctx.Deal.AcquisitionPrice {
		risk--
	}
	return clampRisk(risk)
}

func ownerFinanceRisk(ctx Context) int {
	risk := 5
	of := ctx.Deal.OwnerFinance
	if of.SalePrice > 0 && of.DownPayment < 0.10*of.SalePrice {
		risk++
	}
	if of.BalloonMonths > 0 && of.BalloonMonths <= 36 {
		risk++
	}
	if ctx.Deal.MarketCondition == models.MarketHot {
		risk--
	}
	return clampRisk(risk)
}
