package strategy

import (
	"fmt"
	"math"
	"sort"

	"taxdeedflow/pkg/core/cashflow"
	"taxdeedflow/pkg/core/finance"
)

// safeDiv guards the many ratio computations against zero denominators;
// degenerate inputs yield a 0 ratio, never a panic or Inf.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// seriesReturns derives the solver-based metrics shared by every analyzer:
// net/gross ROI, the annualized ROI over the hold, and the annualized IRR of
// the monthly series (flagged invalid when no IRR exists).
func seriesReturns(series cashflow.Series, totalInvestment, netProfit, grossRevenue float64, months int) ReturnMetrics {
	m := ReturnMetrics{
		NetROI:   safeDiv(netProfit, totalInvestment),
		GrossROI: safeDiv(grossRevenue-totalInvestment, totalInvestment),
	}

	if months > 0 && m.NetROI > -1 {
		m.AnnualizedROI = math.Pow(1+m.NetROI, 12/float64(months)) - 1
	}

	monthlyIRR := finance.IRR(series.Amounts())
	if !math.IsNaN(monthlyIRR) {
		m.IRR = finance.AnnualizeMonthly(monthlyIRR)
		m.IRRValid = true
	}
	return m
}

// instantEquity is the value captured at the courthouse steps: ARV less
// purchase and rehab, as a fraction of ARV.
func instantEquity(ctx Context) float64 {
	return safeDiv(ctx.Deal.ARV-ctx.Deal.AcquisitionPrice-ctx.Deal.RehabCost, ctx.Deal.ARV)
}

// cashAfterFinancing nets acquisition debt out of the cash a strategy needs.
func cashAfterFinancing(ctx Context, gross float64) float64 {
	if ctx.Deal.Financing != nil {
		gross -= ctx.Deal.Financing.LoanAmount
	}
	if gross < 0 {
		return 0
	}
	return gross
}

func finishAnalysis(ctx Context, a Analysis, riskLevel int) Analysis {
	a.RiskLevel = riskLevel
	a.Metrics.RiskAdjustedReturn = a.Metrics.NetROI * (1 - float64(riskLevel)/20)
	a.Metrics.InstantEquity = instantEquity(ctx)
	a.Score = calculateScore(a, ctx.Deal.AvailableCash)
	return a
}

// AnalyzeFlip evaluates renovate-and-resell: full acquisition plus carrying
// costs in, ARV net of selling costs out.
func AnalyzeFlip(ctx Context) Analysis {
	d := ctx.Deal
	months := d.HoldingMonths
	if months < 1 {
		months = 1
	}

	series := cashflow.GenerateFlip(d, ctx.Holding.TotalMonthly)
	totalInvestment := d.TotalAcquisitionCost() + ctx.Holding.TotalMonthly*float64(months)
	sellingCosts := d.ARV * d.SellingCostRate
	netProfit := d.ARV - sellingCosts - totalInvestment

	a := Analysis{
		Strategy:         Flip,
		TotalInvestment:  totalInvestment,
		GrossRevenue:     d.ARV,
		NetProfit:        netProfit,
		CashRequired:     cashAfterFinancing(ctx, totalInvestment),
		TimeToExitMonths: float64(months),
		CashFlows:        series,
		Summary:          fmt.Sprintf("Renovate and resell within %d months", months),
	}
	a.Metrics = seriesReturns(series, totalInvestment, netProfit, d.ARV, months)
	a.Metrics.CashOnCash = safeDiv(netProfit, a.CashRequired)

	if d.AcquisitionPrice > 0 && d.RehabCost > 0.5*d.AcquisitionPrice {
		a.Considerations = append(a.Considerations,
			"rehab budget exceeds half the purchase price; scope creep is the main exposure")
	}
	return finishAnalysis(ctx, a, flipRisk(ctx))
}

// AnalyzeWholesale evaluates contract assignment: minimal cash at risk, one
// period to find the end buyer.
func AnalyzeWholesale(ctx Context) Analysis {
	d := ctx.Deal
	series := cashflow.GenerateWholesale(d)
	investment := cashflow.WholesaleInvestment(d)

	fee := d.Wholesale.AssignmentFee
	if fee == 0 {
		fee = cashflow.DefaultAssignmentFee(d.ARV)
	}
	netProfit := fee - investment

	a := Analysis{
		Strategy:         Wholesale,
		TotalInvestment:  investment,
		GrossRevenue:     fee,
		NetProfit:        netProfit,
		CashRequired:     investment,
		TimeToExitMonths: 1,
		CashFlows:        series,
		Summary:          "Assign the contract to an end buyer without closing",
	}
	a.Metrics = seriesReturns(series, investment, netProfit, fee, 1)
	a.Metrics.CashOnCash = safeDiv(netProfit, investment)

	if fee < cashflow.MinAssignmentFee {
		a.Considerations = append(a.Considerations,
			"assignment fee below the $5,000 floor leaves no renegotiation room")
	}
	return finishAnalysis(ctx, a, wholesaleRisk(ctx))
}

// AnalyzeRentalHold evaluates buy-and-hold: monthly net rent plus an
// appreciated sale at the end of the hold.
func AnalyzeRentalHold(ctx Context) Analysis {
	d := ctx.Deal
	months := cashflow.RentalHoldMonths(d)
	series := cashflow.GenerateRentalHold(d)

	totalInvestment := d.TotalAcquisitionCost()
	netProfit := series.Sum()
	monthlyNet := d.MonthlyRent - d.MonthlyOperatingExpense

	a := Analysis{
		Strategy:         RentalHold,
		TotalInvestment:  totalInvestment,
		GrossRevenue:     netProfit + totalInvestment,
		NetProfit:        netProfit,
		CashRequired:     cashAfterFinancing(ctx, totalInvestment),
		TimeToExitMonths: float64(months),
		CashFlows:        series,
		Summary:          fmt.Sprintf("Hold as a rental for %d months, then sell", months),
	}
	a.Metrics = seriesReturns(series, totalInvestment, netProfit, a.GrossRevenue, months)
	a.Metrics.CapRate = safeDiv(monthlyNet*12, d.ARV)
	a.Metrics.CashOnCash = safeDiv(monthlyNet*12, a.CashRequired)

	if monthlyNet < 0 {
		a.Considerations = append(a.Considerations,
			fmt.Sprintf("negative monthly cash flow of $%.0f; the hold depends entirely on appreciation", -monthlyNet))
	}
	return finishAnalysis(ctx, a, rentalRisk(ctx))
}

// AnalyzeLeaseOption evaluates rent-to-own as a probability-weighted blend
// of the tenant exercising and walking away.
func AnalyzeLeaseOption(ctx Context) Analysis {
	d := ctx.Deal
	months := d.LeaseOption.TermMonths
	if months < 1 {
		months = 1
	}

	expected, outcomes := cashflow.LeaseOptionOutcomes(d)
	series := cashflow.GenerateLeaseOption(d)
	totalInvestment := d.TotalAcquisitionCost()

	a := Analysis{
		Strategy:         LeaseOption,
		TotalInvestment:  totalInvestment,
		GrossRevenue:     expected + totalInvestment,
		NetProfit:        expected,
		CashRequired:     cashAfterFinancing(ctx, totalInvestment-d.LeaseOption.OptionFee),
		TimeToExitMonths: float64(months),
		CashFlows:        series,
		Summary:          fmt.Sprintf("Lease with a purchase option over %d months", months),
		Considerations: []string{
			fmt.Sprintf("profit if exercised $%.0f vs walk-away $%.0f",
				outcomes[0].Profit, outcomes[1].Profit),
		},
	}
	a.Metrics = seriesReturns(series, totalInvestment, expected, a.GrossRevenue, months)
	a.Metrics.CashOnCash = safeDiv((d.LeaseOption.MonthlyRent-d.MonthlyOperatingExpense)*12, a.CashRequired)
	return finishAnalysis(ctx, a, leaseOptionRisk(ctx))
}

// AnalyzeOwnerFinance evaluates carrying a note for the buyer: down payment
// up front, amortizing payments, and any balloon payoff.
func AnalyzeOwnerFinance(ctx Context) Analysis {
	d := ctx.Deal
	series := cashflow.GenerateOwnerFinance(d)
	months := len(series) - 1

	totalInvestment := d.TotalAcquisitionCost()
	netProfit := series.Sum()

	a := Analysis{
		Strategy:         OwnerFinance,
		TotalInvestment:  totalInvestment,
		GrossRevenue:     netProfit + totalInvestment,
		NetProfit:        netProfit,
		CashRequired:     cashAfterFinancing(ctx, totalInvestment-d.OwnerFinance.DownPayment),
		TimeToExitMonths: float64(months),
		CashFlows:        series,
		Summary:          fmt.Sprintf("Carry the note for the buyer over %d months", months),
	}
	a.Metrics = seriesReturns(series, totalInvestment, netProfit, a.GrossRevenue, months)
	a.Metrics.CashOnCash = safeDiv(series.Sum()/math.Max(float64(months)/12, 1), a.CashRequired)

	if d.OwnerFinance.BalloonMonths > 0 && d.OwnerFinance.BalloonMonths <= 36 {
		a.Considerations = append(a.Considerations,
			"short balloon term; buyer refinancing risk lands back on the seller")
	}
	return finishAnalysis(ctx, a, ownerFinanceRisk(ctx))
}

// Compare runs all five analyzers in enumeration order and ranks them by
// score, descending. The sort is stable, so ties keep enumeration order.
// Confidence in the pick grows with the gap to the runner-up and is capped
// at 95 — no strategy call is ever certain.
func Compare(ctx Context) Comparison {
	analyses := []Analysis{
		AnalyzeFlip(ctx),
		AnalyzeWholesale(ctx),
		AnalyzeRentalHold(ctx),
		AnalyzeLeaseOption(ctx),
		AnalyzeOwnerFinance(ctx),
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Score > analyses[j].Score
	})

	confidence := 50.0
	if len(analyses) > 1 {
		confidence += float64(analyses[0].Score - analyses[1].Score)
	}
	if confidence > 95 {
		confidence = 95
	}

	return Comparison{
		Ranked:      analyses,
		Recommended: analyses[0].Strategy,
		Confidence:  confidence,
	}
}
