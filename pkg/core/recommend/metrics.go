package recommend

import (
	"math"

	"taxdeedflow/pkg/core/cashflow"
	"taxdeedflow/pkg/core/finance"
	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/models"
)

// ComputeMetrics derives the deal-level aggregates independently of any
// single exit strategy: a straight buy-fix-sell view at the supplied ARV.
// Percent fields come out in percentage points to line up with the verdict
// thresholds.
func ComputeMetrics(deal models.DealAssumptions, arv models.ARVEstimate, costs holding.Breakdown) InvestmentMetrics {
	saleValue := arv.Value
	if saleValue <= 0 {
		saleValue = deal.ARV
	}

	months := deal.HoldingMonths
	if months < 1 {
		months = 1
	}

	holdingTotal := costs.TotalMonthly * float64(months)
	totalInvestment := deal.TotalAcquisitionCost() + holdingTotal
	sellingCosts := saleValue * deal.SellingCostRate

	netProfit := saleValue - sellingCosts - totalInvestment
	grossProfit := saleValue - deal.AcquisitionPrice

	cashInvested := totalInvestment
	if deal.Financing != nil {
		cashInvested -= deal.Financing.LoanAmount
		if cashInvested < 0 {
			cashInvested = 0
		}
	}

	m := InvestmentMetrics{
		NetProfit:   netProfit,
		GrossProfit: grossProfit,
	}

	if totalInvestment > 0 {
		m.ROI = netProfit / totalInvestment * 100
	}
	if saleValue > 0 {
		m.ProfitMargin = netProfit / saleValue * 100
		m.PriceToARV = deal.AcquisitionPrice / saleValue
		m.TotalInvestmentToARV = totalInvestment / saleValue
	}
	if cashInvested > 0 {
		m.CashOnCash = netProfit / cashInvested * 100
	}
	if deal.SellingCostRate < 1 {
		// The sale price at which the deal washes out to zero.
		m.BreakEvenPrice = totalInvestment / (1 - deal.SellingCostRate)
	}
	if saleValue > 0 {
		m.CapRate = (deal.MonthlyRent - deal.MonthlyOperatingExpense) * 12 / saleValue * 100
	}

	// IRR on the flip-shaped series at this ARV; the verdict machine treats
	// an undefined IRR as simply absent.
	flipDeal := deal
	flipDeal.ARV = saleValue
	monthlyIRR := finance.IRR(cashflow.GenerateFlip(flipDeal, costs.TotalMonthly).Amounts())
	if !math.IsNaN(monthlyIRR) {
		m.IRR = finance.AnnualizeMonthly(monthlyIRR) * 100
		m.IRRValid = true
	}
	return m
}
