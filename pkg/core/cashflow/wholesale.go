package cashflow

import "taxdeedflow/pkg/models"

// Wholesale defaults. The assignor never closes, so only earnest money,
// marketing, and a slice of closing costs are at risk.
const (
	DefaultEarnestMoney      = 1000.0
	DefaultMarketingCost     = 500.0
	MinAssignmentFee         = 5000.0
	AssignmentFeeARVFraction = 0.05
	wholesaleClosingShare    = 0.20
)

// DefaultAssignmentFee is the fallback fee when the deal does not specify
// one: the larger of $5,000 and 5% of ARV.
func DefaultAssignmentFee(arv float64) float64 {
	fee := arv * AssignmentFeeARVFraction
	if fee < MinAssignmentFee {
		fee = MinAssignmentFee
	}
	return fee
}

// WholesaleInvestment is the cash at risk in an assignment: earnest money,
// marketing spend, and 20% of the closing costs (inspection/title work done
// before assignment).
func WholesaleInvestment(d models.DealAssumptions) float64 {
	earnest := d.Wholesale.EarnestMoney
	if earnest == 0 {
		earnest = DefaultEarnestMoney
	}
	marketing := d.Wholesale.MarketingCost
	if marketing == 0 {
		marketing = DefaultMarketingCost
	}
	return earnest + marketing + d.ClosingCosts*wholesaleClosingShare
}

// GenerateWholesale builds the two-entry assignment series: the at-risk
// outlay at period 0 and the assignment fee at the end of the buyer-search
// window (one period out).
func GenerateWholesale(d models.DealAssumptions) Series {
	fee := d.Wholesale.AssignmentFee
	if fee == 0 {
		fee = DefaultAssignmentFee(d.ARV)
	}

	return Series{
		{Period: 0, Amount: -WholesaleInvestment(d), Label: "earnest + marketing + closing share"},
		{Period: 1, Amount: fee, Label: "assignment fee"},
	}
}
