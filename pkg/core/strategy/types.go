// Package strategy analyzes every exit strategy for a deal — flip,
// wholesale, rental hold, lease option, owner finance — and ranks them by a
// 0-100 recommendation score.
package strategy

import (
	"taxdeedflow/pkg/core/cashflow"
	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/models"
)

// Type enumerates the exit strategies. The declaration order here is the
// canonical enumeration order and breaks ranking ties.
type Type string

const (
	Flip         Type = "flip"
	Wholesale    Type = "wholesale"
	RentalHold   Type = "rental_hold"
	LeaseOption  Type = "lease_option"
	OwnerFinance Type = "owner_finance"
)

// All returns the strategies in enumeration order.
func All() []Type {
	return []Type{Flip, Wholesale, RentalHold, LeaseOption, OwnerFinance}
}

// ReturnMetrics are the per-strategy return figures, all expressed as
// fractions (0.25 = 25%). Derived once, never mutated.
type ReturnMetrics struct {
	GrossROI           float64 `json:"gross_roi"`
	NetROI             float64 `json:"net_roi"`
	AnnualizedROI      float64 `json:"annualized_roi"`
	IRR                float64 `json:"irr"` // annualized; 0 when IRRValid is false
	IRRValid           bool    `json:"irr_valid"`
	CapRate            float64 `json:"cap_rate"`
	CashOnCash         float64 `json:"cash_on_cash"`
	InstantEquity      float64 `json:"instant_equity"`
	RiskAdjustedReturn float64 `json:"risk_adjusted_return"`
}

// Analysis is the full evaluation of one exit strategy.
//
// Invariants: NetProfit = GrossRevenue - TotalInvestment (net of strategy
// specific selling costs), RiskAdjustedReturn = NetROI * (1 - RiskLevel/20),
// RiskLevel in [1,10], RecommendationScore in [0,100].
type Analysis struct {
	Strategy         Type            `json:"strategy"`
	TotalInvestment  float64         `json:"total_investment"`
	GrossRevenue     float64         `json:"gross_revenue"`
	NetProfit        float64         `json:"net_profit"`
	CashRequired     float64         `json:"cash_required"`
	TimeToExitMonths float64         `json:"time_to_exit_months"`
	Metrics          ReturnMetrics   `json:"metrics"`
	RiskLevel        int             `json:"risk_level"`
	Score            int             `json:"recommendation_score"`
	Summary          string          `json:"summary"`
	Considerations   []string        `json:"considerations,omitempty"`
	CashFlows        cashflow.Series `json:"cash_flows"`
}

// Comparison holds all five analyses ranked by score (descending, stable on
// enumeration order) plus the resulting pick and a confidence derived from
// the gap between first and second place.
type Comparison struct {
	Ranked      []Analysis `json:"ranked"`
	Recommended Type       `json:"recommended"`
	Confidence  float64    `json:"confidence"` // 0-95
}

// Context bundles everything the analyzers read: the deal assumptions, the
// property facts, and the precomputed holding-cost breakdown.
type Context struct {
	Deal     models.DealAssumptions
	Property models.PropertyAttributes
	Holding  holding.Breakdown
	AsOfYear int // 0 = current year; pins property-age rules for replayable runs
}
