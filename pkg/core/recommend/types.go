// Package recommend converts deal metrics and the externally supplied
// risk/location/market scores into the final call: a verdict, a maximum bid,
// an exit plan, a confidence, and a timeline.
package recommend

import "time"

// Verdict is the terminal call on a deal. Exactly one verdict per analysis.
type Verdict string

const (
	VerdictStrongBuy Verdict = "strong_buy"
	VerdictBuy       Verdict = "buy"
	VerdictHold      Verdict = "hold"
	VerdictPass      Verdict = "pass"
	VerdictAvoid     Verdict = "avoid"
)

// ExitPlan is the recommended disposition route. Distinct from the
// strategy package's five-way analysis: "hold" here means wait for better
// conditions rather than a specific rental program.
type ExitPlan string

const (
	PlanWholesale ExitPlan = "wholesale"
	PlanFlip      ExitPlan = "flip"
	PlanRental    ExitPlan = "rental"
	PlanHold      ExitPlan = "hold"
)

// InvestmentMetrics are the deal-level aggregates the verdict machine reads.
// Percent-valued fields (ROI, ProfitMargin, CashOnCash, IRR, CapRate) are in
// percentage points to match the threshold tables; the ARV ratios stay
// fractions. Computed once per deal, read-only afterwards.
type InvestmentMetrics struct {
	ROI                  float64 `json:"roi"`            // percent
	ProfitMargin         float64 `json:"profit_margin"`  // percent of ARV
	PriceToARV           float64 `json:"price_to_arv"`   // fraction
	TotalInvestmentToARV float64 `json:"total_investment_to_arv"`
	CashOnCash           float64 `json:"cash_on_cash"` // percent
	NetProfit            float64 `json:"net_profit"`   // dollars
	GrossProfit          float64 `json:"gross_profit"` // dollars
	BreakEvenPrice       float64 `json:"break_even_price"`
	IRR                  float64 `json:"irr"` // percent; 0 when IRRValid is false
	IRRValid             bool    `json:"irr_valid"`
	CapRate              float64 `json:"cap_rate"` // percent
}

// Recommendation is the final product of an analysis run. Created once,
// never mutated.
type Recommendation struct {
	AnalysisID     string    `json:"analysis_id"`
	Verdict        Verdict   `json:"verdict"`
	Confidence     float64   `json:"confidence"` // 0-100
	MaxBid         float64   `json:"max_bid"`
	TargetProfit   float64   `json:"target_profit"`
	ExitStrategy   ExitPlan  `json:"exit_strategy"`
	TimelineMonths float64   `json:"timeline_months"`
	KeyFactors     []string  `json:"key_factors"`
	Risks          []string  `json:"risks"`
	Opportunities  []string  `json:"opportunities"`
	GeneratedAt    time.Time `json:"generated_at"`
}
