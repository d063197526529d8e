package recommend

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/models"
)

// Input bundles everything the engine needs for one recommendation.
type Input struct {
	Deal       models.DealAssumptions
	Property   models.PropertyAttributes
	ARV        models.ARVEstimate
	Scores     models.ExternalScores
	Holding    holding.Breakdown
	Thresholds Thresholds
}

// Recommend produces the final investment recommendation: verdict, bid
// ceiling, exit plan, timeline, and the narrative factor lists.
func Recommend(in Input) Recommendation {
	metrics := ComputeMetrics(in.Deal, in.ARV, in.Holding)
	verdict := DetermineVerdict(metrics, in.Scores.Risk, in.Thresholds)

	months := in.Deal.HoldingMonths
	if months < 1 {
		months = 1
	}
	totalInvestment := in.Deal.TotalAcquisitionCost() + in.Holding.TotalMonthly*float64(months)

	// With a comparables-backed ARV the direct formula applies; without one,
	// fall back to the target-ROI back-derivation (an approximation).
	var maxBid float64
	if in.ARV.Value > 0 {
		maxBid = MaxBidFromARV(in.ARV.Value, in.Deal.RehabCost, in.Deal.SellingCostRate,
			in.ARV.Confidence, verdict)
	} else {
		maxBid = MaxBid(totalInvestment, in.Deal.RehabCost, in.Deal.SellingCostRate,
			in.ARV.Confidence, verdict)
	}

	plan := DetermineExitPlan(metrics, in.Property.Condition, in.Deal.RehabCost, in.Deal.AcquisitionPrice)

	factors, risks, opportunities := buildNarrative(metrics, in, totalInvestment)

	return Recommendation{
		AnalysisID:     uuid.NewString(),
		Verdict:        verdict,
		Confidence:     CalculateConfidence(metrics, in.Scores, in.ARV.Confidence),
		MaxBid:         maxBid,
		TargetProfit:   totalInvestment * targetROI,
		ExitStrategy:   plan,
		TimelineMonths: EstimateTimeline(plan, in.Property.Condition),
		KeyFactors:     factors,
		Risks:          risks,
		Opportunities:  opportunities,
		GeneratedAt:    time.Now().UTC(),
	}
}

// buildNarrative derives the human-readable factor lists from the same
// numbers the verdict machine saw. Purely mechanical string assembly; the
// display layer owns any further formatting.
func buildNarrative(m InvestmentMetrics, in Input, totalInvestment float64) (factors, risks, opportunities []string) {
	factors = append(factors,
		fmt.Sprintf("projected ROI %.1f%% on $%.0f total investment", m.ROI, totalInvestment),
		fmt.Sprintf("price-to-ARV ratio %.2f", m.PriceToARV),
		fmt.Sprintf("profit margin %.1f%% of ARV", m.ProfitMargin),
	)
	if in.ARV.SampleCount > 0 {
		factors = append(factors,
			fmt.Sprintf("ARV backed by %d comparables (%s confidence)", in.ARV.SampleCount, in.ARV.Confidence))
	}

	if in.Scores.Risk < 10 {
		risks = append(risks, "external risk score in the bottom tier")
	}
	if m.NetProfit < 10000 {
		risks = append(risks, "thin absolute profit; little room for surprises")
	}
	if in.Deal.AcquisitionPrice > 0 && in.Deal.RehabCost > 0.5*in.Deal.AcquisitionPrice {
		risks = append(risks, "rehab budget exceeds half the purchase price")
	}
	if in.Deal.MarketCondition == models.MarketDeclining {
		risks = append(risks, "declining market; ARV may erode during the hold")
	}

	if m.PriceToARV > 0 && m.PriceToARV <= 0.60 {
		opportunities = append(opportunities, "deep discount to ARV at acquisition")
	}
	if m.CapRate >= 8 {
		opportunities = append(opportunities, fmt.Sprintf("cap rate of %.1f%% supports a rental fallback", m.CapRate))
	}
	if in.Scores.Location >= 18 {
		opportunities = append(opportunities, "strong location score")
	}
	if in.Scores.Market >= 18 {
		opportunities = append(opportunities, "favorable market conditions score")
	}
	return factors, risks, opportunities
}
