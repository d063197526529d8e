package recommend

import (
	"math"

	"taxdeedflow/pkg/models"
)

// targetROI drives the no-ARV bid back-derivation: assume the deal should
// clear a 30% return and work backwards to the sale price that delivers it.
// This is a heuristic proxy, not a verified formula; prefer MaxBidFromARV
// whenever comparables exist.
const targetROI = 0.30

// baseMultiplier is the confidence-adjusted "70% rule" factor. Weaker
// comparables shave the multiplier to protect the margin of error.
func baseMultiplier(confidence models.ConfidenceLevel) float64 {
	switch confidence {
	case models.ConfidenceHigh:
		return 0.70
	case models.ConfidenceMedium:
		return 0.68
	}
	return 0.65
}

// verdictShift tilts the multiplier by how conservative the verdict calls
// for being: strong buys can stretch slightly, avoids pull way back.
func verdictShift(v Verdict) float64 {
	switch v {
	case VerdictStrongBuy:
		return 0.02
	case VerdictPass:
		return -0.02
	case VerdictAvoid:
		return -0.05
	}
	return 0
}

// MaxBidFromARV computes the bid ceiling when a reliable ARV exists:
//
//	maxBid = ARV*multiplier - rehab - ARV*sellingCostRate
//
// floored at zero and rounded to the nearest $100. This is the preferred
// path when comparables back the ARV.
func MaxBidFromARV(arv, rehabCost, sellingCostRate float64, confidence models.ConfidenceLevel, v Verdict) float64 {
	if arv <= 0 {
		return 0
	}

	multiplier := baseMultiplier(confidence) + verdictShift(v)
	bid := arv*multiplier - rehabCost - arv*sellingCostRate
	if bid < 0 {
		return 0
	}
	return math.Round(bid/100) * 100
}

// MaxBid is the indirect path for deals with no usable ARV: back-derive the
// sale price from total investment assuming the target ROI, then apply the
// same confidence-adjusted multiplier. Treat the result as an approximation,
// not a guaranteed ceiling.
func MaxBid(totalInvestment, rehabCost, sellingCostRate float64, confidence models.ConfidenceLevel, v Verdict) float64 {
	if totalInvestment <= 0 || sellingCostRate >= 1 {
		return 0
	}

	estimatedARV := totalInvestment * (1 + targetROI) / (1 - sellingCostRate)
	return MaxBidFromARV(estimatedARV, rehabCost, sellingCostRate, confidence, v)
}
