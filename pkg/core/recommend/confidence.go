package recommend

import "taxdeedflow/pkg/models"

// Confidence weighting: comparables quality dominates (40 points), the
// external risk/location/market scores add 30, metric quality 20, and deal
// clarity 13, capped at 100. The deliberate >100 raw ceiling means a deal
// does not need perfection in every bucket to reach full confidence.

func comparablesPoints(c models.ConfidenceLevel) float64 {
	switch c {
	case models.ConfidenceHigh:
		return 40
	case models.ConfidenceMedium:
		return 28
	}
	return 16
}

// normalizeScore maps a 0-25 external score onto 0-10 points.
func normalizeScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 25 {
		s = 25
	}
	return s / 25 * 10
}

// CalculateConfidence scores how much to trust the overall recommendation.
func CalculateConfidence(m InvestmentMetrics, scores models.ExternalScores, comps models.ConfidenceLevel) float64 {
	total := comparablesPoints(comps)

	total += normalizeScore(scores.Risk) +
		normalizeScore(scores.Location) +
		normalizeScore(scores.Market)

	// Metric quality: each independently strong signal adds points.
	if m.ROI >= 20 {
		total += 6
	}
	if m.ProfitMargin >= 15 {
		total += 5
	}
	if m.PriceToARV > 0 && m.PriceToARV <= 0.70 {
		total += 5
	}
	if m.NetProfit >= 20000 {
		total += 4
	}

	// Deal clarity: unambiguous deals (clearly great or clearly dead) are
	// easier to call than the mushy middle.
	if m.ROI >= 40 || m.ROI < 5 {
		total += 7
	}
	if m.ProfitMargin >= 25 || m.ProfitMargin < 3 {
		total += 6
	}

	if total > 100 {
		total = 100
	}
	return total
}
