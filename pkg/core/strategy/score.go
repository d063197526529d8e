package strategy

import "math"

// calculateScore converts an analysis into the 0-100 recommendation score:
//
//	base 50
//	+ min(30, netROI * 50)        return contribution
//	+ min(20, IRR * 40)           velocity contribution (0 if IRR undefined)
//	- riskLevel * 2               risk penalty
//	+ up to 10 for fast exits     flip and wholesale only
//	- up to 20 cash shortfall     when required cash exceeds available
//
// Negative ROI/IRR subtract without a floor of their own; the final clamp to
// [0,100] handles the extremes.
func calculateScore(a Analysis, availableCash float64) int {
	score := 50.0

	score += math.Min(30, a.Metrics.NetROI*50)

	irr := 0.0
	if a.Metrics.IRRValid {
		irr = a.Metrics.IRR
	}
	score += math.Min(20, irr*40)

	score -= float64(a.RiskLevel) * 2

	if a.Strategy == Flip || a.Strategy == Wholesale {
		if a.TimeToExitMonths <= 6 {
			score += 5
		}
		if a.TimeToExitMonths <= 3 {
			score += 5
		}
	}

	if availableCash > 0 && a.CashRequired > availableCash {
		score -= math.Min(20, (a.CashRequired/availableCash-1)*10)
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
