package recommend

// meetsTier checks the four-part gate for one verdict tier: return high
// enough, margin thick enough, purchase cheap enough relative to ARV, and
// the external risk score safe enough.
func meetsTier(m InvestmentMetrics, riskScore float64, tier TierThresholds) bool {
	return m.ROI >= tier.MinROI &&
		m.ProfitMargin >= tier.MinMargin &&
		m.PriceToARV <= tier.MaxPriceToARV &&
		riskScore >= tier.MinRiskScore
}

// DetermineVerdict runs the tier cascade in strict priority order. The
// net-profit floor is absolute: a deal that cannot clear it is an avoid no
// matter how pretty the ratios look. Below that, the first tier whose gate
// passes wins; the pass tier only requires minimal ROI and a sane
// price-to-ARV; everything else is an avoid.
func DetermineVerdict(m InvestmentMetrics, riskScore float64, t Thresholds) Verdict {
	if m.NetProfit < t.MinNetProfit {
		return VerdictAvoid
	}

	switch {
	case meetsTier(m, riskScore, t.StrongBuy):
		return VerdictStrongBuy
	case meetsTier(m, riskScore, t.Buy):
		return VerdictBuy
	case meetsTier(m, riskScore, t.Hold):
		return VerdictHold
	case m.ROI >= t.Pass.MinROI && m.PriceToARV <= t.Pass.MaxPriceToARV:
		return VerdictPass
	}
	return VerdictAvoid
}
