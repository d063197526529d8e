package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/models"
)

// testContext is the shared profitable-deal fixture: $50k acquisition on a
// $150k ARV with a $20k rehab and $1,100/month carrying cost.
func testContext() Context {
	return Context{
		Deal: models.DealAssumptions{
			AcquisitionPrice: 50000,
			ClosingCosts:     2500,
			RehabCost:        20000,
			ARV:              150000,
			HoldingMonths:    6,
			SellingCostRate:  0.08,

			MonthlyRent:             1400,
			MonthlyOperatingExpense: 450,
			RentalHoldYears:         5,

			AvailableCash:   100000,
			MarketCondition: models.MarketNormal,
			RehabScope:      models.RehabModerate,

			LeaseOption: models.LeaseOptionTerms{
				OptionFee:           3000,
				MonthlyRent:         1500,
				TermMonths:          24,
				ExercisePrice:       140000,
				ExerciseProbability: 0.6,
			},
			OwnerFinance: models.OwnerFinanceTerms{
				SalePrice:          145000,
				DownPayment:        19000,
				AnnualRate:         0.07,
				AmortizationMonths: 360,
				BalloonMonths:      60,
			},
		},
		Property: models.PropertyAttributes{
			YearBuilt: 2000,
			Condition: models.ConditionFair,
		},
		Holding:  holding.Breakdown{TotalMonthly: 1100},
		AsOfYear: 2026,
	}
}

func allAnalyses(ctx Context) []Analysis {
	return []Analysis{
		AnalyzeFlip(ctx),
		AnalyzeWholesale(ctx),
		AnalyzeRentalHold(ctx),
		AnalyzeLeaseOption(ctx),
		AnalyzeOwnerFinance(ctx),
	}
}

func TestAnalyses_SharedInvariants(t *testing.T) {
	for _, a := range allAnalyses(testContext()) {
		assert.GreaterOrEqual(t, a.RiskLevel, 1, "%s risk floor", a.Strategy)
		assert.LessOrEqual(t, a.RiskLevel, 10, "%s risk ceiling", a.Strategy)
		assert.GreaterOrEqual(t, a.Score, 0, "%s score floor", a.Strategy)
		assert.LessOrEqual(t, a.Score, 100, "%s score ceiling", a.Strategy)
		assert.NotEmpty(t, a.CashFlows, "%s cash flows", a.Strategy)
		assert.NotEmpty(t, a.Summary, "%s summary", a.Strategy)

		wantRAR := a.Metrics.NetROI * (1 - float64(a.RiskLevel)/20)
		assert.InDelta(t, wantRAR, a.Metrics.RiskAdjustedReturn, 1e-9,
			"%s risk-adjusted return", a.Strategy)

		// The cash-flow series and the profit figure must agree.
		assert.InDelta(t, a.NetProfit, a.CashFlows.Sum(), 0.01,
			"%s profit vs series sum", a.Strategy)
	}
}

func TestAnalyzeFlip_Numbers(t *testing.T) {
	ctx := testContext()
	a := AnalyzeFlip(ctx)

	// 72,500 acquisition stack + 6 months at 1,100.
	require.InDelta(t, 79100.0, a.TotalInvestment, 1e-9)
	// 150,000 - 12,000 selling costs - 79,100.
	assert.InDelta(t, 58900.0, a.NetProfit, 1e-9)
	assert.InDelta(t, 150000.0, a.GrossRevenue, 1e-9)
	assert.Equal(t, 6.0, a.TimeToExitMonths)

	assert.InDelta(t, 58900.0/79100.0, a.Metrics.NetROI, 1e-9)
	assert.True(t, a.Metrics.IRRValid)
	assert.Greater(t, a.Metrics.IRR, 0.0)

	// ARV 150k less 72.5k in: instant equity (150-50-20)/150.
	assert.InDelta(t, 80000.0/150000.0, a.Metrics.InstantEquity, 1e-9)

	// Risk 6: base 5 + 1 for a 0.4 rehab/price ratio. Score lands at
	// 50 + 30 + 20 - 12 + 5 with cash to spare.
	assert.Equal(t, 6, a.RiskLevel)
	assert.Equal(t, 93, a.Score)
}

func TestAnalyzeWholesale_Numbers(t *testing.T) {
	a := AnalyzeWholesale(testContext())

	// $1,000 earnest + $500 marketing + 20% of closing costs.
	require.InDelta(t, 2000.0, a.TotalInvestment, 1e-9)
	// Default fee max($5k, 5% of 150k) = 7,500.
	assert.InDelta(t, 7500.0, a.GrossRevenue, 1e-9)
	assert.InDelta(t, 5500.0, a.NetProfit, 1e-9)
	assert.Equal(t, 1.0, a.TimeToExitMonths)
	assert.InDelta(t, 2.75, a.Metrics.NetROI, 1e-9)

	// Risk 3, both speed bonuses, capped at 100.
	assert.Equal(t, 3, a.RiskLevel)
	assert.Equal(t, 100, a.Score)
}

func TestAnalyzeRentalHold_CapRate(t *testing.T) {
	ctx := testContext()
	a := AnalyzeRentalHold(ctx)

	assert.Equal(t, 60.0, a.TimeToExitMonths)
	// (1400-450)*12 / 150000.
	assert.InDelta(t, 11400.0/150000.0, a.Metrics.CapRate, 1e-9)
	assert.InDelta(t, a.NetProfit+a.TotalInvestment, a.GrossRevenue, 1e-9)
	assert.Equal(t, 4, a.RiskLevel)
}

func TestAnalyzeLeaseOption_ExpectedValue(t *testing.T) {
	ctx := testContext()
	a := AnalyzeLeaseOption(ctx)

	assert.Equal(t, 24.0, a.TimeToExitMonths)
	// Option fee offsets the cash the deal ties up.
	assert.InDelta(t, 72500.0-3000.0, a.CashRequired, 1e-9)
	// A committed option fee (>= 2% of price) de-risks the base 6 to 5.
	assert.Equal(t, 5, a.RiskLevel)
	require.Len(t, a.Considerations, 1)
	assert.Contains(t, a.Considerations[0], "exercised")
}

func TestAnalyzeOwnerFinance_Balloon(t *testing.T) {
	ctx := testContext()
	a := AnalyzeOwnerFinance(ctx)

	assert.Equal(t, 60.0, a.TimeToExitMonths)
	// 10%+ down and a 60-month balloon keep the base risk of 5.
	assert.Equal(t, 5, a.RiskLevel)

	// Short balloons add refinancing risk and a consideration.
	ctx.Deal.OwnerFinance.BalloonMonths = 24
	short := AnalyzeOwnerFinance(ctx)
	assert.Equal(t, 6, short.RiskLevel)
	assert.NotEmpty(t, short.Considerations)
}

func TestRisk_MarketShift(t *testing.T) {
	ctx := testContext()
	normal := flipRisk(ctx)

	ctx.Deal.MarketCondition = models.MarketHot
	assert.Equal(t, normal-1, flipRisk(ctx))

	ctx.Deal.MarketCondition = models.MarketSlow
	assert.Equal(t, normal+1, flipRisk(ctx))

	ctx.Deal.MarketCondition = models.MarketDeclining
	assert.Equal(t, normal+2, flipRisk(ctx))
}

func TestRisk_ClampAtTen(t *testing.T) {
	ctx := testContext()
	ctx.Deal.MarketCondition = models.MarketDeclining
	ctx.Deal.RehabCost = 40000 // 0.8 ratio
	ctx.Property.YearBuilt = 1950

	// 5 + 2 + 2 + 1 hits the ceiling exactly.
	assert.Equal(t, 10, flipRisk(ctx))

	ctx.Deal.RehabCost = 60000
	assert.Equal(t, 10, flipRisk(ctx))
}

func TestScore_CashShortfallPenalty(t *testing.T) {
	ctx := testContext()
	flush := AnalyzeFlip(ctx)

	// Half the required cash: penalty min(20, (79100/40000-1)*10) ~ 9.8.
	ctx.Deal.AvailableCash = 40000
	tight := AnalyzeFlip(ctx)
	assert.Less(t, tight.Score, flush.Score)

	// Unknown available cash (0) applies no penalty.
	ctx.Deal.AvailableCash = 0
	unknown := AnalyzeFlip(ctx)
	assert.Equal(t, flush.Score, unknown.Score)
}

func TestScore_BadDealScoresLow(t *testing.T) {
	ctx := testContext()
	ctx.Deal.AcquisitionPrice = 160000 // over ARV
	ctx.Deal.RehabCost = 40000
	a := AnalyzeFlip(ctx)

	assert.Less(t, a.NetProfit, 0.0)
	assert.Less(t, a.Score, 50)
	assert.GreaterOrEqual(t, a.Score, 0)
}

func TestCompare_RankingAndConfidence(t *testing.T) {
	c := Compare(testContext())

	require.Len(t, c.Ranked, 5)
	for i := 1; i < len(c.Ranked); i++ {
		assert.GreaterOrEqual(t, c.Ranked[i-1].Score, c.Ranked[i].Score)
	}
	assert.Equal(t, c.Ranked[0].Strategy, c.Recommended)

	gap := float64(c.Ranked[0].Score - c.Ranked[1].Score)
	want := 50 + gap
	if want > 95 {
		want = 95
	}
	assert.InDelta(t, want, c.Confidence, 1e-9)
	assert.LessOrEqual(t, c.Confidence, 95.0)
}

func TestAll_EnumerationOrder(t *testing.T) {
	assert.Equal(t, []Type{Flip, Wholesale, RentalHold, LeaseOption, OwnerFinance}, All())
}
