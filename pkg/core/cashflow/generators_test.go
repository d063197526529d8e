package cashflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdeedflow/pkg/core/finance"
	"taxdeedflow/pkg/models"
)

func profitableDeal() models.DealAssumptions {
	return models.DealAssumptions{
		AcquisitionPrice: 50000,
		ClosingCosts:     2500,
		RehabCost:        20000,
		ARV:              150000,
		HoldingMonths:    6,
		SellingCostRate:  0.08,
		MonthlyRent:      1400,
		MonthlyOperatingExpense: 450,
		RentalHoldYears:  5,
		MarketCondition:  models.MarketNormal,
	}
}

func TestGenerateFlip_Shape(t *testing.T) {
	d := profitableDeal()
	series := GenerateFlip(d, 800)

	// holdingPeriods + 1 entries, contiguous periods.
	require.Len(t, series, 7)
	for i, e := range series {
		assert.Equal(t, i, e.Period)
	}

	// Entry 0 is the sole negative entry: -(50000+2500+20000).
	assert.InDelta(t, -72500.0, series[0].Amount, 1e-9)
	for _, e := range series[1:] {
		if e.Period < 6 {
			assert.InDelta(t, -800.0, e.Amount, 1e-9)
		}
	}

	// Terminal: 150000 - 12000 selling - 800 final month = 137200.
	assert.InDelta(t, 137200.0, series[6].Amount, 1e-9)
}

func TestGenerateFlip_SumMatchesProfit(t *testing.T) {
	d := profitableDeal()
	series := GenerateFlip(d, 800)
	// Profit = ARV - selling - acquisition - 6 months holding
	//        = 150000 - 12000 - 72500 - 4800 = 60700.
	assert.InDelta(t, 60700.0, series.Sum(), 1e-9)
}

func TestGenerateRentalHold_Shape(t *testing.T) {
	d := profitableDeal()
	series := GenerateRentalHold(d)

	require.Len(t, series, 61) // 5 years + terminal
	assert.InDelta(t, -72500.0, series[0].Amount, 1e-9)

	// Monthly net = 1400 - 450 = 950.
	assert.InDelta(t, 950.0, series[30].Amount, 1e-9)

	// Terminal: ARV appreciated at the default 3% over 5 years, net of
	// selling costs, plus the last month's rent.
	appreciated := 150000 * math.Pow(1.03, 5)
	expected := appreciated - appreciated*0.08 + 950
	assert.InDelta(t, expected, series[60].Amount, 1e-6)
}

func TestRentalHoldMonths_Floor(t *testing.T) {
	d := profitableDeal()
	d.RentalHoldYears = 0
	d.HoldingMonths = 6
	assert.Equal(t, 12, RentalHoldMonths(d)) // floored to a year

	d.HoldingMonths = 24
	assert.Equal(t, 24, RentalHoldMonths(d))

	d.RentalHoldYears = 3
	assert.Equal(t, 36, RentalHoldMonths(d))
}

func TestGenerateWholesale_DefaultFee(t *testing.T) {
	d := profitableDeal()
	series := GenerateWholesale(d)

	require.Len(t, series, 2)

	// Investment: 1000 earnest + 500 marketing + 20% of 2500 closing = 2000.
	assert.InDelta(t, -2000.0, series[0].Amount, 1e-9)

	// Fee: max(5000, 150000*0.05) = 7500.
	assert.InDelta(t, 7500.0, series[1].Amount, 1e-9)

	// The short-horizon return must be representable, not NaN.
	irr := finance.IRR(series.Amounts())
	require.False(t, math.IsNaN(irr))
	assert.Greater(t, irr, 1.0) // well above 100% per period
}

func TestDefaultAssignmentFee_Floor(t *testing.T) {
	// 5% of a $60k ARV is $3,000 — the $5,000 floor wins.
	assert.Equal(t, 5000.0, DefaultAssignmentFee(60000))
	assert.Equal(t, 7500.0, DefaultAssignmentFee(150000))
}

func TestLeaseOptionOutcomes_ExpectedValueBlend(t *testing.T) {
	d := profitableDeal()
	d.LeaseOption = models.LeaseOptionTerms{
		OptionFee:           3000,
		MonthlyRent:         1500,
		TermMonths:          24,
		ExercisePrice:       145000,
		ExerciseProbability: 0.6,
	}

	expected, outcomes := LeaseOptionOutcomes(d)

	// Each scenario: optionFee + 24*(1500-450) - 72500 + terminal.
	base := 3000.0 + 24*1050.0 - 72500.0
	exercised := base + 145000
	walkAway := base + 150000*(1-0.08)
	assert.InDelta(t, exercised, outcomes[0].Profit, 1e-9)
	assert.InDelta(t, walkAway, outcomes[1].Profit, 1e-9)
	assert.Equal(t, OutcomeExercised, outcomes[0].Kind)
	assert.Equal(t, OutcomeNotExercised, outcomes[1].Kind)

	// E[profit] = 0.6*exercised + 0.4*walkAway.
	assert.InDelta(t, 0.6*exercised+0.4*walkAway, expected, 1e-9)
}

func TestGenerateLeaseOption_SumEqualsExpectedProfit(t *testing.T) {
	d := profitableDeal()
	d.LeaseOption = models.LeaseOptionTerms{
		OptionFee:           3000,
		MonthlyRent:         1500,
		TermMonths:          24,
		ExercisePrice:       145000,
		ExerciseProbability: 0.6,
	}

	expected, _ := LeaseOptionOutcomes(d)
	series := GenerateLeaseOption(d)
	require.Len(t, series, 25)
	assert.InDelta(t, expected, series.Sum(), 1e-6)
}

func TestLeaseOption_ProbabilityClamped(t *testing.T) {
	d := profitableDeal()
	d.LeaseOption = models.LeaseOptionTerms{
		OptionFee:           1000,
		MonthlyRent:         1200,
		TermMonths:          12,
		ExercisePrice:       140000,
		ExerciseProbability: 1.7, // bad input; clamp to 1
	}

	expected, outcomes := LeaseOptionOutcomes(d)
	assert.InDelta(t, outcomes[0].Profit, expected, 1e-9)
}

func TestGenerateOwnerFinance_Balloon(t *testing.T) {
	d := profitableDeal()
	d.OwnerFinance = models.OwnerFinanceTerms{
		SalePrice:          140000,
		DownPayment:        14000,
		AnnualRate:         0.07,
		AmortizationMonths: 360,
		BalloonMonths:      60,
	}

	series := GenerateOwnerFinance(d)
	require.Len(t, series, 61)

	// Period 0: -(72500) + 14000 down.
	assert.InDelta(t, -58500.0, series[0].Amount, 1e-9)

	payment := finance.MonthlyPayment(126000, 0.07, 360)
	assert.InDelta(t, payment, series[1].Amount, 1e-9)

	// Final entry: payment plus the balance still owed at month 60.
	balloon := finance.RemainingBalance(126000, 0.07, 360, 60)
	assert.Greater(t, balloon, 100000.0) // 30-year schedule barely amortizes in 5 years
	assert.InDelta(t, payment+balloon, series[60].Amount, 1e-9)
}

func TestGenerateOwnerFinance_FullyAmortizing(t *testing.T) {
	d := profitableDeal()
	d.OwnerFinance = models.OwnerFinanceTerms{
		SalePrice:          100000,
		DownPayment:        10000,
		AnnualRate:         0.06,
		AmortizationMonths: 120,
	}

	series := GenerateOwnerFinance(d)
	require.Len(t, series, 121)
	assert.Equal(t, "final note payment", series[120].Label)
}
