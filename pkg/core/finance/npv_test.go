package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV_ZeroRateIsSum(t *testing.T) {
	// -1000 + 500 + 500 + 500 = 500 exactly at 0%.
	npv := NPV([]float64{-1000, 500, 500, 500}, 0)
	assert.InDelta(t, 500.0, npv, 1e-9)
}

func TestNPV_Empty(t *testing.T) {
	assert.Equal(t, 0.0, NPV(nil, 0.1))
}

func TestNPV_RateNegativeOne(t *testing.T) {
	// Discounting past period 0 at -100% divides by zero; defined as +Inf.
	assert.True(t, math.IsInf(NPV([]float64{-100, 50}, -1), 1))
	// A single-entry series has nothing to discount.
	assert.Equal(t, -100.0, NPV([]float64{-100}, -1))
}

func TestNPV_MonotonicDecreasingInRate(t *testing.T) {
	// Front-loaded-negative series: higher discount rates shrink the later
	// positive flows, so NPV strictly decreases.
	cf := []float64{-10000, 3000, 3000, 3000, 3000}
	npv5 := NPV(cf, 0.05)
	npv10 := NPV(cf, 0.10)
	npv15 := NPV(cf, 0.15)
	assert.Greater(t, npv5, npv10)
	assert.Greater(t, npv10, npv15)
}

func TestNPVDerivative(t *testing.T) {
	// Single entry: constant in rate.
	assert.Equal(t, 0.0, NPVDerivative([]float64{-100}, 0.1))
	assert.Equal(t, 0.0, NPVDerivative(nil, 0.1))

	// Two periods at rate 0: d/dr [100/(1+r)] = -100/(1+r)^2 = -100.
	assert.InDelta(t, -100.0, NPVDerivative([]float64{-90, 100}, 0), 1e-9)
}

func TestIRR_SimpleTwoPeriod(t *testing.T) {
	// -1000 now, 1100 next period: exact IRR is 10%.
	irr := IRR([]float64{-1000, 1100})
	require.False(t, math.IsNaN(irr))
	assert.InDelta(t, 0.10, irr, 0.001)
}

func TestIRR_ZeroesNPV(t *testing.T) {
	// The found rate must (approximately) zero the series' NPV.
	cases := [][]float64{
		{-1000, 300, 300, 300, 300},
		{-5000, 0, 0, 0, 7000},
		{-1500, 7500},
		{-2400, 100, 100, 100, 100, 100, 2500},
	}
	for _, cf := range cases {
		irr := IRR(cf)
		require.False(t, math.IsNaN(irr), "expected IRR for %v", cf)
		assert.InDelta(t, 0.0, NPV(cf, irr), 0.01, "NPV(cf, IRR) should be ~0 for %v", cf)
	}
}

func TestIRR_NoSignChange(t *testing.T) {
	// All-negative and all-positive series have no root.
	assert.True(t, math.IsNaN(IRR([]float64{-10000, -5000, -3000})))
	assert.True(t, math.IsNaN(IRR([]float64{10000, 5000, 3000})))
}

func TestIRR_TooFewEntries(t *testing.T) {
	assert.True(t, math.IsNaN(IRR([]float64{-10000})))
	assert.True(t, math.IsNaN(IRR(nil)))
}

func TestIRR_HighVelocityWholesale(t *testing.T) {
	// $1,500 at risk returning $7,500 one period later: 400% periodic.
	irr := IRR([]float64{-1500, 7500})
	require.False(t, math.IsNaN(irr))
	assert.InDelta(t, 4.0, irr, 0.01)
}

func TestAnnualization_RoundTrip(t *testing.T) {
	// monthlyFromAnnual(annualizeMonthly(m)) == m across the usable range.
	for _, m := range []float64{-0.4, -0.1, -0.01, 0, 0.005, 0.02, 0.1, 0.4} {
		annual := AnnualizeMonthly(m)
		back := MonthlyFromAnnual(annual)
		assert.InDelta(t, m, back, 1e-6, "round trip for m=%v", m)
	}
}

func TestAnnualizeMonthly_KnownValue(t *testing.T) {
	// 1% monthly compounds to (1.01)^12 - 1 = 12.6825% annually.
	assert.InDelta(t, 0.126825, AnnualizeMonthly(0.01), 1e-5)
}
