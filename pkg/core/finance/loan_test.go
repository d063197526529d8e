package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_Standard30Year(t *testing.T) {
	// $180,000 at 8% over 30 years: the textbook annuity gives ~$1,320.78.
	payment := MonthlyPayment(180000, 0.08, 360)
	assert.InDelta(t, 1320.78, payment, 0.50)
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// No interest: straight-line principal. 120000/120 = 1000.
	assert.InDelta(t, 1000.0, MonthlyPayment(120000, 0, 120), 1e-9)
}

func TestMonthlyPayment_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyPayment(0, 0.08, 360))
	assert.Equal(t, 0.0, MonthlyPayment(-5, 0.08, 360))
	assert.Equal(t, 0.0, MonthlyPayment(100000, 0.08, 0))
}

func TestInterestOnlyPayment(t *testing.T) {
	// 180000 * 0.08 / 12 = 1200 exactly.
	assert.InDelta(t, 1200.0, InterestOnlyPayment(180000, 0.08), 1e-9)
}

func TestRemainingBalance(t *testing.T) {
	principal, rate, term := 180000.0, 0.08, 360

	// Nothing paid yet: full principal.
	assert.InDelta(t, principal, RemainingBalance(principal, rate, term, 0), 1e-9)

	// Fully amortized: nothing left.
	assert.Equal(t, 0.0, RemainingBalance(principal, rate, term, 360))

	// Early payments are mostly interest, so the balance barely moves in
	// year one but must still strictly decrease.
	after12 := RemainingBalance(principal, rate, term, 12)
	after60 := RemainingBalance(principal, rate, term, 60)
	assert.Less(t, after12, principal)
	assert.Greater(t, after12, principal*0.98) // <2% principal paid in year 1
	assert.Less(t, after60, after12)
}

func TestInterestPortion_AmortizingDeclines(t *testing.T) {
	principal, rate, term := 180000.0, 0.08, 360

	// Month 1 interest is on the full balance: 180000 * 0.08/12 = 1200.
	first := InterestPortion(principal, rate, term, 1, false)
	assert.InDelta(t, 1200.0, first, 1e-6)

	// Later months carry less interest as principal is retired.
	later := InterestPortion(principal, rate, term, 120, false)
	assert.Less(t, later, first)
	assert.Greater(t, later, 0.0)
}

func TestInterestPortion_InterestOnlyConstant(t *testing.T) {
	first := InterestPortion(180000, 0.08, 360, 1, true)
	later := InterestPortion(180000, 0.08, 360, 240, true)
	assert.InDelta(t, 1200.0, first, 1e-9)
	assert.Equal(t, first, later)
}

func TestInterestPortion_PaymentSplitsCleanly(t *testing.T) {
	// interest + principal portion of month 1 must equal the payment.
	principal, rate, term := 90000.0, 0.06, 180
	payment := MonthlyPayment(principal, rate, term)
	interest := InterestPortion(principal, rate, term, 1, false)
	principalPaid := payment - interest
	afterOne := RemainingBalance(principal, rate, term, 1)
	assert.InDelta(t, principal-principalPaid, afterOne, 1e-6)
}
