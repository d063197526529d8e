package finance

import "math"

// MonthlyPayment computes the standard fully-amortizing annuity payment:
//
//	M = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the term in months. A zero rate reduces
// to straight-line principal repayment P/n.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}

	r := annualRate / 12
	if r == 0 {
		return principal / float64(termMonths)
	}

	factor := math.Pow(1+r, float64(termMonths))
	return principal * r * factor / (factor - 1)
}

// InterestOnlyPayment is the monthly payment on an interest-only note:
// principal * monthly rate. Principal is never reduced.
func InterestOnlyPayment(principal, annualRate float64) float64 {
	if principal <= 0 {
		return 0
	}
	return principal * annualRate / 12
}

// RemainingBalance walks the amortization schedule forward and returns the
// principal still owed after afterMonths payments. Used for balloon payoffs:
// the balance at the balloon month is what comes due.
//
// O(afterMonths) by design; holding periods are bounded to a few hundred
// months so the walk stays cheap and avoids closed-form edge cases.
func RemainingBalance(principal, annualRate float64, termMonths, afterMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if afterMonths >= termMonths {
		return 0
	}

	payment := MonthlyPayment(principal, annualRate, termMonths)
	r := annualRate / 12

	balance := principal
	for m := 0; m < afterMonths; m++ {
		interest := balance * r
		balance -= payment - interest
	}
	if balance < 0 {
		balance = 0
	}
	return balance
}

// InterestPortion returns the interest component of the payment due at
// monthNumber (1-based) on an amortizing loan. Interest-only notes pay the
// same interest every month.
func InterestPortion(principal, annualRate float64, termMonths, monthNumber int, interestOnly bool) float64 {
	if principal <= 0 || monthNumber < 1 {
		return 0
	}

	r := annualRate / 12
	if interestOnly {
		return principal * r
	}
	if termMonths <= 0 || monthNumber > termMonths {
		return 0
	}

	// Forward walk to the month before, then interest on the open balance.
	balance := RemainingBalance(principal, annualRate, termMonths, monthNumber-1)
	return balance * r
}
