// Package finance implements the time-value-of-money primitives the rest of
// the core builds on: NPV, a Newton-Raphson/bisection IRR solver, rate
// annualization, and loan annuity math.
//
// Cash-flow series are plain []float64 slices where the index is the period;
// index 0 is the initial outlay and is never discounted.
package finance

import "math"

const (
	// DefaultMaxIterations bounds both Newton-Raphson and bisection passes.
	DefaultMaxIterations = 100
	// DefaultTolerance is the convergence threshold on the rate (and on NPV
	// during bisection).
	DefaultTolerance = 0.0001

	// Rate search bounds: -99% to +1000% per period. Anything outside is not
	// a meaningful investment return.
	irrLowerBound = -0.99
	irrUpperBound = 10.0
)

// NPV discounts a cash-flow series at the given periodic rate:
//
//	NPV = Σ amount_t / (1+rate)^t
//
// Period 0 is never discounted. An empty series has NPV 0. At rate = -1 the
// discount factor for any later period is zero, so the sum diverges; we
// return +Inf rather than an error.
func NPV(cashFlows []float64, rate float64) float64 {
	if len(cashFlows) == 0 {
		return 0
	}
	if rate == -1 && len(cashFlows) > 1 {
		return math.Inf(1)
	}

	npv := cashFlows[0]
	for t := 1; t < len(cashFlows); t++ {
		npv += cashFlows[t] / math.Pow(1+rate, float64(t))
	}
	return npv
}

// NPVDerivative is d(NPV)/d(rate):
//
//	NPV'(r) = Σ_{t>0} -t * amount_t / (1+r)^(t+1)
//
// Period 0 contributes nothing (its term is constant in r). Series with
// fewer than two entries therefore have a zero derivative.
func NPVDerivative(cashFlows []float64, rate float64) float64 {
	if len(cashFlows) < 2 {
		return 0
	}

	var deriv float64
	for t := 1; t < len(cashFlows); t++ {
		deriv += -float64(t) * cashFlows[t] / math.Pow(1+rate, float64(t+1))
	}
	return deriv
}

// IRR solves for the periodic rate that zeroes the NPV of the series, using
// the default iteration budget and tolerance. The returned rate is periodic:
// monthly flows yield a monthly rate (see AnnualizeMonthly).
//
// Returns NaN when no IRR exists: fewer than two entries, all amounts of one
// sign, or no root inside [-99%, +1000%]. Callers must check with math.IsNaN
// before using the result.
func IRR(cashFlows []float64) float64 {
	return IRRWithOptions(cashFlows, DefaultMaxIterations, DefaultTolerance)
}

// IRRWithOptions is IRR with an explicit iteration budget and tolerance.
//
// Strategy: Newton-Raphson from an initial guess of 10%, clamped to the
// search bounds each step. Two conditions abandon Newton-Raphson for
// bisection: a near-flat derivative (|NPV'| < tolerance, the next step would
// be unstable) and iteration exhaustion without convergence. Bisection then
// either finds the bracketed root or proves there is none.
func IRRWithOptions(cashFlows []float64, maxIterations int, tolerance float64) float64 {
	// A single cash flow (or none) has no rate of return.
	if len(cashFlows) < 2 {
		return math.NaN()
	}

	// NPV is monotone with no sign change among the amounts: no root exists.
	var hasPositive, hasNegative bool
	for _, amount := range cashFlows {
		if amount > 0 {
			hasPositive = true
		} else if amount < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return math.NaN()
	}

	rate := 0.10
	for i := 0; i < maxIterations; i++ {
		deriv := NPVDerivative(cashFlows, rate)
		if math.Abs(deriv) < tolerance {
			// Flat slope: the Newton step would overshoot wildly.
			return bisectIRR(cashFlows, maxIterations, tolerance)
		}

		next := rate - NPV(cashFlows, rate)/deriv
		if next < irrLowerBound {
			next = irrLowerBound
		} else if next > irrUpperBound {
			next = irrUpperBound
		}

		if math.Abs(next-rate) < tolerance && next > irrLowerBound && next < irrUpperBound {
			return next
		}
		rate = next
	}

	return bisectIRR(cashFlows, maxIterations, tolerance)
}

// bisectIRR searches [-0.99, 10.0] for a sign change in NPV. Guaranteed to
// terminate within maxIterations halvings.
func bisectIRR(cashFlows []float64, maxIterations int, tolerance float64) float64 {
	low, high := irrLowerBound, irrUpperBound
	npvLow := NPV(cashFlows, low)
	npvHigh := NPV(cashFlows, high)

	// Same sign at both ends: no root in the meaningful range.
	if npvLow*npvHigh > 0 {
		return math.NaN()
	}

	mid := (low + high) / 2
	for i := 0; i < maxIterations; i++ {
		mid = (low + high) / 2
		npvMid := NPV(cashFlows, mid)

		if math.Abs(npvMid) < tolerance || (high-low)/2 < tolerance {
			return mid
		}

		if npvLow*npvMid < 0 {
			high = mid
		} else {
			low = mid
			npvLow = npvMid
		}
	}
	return mid
}

// AnnualizeMonthly converts a monthly periodic rate to its annual compound
// equivalent: (1+m)^12 - 1.
func AnnualizeMonthly(monthlyRate float64) float64 {
	return math.Pow(1+monthlyRate, 12) - 1
}

// MonthlyFromAnnual is the exact inverse of AnnualizeMonthly:
// (1+a)^(1/12) - 1.
func MonthlyFromAnnual(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/12.0) - 1
}
