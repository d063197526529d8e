package cashflow

import (
	"fmt"

	"taxdeedflow/pkg/models"
)

// OutcomeKind tags the two mutually exclusive lease-option endings.
type OutcomeKind string

const (
	OutcomeExercised    OutcomeKind = "exercised"
	OutcomeNotExercised OutcomeKind = "not_exercised"
)

// LeaseOutcome is one terminal scenario with its full-term profit.
type LeaseOutcome struct {
	Kind   OutcomeKind `json:"kind"`
	Profit float64     `json:"profit"`
}

// clampProbability keeps the exercise probability in [0,1]; out-of-range
// inputs are advisory-validation territory, not a reason to blow up.
func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// LeaseOptionOutcomes computes both scenario profits and their
// probability-weighted expectation:
//
//	E[profit] = p*profit_exercise + (1-p)*profit_no_exercise
//
// Each scenario independently nets the upfront option fee, the cumulative
// monthly cash flow over the term, and either the exercise price or an
// open-market sale net of selling costs, against the total investment.
func LeaseOptionOutcomes(d models.DealAssumptions) (expected float64, outcomes [2]LeaseOutcome) {
	lo := d.LeaseOption
	p := clampProbability(lo.ExerciseProbability)

	months := lo.TermMonths
	if months < 1 {
		months = 1
	}

	monthlyNet := lo.MonthlyRent - d.MonthlyOperatingExpense
	investment := d.TotalAcquisitionCost()
	base := lo.OptionFee + monthlyNet*float64(months) - investment

	exercised := base + lo.ExercisePrice
	notExercised := base + d.ARV*(1-d.SellingCostRate)

	outcomes[0] = LeaseOutcome{Kind: OutcomeExercised, Profit: exercised}
	outcomes[1] = LeaseOutcome{Kind: OutcomeNotExercised, Profit: notExercised}
	expected = p*exercised + (1-p)*notExercised
	return expected, outcomes
}

// GenerateLeaseOption builds the blended series: acquisition outlay offset by
// the option fee at period 0, monthly net rent over the term, and a terminal
// entry holding the expected sale value (exercise price and open-market sale
// weighted by the exercise probability). The series sum equals the expected
// profit from LeaseOptionOutcomes.
func GenerateLeaseOption(d models.DealAssumptions) Series {
	lo := d.LeaseOption
	p := clampProbability(lo.ExerciseProbability)

	months := lo.TermMonths
	if months < 1 {
		months = 1
	}
	monthlyNet := lo.MonthlyRent - d.MonthlyOperatingExpense

	series := make(Series, 0, months+1)
	series = append(series, Entry{
		Period: 0,
		Amount: -d.TotalAcquisitionCost() + lo.OptionFee,
		Label:  "acquisition net of option fee",
	})

	for m := 1; m < months; m++ {
		series = append(series, Entry{
			Period: m,
			Amount: monthlyNet,
			Label:  fmt.Sprintf("net lease income month %d", m),
		})
	}

	expectedSale := p*lo.ExercisePrice + (1-p)*d.ARV*(1-d.SellingCostRate)
	series = append(series, Entry{
		Period: months,
		Amount: monthlyNet + expectedSale,
		Label:  "expected sale (exercise blend) + final month",
	})
	return series
}
