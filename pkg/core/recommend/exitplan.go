package recommend

import (
	"math"

	"taxdeedflow/pkg/models"
)

// conditionAtLeastFair is true for fair, good, and excellent condition.
func conditionAtLeastFair(c models.PropertyCondition) bool {
	switch c {
	case models.ConditionFair, models.ConditionGood, models.ConditionExcellent:
		return true
	}
	return false
}

// DetermineExitPlan runs the disposition cascade, first match wins:
//
//  1. wholesale — distressed shell with a rehab bill over half the price and
//     a thin margin; pass the work to somebody else
//  2. flip — strong return, real margin, manageable rehab
//  3. rental — meaningful cap rate and cash-on-cash on a livable property
//  4. hold — marginal numbers worth waiting out
//  5. flip — the default when nothing else fits
func DetermineExitPlan(m InvestmentMetrics, condition models.PropertyCondition, rehabCost, acquisitionPrice float64) ExitPlan {
	distressed := condition == models.ConditionPoor || condition == models.ConditionDistressed

	if distressed && acquisitionPrice > 0 && rehabCost > 0.5*acquisitionPrice && m.ProfitMargin < 15 {
		return PlanWholesale
	}
	if m.ROI >= 20 && m.ProfitMargin >= 15 && rehabCost <= 0.6*acquisitionPrice {
		return PlanFlip
	}
	if m.CapRate >= 8 && m.CashOnCash >= 10 && conditionAtLeastFair(condition) {
		return PlanRental
	}
	if m.CapRate >= 5 || m.ROI >= 10 {
		return PlanHold
	}
	return PlanFlip
}

// Timeline tables: base months per plan, scaled by property condition, with
// a per-plan floor.
var (
	baseTimelineMonths = map[ExitPlan]float64{
		PlanWholesale: 1,
		PlanFlip:      6,
		PlanRental:    3,
		PlanHold:      12,
	}
	minTimelineMonths = map[ExitPlan]float64{
		PlanWholesale: 0.5,
		PlanFlip:      3,
		PlanRental:    2,
		PlanHold:      6,
	}
)

func conditionTimelineFactor(c models.PropertyCondition) float64 {
	switch c {
	case models.ConditionExcellent:
		return 0.7
	case models.ConditionGood:
		return 0.85
	case models.ConditionPoor:
		return 1.3
	case models.ConditionDistressed:
		return 1.5
	}
	return 1.0
}

// EstimateTimeline projects months to completion for the plan, scaled by
// condition, floored per plan, and rounded to one decimal.
func EstimateTimeline(plan ExitPlan, condition models.PropertyCondition) float64 {
	months := baseTimelineMonths[plan] * conditionTimelineFactor(condition)
	if floor := minTimelineMonths[plan]; months < floor {
		months = floor
	}
	return math.Round(months*10) / 10
}
