package analysis

import (
	"time"

	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/core/recommend"
	"taxdeedflow/pkg/core/strategy"
	"taxdeedflow/pkg/core/validate"
	"taxdeedflow/pkg/models"
)

// Engine runs the full evaluation pipeline. It holds only configuration
// (the verdict thresholds), so a single Engine is safe to reuse across
// properties; every run builds fresh values.
type Engine struct {
	thresholds recommend.Thresholds
}

// NewEngine creates an engine with the given verdict thresholds.
func NewEngine(t recommend.Thresholds) *Engine {
	return &Engine{thresholds: t}
}

// Analyze evaluates one deal end to end. It never fails: degenerate inputs
// produce degenerate-but-defined outputs plus advisory warnings.
func (e *Engine) Analyze(req Request) *Result {
	deal := applyDefaults(req)

	holdInputs := holdingInputs(req.Property, deal)
	costs := holding.Estimate(holdInputs)

	warnings := append(validate.ROIInputs(deal), validate.HoldingCostInputs(holdInputs)...)

	comparison := strategy.Compare(strategy.Context{
		Deal:     deal,
		Property: req.Property,
		Holding:  costs,
	})

	rec := recommend.Recommend(recommend.Input{
		Deal:       deal,
		Property:   req.Property,
		ARV:        req.ARV,
		Scores:     req.Scores,
		Holding:    costs,
		Thresholds: e.thresholds,
	})

	return &Result{
		AnalysisID:     rec.AnalysisID,
		Property:       req.Property,
		HoldingCosts:   costs,
		Metrics:        recommend.ComputeMetrics(deal, req.ARV, costs),
		Strategies:     comparison,
		Recommendation: rec,
		Warnings:       warnings,
		GeneratedAt:    time.Now().UTC(),
	}
}

// applyDefaults fills the gaps a sparse deal file leaves: the ARV from the
// comps estimate, and a holding period from the rehab scope and market.
func applyDefaults(req Request) models.DealAssumptions {
	deal := req.Deal

	if deal.ARV <= 0 && req.ARV.Value > 0 {
		deal.ARV = req.ARV.Value
	}
	if deal.HoldingMonths <= 0 {
		deal.HoldingMonths = holding.EstimateHoldingPeriod(deal.RehabScope, deal.MarketCondition)
	}
	if deal.SellingCostRate <= 0 {
		deal.SellingCostRate = 0.08 // agent commission + closing, the usual all-in
	}
	return deal
}

// holdingInputs maps the property facts and deal assumptions onto the
// estimator's inputs. Rehab deals are flagged as active-rehab for the
// builder's-risk insurance surcharge.
func holdingInputs(prop models.PropertyAttributes, deal models.DealAssumptions) holding.Inputs {
	value := deal.ARV
	if value <= 0 {
		value = prop.AssessedValue
	}

	return holding.Inputs{
		PropertyValue: value,
		AssessedValue: prop.AssessedValue,
		AnnualTaxes:   prop.AnnualTaxes,
		State:         prop.State,
		SquareFeet:    prop.SquareFeet,
		YearBuilt:     prop.YearBuilt,
		PropertyType:  prop.PropertyType,
		Vacant:        prop.Vacant,
		ActiveRehab:   deal.RehabCost > 0,
		HasPool:       prop.HasPool,
		HasHOA:        prop.HasHOA,
		HOAMonthly:    prop.HOAFee,
		Financing:     deal.Financing,
		HoldingMonths: deal.HoldingMonths,
	}
}
