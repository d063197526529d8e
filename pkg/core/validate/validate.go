// Package validate performs advisory checks on analysis inputs. Every
// function returns a list of human-readable warnings — never an error — and
// an empty list means the inputs look sane. Callers decide whether to
// proceed; the numeric core runs regardless.
package validate

import (
	"fmt"

	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/models"
)

// Bounds beyond which an assumption is probably a data-entry mistake rather
// than a real deal.
const (
	maxHoldingMonths   = 60
	maxInterestRate    = 0.25
	maxSellingCostRate = 0.20
)

// ROIInputs collects the warnings for a return computation.
func ROIInputs(deal models.DealAssumptions) []string {
	var warnings []string

	if deal.AcquisitionPrice <= 0 {
		warnings = append(warnings, "acquisition price is zero or negative; returns will be degenerate")
	}
	if deal.ARV > 0 && deal.ARV < deal.AcquisitionPrice {
		warnings = append(warnings, fmt.Sprintf(
			"ARV $%.0f is below the acquisition price $%.0f; the deal loses money on paper",
			deal.ARV, deal.AcquisitionPrice))
	}
	if deal.ARV <= 0 {
		warnings = append(warnings, "no ARV supplied; strategy revenue projections are unreliable")
	}
	if deal.HoldingMonths > maxHoldingMonths {
		warnings = append(warnings, fmt.Sprintf(
			"holding period of %d months exceeds %d; carrying costs may be understated",
			deal.HoldingMonths, maxHoldingMonths))
	}
	if deal.RehabCost < 0 {
		warnings = append(warnings, "negative rehab cost")
	}
	if deal.SellingCostRate < 0 || deal.SellingCostRate > maxSellingCostRate {
		warnings = append(warnings, fmt.Sprintf(
			"selling cost rate %.0f%% is outside the normal 0-%.0f%% range",
			deal.SellingCostRate*100, maxSellingCostRate*100.0))
	}
	if deal.Financing != nil && deal.Financing.AnnualRate > maxInterestRate {
		warnings = append(warnings, fmt.Sprintf(
			"interest rate %.1f%% exceeds %.0f%%; verify the financing terms",
			deal.Financing.AnnualRate*100, maxInterestRate*100.0))
	}
	if deal.LeaseOption.ExerciseProbability < 0 || deal.LeaseOption.ExerciseProbability > 1 {
		warnings = append(warnings, "lease-option exercise probability outside [0,1]; it will be clamped")
	}
	return warnings
}

// HoldingCostInputs collects the warnings for a carrying-cost estimate.
func HoldingCostInputs(in holding.Inputs) []string {
	var warnings []string

	if in.PropertyValue <= 0 {
		warnings = append(warnings, "property value is zero or negative; tax and insurance estimates default to zero")
	}
	if in.SquareFeet <= 0 {
		warnings = append(warnings, "square footage unknown; utilities and maintenance use the 1,500 sqft baseline")
	}
	if in.SquareFeet > 20000 {
		warnings = append(warnings, "square footage over 20,000; linear scaling likely overstates utilities")
	}
	if in.HoldingMonths > maxHoldingMonths {
		warnings = append(warnings, fmt.Sprintf(
			"holding period of %d months exceeds %d", in.HoldingMonths, maxHoldingMonths))
	}
	if in.Financing != nil && in.Financing.AnnualRate > maxInterestRate {
		warnings = append(warnings, fmt.Sprintf(
			"interest rate %.1f%% exceeds %.0f%%", in.Financing.AnnualRate*100, maxInterestRate*100.0))
	}
	if len(in.State) != 2 {
		warnings = append(warnings, "state code is not two letters; default rate tables apply")
	}
	return warnings
}
