// Package holding estimates the monthly carrying cost of a property: taxes,
// insurance, utilities, maintenance, financing, and the smaller fixed line
// items. All estimates are pure functions of the inputs; state-level rate
// tables live in tables.go.
package holding

import (
	"time"

	"taxdeedflow/pkg/core/finance"
	"taxdeedflow/pkg/models"
)

// Baseline constants. Utilities and maintenance are calibrated to a
// 1,500 sqft reference property and scaled linearly by square footage.
const (
	utilityBaseMonthly     = 150.0
	maintenanceBaseMonthly = 100.0
	referenceSquareFeet    = 1500.0

	lawnCareMonthly    = 100.0
	poolServiceMonthly = 125.0
	pestControlMonthly = 50.0
	vacantSecurityFee  = 60.0

	vacancyUtilityFactor = 0.4
)

// Inputs to the estimator. AsOfYear/Month pin the age and seasonal factors
// for deterministic results; zero values default to the current date.
type Inputs struct {
	PropertyValue float64                `json:"property_value"`
	AssessedValue float64                `json:"assessed_value"`
	AnnualTaxes   float64                `json:"annual_taxes"` // 0 = estimate from state table
	State         string                 `json:"state"`
	SquareFeet    float64                `json:"square_feet"`
	YearBuilt     int                    `json:"year_built"`
	PropertyType  models.PropertyType    `json:"property_type"`
	Vacant        bool                   `json:"vacant"`
	ActiveRehab   bool                   `json:"active_rehab"`
	HasPool       bool                   `json:"has_pool"`
	HasHOA        bool                   `json:"has_hoa"`
	HOAMonthly    float64                `json:"hoa_monthly"`
	Financing     *models.FinancingTerms `json:"financing,omitempty"`
	HoldingMonths int                    `json:"holding_months"`
	AsOfYear      int                    `json:"as_of_year,omitempty"`
	Month         time.Month             `json:"month,omitempty"`
}

// UtilityBreakdown splits the utility estimate 50/25/20/5 across services.
// Seasonal scaling applies to electric year-round extremes and to gas in
// winter only.
type UtilityBreakdown struct {
	Electric float64 `json:"electric"`
	Gas      float64 `json:"gas"`
	Water    float64 `json:"water"`
	Trash    float64 `json:"trash"`
}

// Breakdown is the full monthly carrying-cost picture. TotalMonthly is
// always the exact sum of the ten line items, and TotalHolding is
// TotalMonthly times the holding months.
type Breakdown struct {
	Tax         float64 `json:"tax"`
	Insurance   float64 `json:"insurance"`
	Utilities   float64 `json:"utilities"`
	Maintenance float64 `json:"maintenance"`
	LoanPayment float64 `json:"loan_payment"`
	HOA         float64 `json:"hoa"`
	Security    float64 `json:"security"`
	LawnCare    float64 `json:"lawn_care"`
	Pool        float64 `json:"pool"`
	PestControl float64 `json:"pest_control"`

	UtilityDetail UtilityBreakdown `json:"utility_detail"`

	TotalMonthly  float64            `json:"total_monthly"`
	HoldingMonths int                `json:"holding_months"`
	TotalHolding  float64            `json:"total_holding"`
	Categories    map[string]float64 `json:"category_breakdown"`
}

// Estimate computes the complete carrying-cost breakdown for the inputs.
func Estimate(in Inputs) Breakdown {
	b := Breakdown{
		Tax:           estimateTax(in),
		Insurance:     estimateInsurance(in),
		Maintenance:   estimateMaintenance(in),
		LoanPayment:   loanPayment(in.Financing),
		HoldingMonths: in.HoldingMonths,
	}

	b.UtilityDetail = estimateUtilities(in)
	b.Utilities = b.UtilityDetail.Electric + b.UtilityDetail.Gas +
		b.UtilityDetail.Water + b.UtilityDetail.Trash

	if in.HasHOA {
		b.HOA = in.HOAMonthly
	}
	if in.Vacant {
		b.Security = vacantSecurityFee
	}
	if in.PropertyType != models.TypeCondo && in.PropertyType != models.TypeLand {
		b.LawnCare = lawnCareMonthly
	}
	if in.HasPool {
		b.Pool = poolServiceMonthly
	}
	b.PestControl = pestControlMonthly

	b.TotalMonthly = b.Tax + b.Insurance + b.Utilities + b.Maintenance +
		b.LoanPayment + b.HOA + b.Security + b.LawnCare + b.Pool + b.PestControl
	b.TotalHolding = b.TotalMonthly * float64(in.HoldingMonths)

	b.Categories = map[string]float64{
		"taxes":     b.Tax,
		"insurance": b.Insurance,
		"utilities": b.Utilities,
		"upkeep":    b.Maintenance + b.LawnCare + b.Pool + b.PestControl,
		"financing": b.LoanPayment,
		"fees":      b.HOA + b.Security,
	}
	return b
}

// estimateTax uses the known annual bill when supplied, otherwise the
// state's effective rate against the assessed (or market) value.
func estimateTax(in Inputs) float64 {
	if in.AnnualTaxes > 0 {
		return in.AnnualTaxes / 12
	}
	taxable := in.AssessedValue
	if taxable <= 0 {
		taxable = in.PropertyValue
	}
	return taxable * StateTaxRate(in.State) / 12
}

// estimateInsurance prices coverage on 80% of value at the state base rate,
// with surcharges for vacancy (1.5x) or active-rehab builder's risk (1.75x,
// which takes priority) and property age (>30y 1.15x, >50y 1.25x).
func estimateInsurance(in Inputs) float64 {
	insured := 0.8 * in.PropertyValue / 1000
	annual := insured * StateInsuranceRate(in.State)

	switch {
	case in.ActiveRehab:
		annual *= 1.75
	case in.Vacant:
		annual *= 1.5
	}

	annual *= ageFactor(in, 1.15, 1.25)
	return annual / 12
}

// estimateUtilities scales the $150 baseline by state cost, square footage,
// vacancy (0.4x), and season, splitting 50/25/20/5 across electric, gas,
// water, and trash. Summer scales electric by 1.2; winter scales both
// electric and gas by 1.3.
func estimateUtilities(in Inputs) UtilityBreakdown {
	base := utilityBaseMonthly * StateUtilityFactor(in.State) * sqftRatio(in.SquareFeet)
	if in.Vacant {
		base *= vacancyUtilityFactor
	}

	electricFactor, gasFactor := 1.0, 1.0
	switch month(in) {
	case time.June, time.July, time.August:
		electricFactor = 1.2
	case time.December, time.January, time.February:
		electricFactor = 1.3
		gasFactor = 1.3
	}

	return UtilityBreakdown{
		Electric: base * 0.50 * electricFactor,
		Gas:      base * 0.25 * gasFactor,
		Water:    base * 0.20,
		Trash:    base * 0.05,
	}
}

// estimateMaintenance scales the $100 baseline by square footage, age
// (1.3x past 30 years), and property type (multi-family 1.3x, condo 0.5x).
func estimateMaintenance(in Inputs) float64 {
	cost := maintenanceBaseMonthly * sqftRatio(in.SquareFeet)
	cost *= ageFactor(in, 1.3, 1.3)

	switch in.PropertyType {
	case models.TypeMultiFamily:
		cost *= 1.3
	case models.TypeCondo:
		cost *= 0.5
	}
	return cost
}

func loanPayment(fin *models.FinancingTerms) float64 {
	if fin == nil || fin.LoanAmount <= 0 {
		return 0
	}
	if fin.InterestOnly {
		return finance.InterestOnlyPayment(fin.LoanAmount, fin.AnnualRate)
	}
	return finance.MonthlyPayment(fin.LoanAmount, fin.AnnualRate, fin.TermMonths)
}

// InterestPortion returns the interest component of the financing payment
// due at monthNumber (1-based), walking the schedule forward.
func InterestPortion(fin models.FinancingTerms, monthNumber int) float64 {
	return finance.InterestPortion(fin.LoanAmount, fin.AnnualRate, fin.TermMonths,
		monthNumber, fin.InterestOnly)
}

func sqftRatio(sqft float64) float64 {
	if sqft <= 0 {
		return 1.0
	}
	return sqft / referenceSquareFeet
}

// ageFactor applies over30/over50 multipliers based on the as-of year.
func ageFactor(in Inputs, over30, over50 float64) float64 {
	if in.YearBuilt <= 0 {
		return 1.0
	}
	year := in.AsOfYear
	if year == 0 {
		year = time.Now().Year()
	}
	age := year - in.YearBuilt
	switch {
	case age > 50:
		return over50
	case age > 30:
		return over30
	}
	return 1.0
}

func month(in Inputs) time.Month {
	if in.Month != 0 {
		return in.Month
	}
	return time.Now().Month()
}
