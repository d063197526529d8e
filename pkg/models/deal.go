// Package models defines the input records consumed by the return-modeling
// core: property attributes, deal assumptions, financing terms, and the
// externally supplied ARV/score inputs.
package models

// =============================================================================
// ENUMERATIONS
// =============================================================================

// PropertyCondition describes overall physical condition.
type PropertyCondition string

const (
	ConditionExcellent  PropertyCondition = "excellent"
	ConditionGood       PropertyCondition = "good"
	ConditionFair       PropertyCondition = "fair"
	ConditionPoor       PropertyCondition = "poor"
	ConditionDistressed PropertyCondition = "distressed"
)

// MarketCondition describes the local sales climate.
type MarketCondition string

const (
	MarketHot       MarketCondition = "hot"
	MarketNormal    MarketCondition = "normal"
	MarketSlow      MarketCondition = "slow"
	MarketDeclining MarketCondition = "declining"
)

// RehabScope buckets the renovation effort required.
type RehabScope string

const (
	RehabCosmetic RehabScope = "cosmetic"
	RehabLight    RehabScope = "light"
	RehabModerate RehabScope = "moderate"
	RehabHeavy    RehabScope = "heavy"
	RehabGut      RehabScope = "gut"
)

// PropertyType classifies the structure.
type PropertyType string

const (
	TypeSingleFamily PropertyType = "single_family"
	TypeMultiFamily  PropertyType = "multi_family"
	TypeCondo        PropertyType = "condo"
	TypeLand         PropertyType = "land"
)

// ConfidenceLevel labels the reliability of an externally supplied estimate.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// =============================================================================
// PROPERTY & EXTERNAL INPUTS
// =============================================================================

// PropertyAttributes carries the physical facts about the parcel. Supplied by
// the ingestion side; the core only reads it.
type PropertyAttributes struct {
	ParcelNumber string `json:"parcel_number"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"` // two-letter code
	Zip          string `json:"zip"`

	SquareFeet    float64           `json:"square_feet"`
	Bedrooms      int               `json:"bedrooms"`
	Bathrooms     float64           `json:"bathrooms"`
	YearBuilt     int               `json:"year_built"`
	PropertyType  PropertyType      `json:"property_type"`
	Condition     PropertyCondition `json:"condition"`
	AssessedValue float64           `json:"assessed_value"`
	AnnualTaxes   float64           `json:"annual_taxes"` // 0 = unknown, estimate from state table

	Vacant  bool    `json:"vacant"`
	HasPool bool    `json:"has_pool"`
	HasHOA  bool    `json:"has_hoa"`
	HOAFee  float64 `json:"hoa_fee"` // monthly
}

// ARVEstimate is the comparable-sales output the core consumes. The comps
// engine that produces it is an external collaborator.
type ARVEstimate struct {
	Value       float64         `json:"value"`
	Confidence  ConfidenceLevel `json:"confidence"`
	SampleCount int             `json:"sample_count"`
}

// ExternalScores are the 0-25 sub-scores produced by the upstream scoring
// system (risk, location, market).
type ExternalScores struct {
	Risk     float64 `json:"risk"`
	Location float64 `json:"location"`
	Market   float64 `json:"market"`
}

// =============================================================================
// FINANCING
// =============================================================================

// FinancingTerms describes acquisition debt. A nil FinancingTerms means an
// all-cash purchase.
type FinancingTerms struct {
	LoanAmount   float64 `json:"loan_amount"`
	AnnualRate   float64 `json:"annual_rate"` // fraction, e.g. 0.08
	TermMonths   int     `json:"term_months"`
	InterestOnly bool    `json:"interest_only"`
}

// =============================================================================
// DEAL ASSUMPTIONS
// =============================================================================

// WholesaleTerms are the assignment-specific assumptions. Zero values fall
// back to package defaults in the wholesale generator.
type WholesaleTerms struct {
	EarnestMoney  float64 `json:"earnest_money"`
	MarketingCost float64 `json:"marketing_cost"`
	AssignmentFee float64 `json:"assignment_fee"` // 0 = use max($5k, 5% of ARV)
}

// LeaseOptionTerms parameterize the rent-to-own scenario blend.
type LeaseOptionTerms struct {
	OptionFee           float64 `json:"option_fee"`
	MonthlyRent         float64 `json:"monthly_rent"`
	TermMonths          int     `json:"term_months"`
	ExercisePrice       float64 `json:"exercise_price"`
	ExerciseProbability float64 `json:"exercise_probability"` // clamped to [0,1]
}

// OwnerFinanceTerms describe the note carried for the buyer.
type OwnerFinanceTerms struct {
	SalePrice          float64 `json:"sale_price"`
	DownPayment        float64 `json:"down_payment"`
	AnnualRate         float64 `json:"annual_rate"`
	AmortizationMonths int     `json:"amortization_months"`
	BalloonMonths      int     `json:"balloon_months"` // 0 = fully amortizing
}

// DealAssumptions is the single bundle of economic assumptions every analyzer
// reads. One instance per analysis run; never mutated after construction.
type DealAssumptions struct {
	AcquisitionPrice float64 `json:"acquisition_price"`
	ClosingCosts     float64 `json:"closing_costs"`
	RehabCost        float64 `json:"rehab_cost"`
	ARV              float64 `json:"arv"`
	HoldingMonths    int     `json:"holding_months"`
	SellingCostRate  float64 `json:"selling_cost_rate"` // fraction of sale price

	MonthlyRent             float64 `json:"monthly_rent"`
	MonthlyOperatingExpense float64 `json:"monthly_operating_expense"`
	AnnualAppreciationRate  float64 `json:"annual_appreciation_rate"`
	RentalHoldYears         int     `json:"rental_hold_years"`

	AvailableCash float64         `json:"available_cash"`
	Financing     *FinancingTerms `json:"financing,omitempty"`

	MarketCondition MarketCondition `json:"market_condition"`
	RehabScope      RehabScope      `json:"rehab_scope"`

	Wholesale    WholesaleTerms    `json:"wholesale"`
	LeaseOption  LeaseOptionTerms  `json:"lease_option"`
	OwnerFinance OwnerFinanceTerms `json:"owner_finance"`
}

// TotalAcquisitionCost is the period-0 outlay shared by flip and rental
// generators: purchase + closing + rehab.
func (d DealAssumptions) TotalAcquisitionCost() float64 {
	return d.AcquisitionPrice + d.ClosingCosts + d.RehabCost
}
