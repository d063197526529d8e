package holding

// State rate tables. Plain immutable lookups; unknown states fall back to the
// package defaults below rather than erroring.

const (
	// DefaultTaxRate is the effective annual property-tax rate applied when
	// the state is unrecognized (roughly the national median).
	DefaultTaxRate = 0.011
	// DefaultInsuranceRate is the annual premium per $1,000 of insured value
	// for an unrecognized state.
	DefaultInsuranceRate = 5.0
	// DefaultUtilityFactor scales the utility base cost for an unrecognized
	// state.
	DefaultUtilityFactor = 1.0
)

// stateTaxRates holds effective annual property-tax rates by state.
var stateTaxRates = map[string]float64{
	"AL": 0.0041, "AZ": 0.0062, "AR": 0.0062, "CA": 0.0075, "CO": 0.0051,
	"CT": 0.0214, "FL": 0.0089, "GA": 0.0092, "IL": 0.0227, "IN": 0.0085,
	"IA": 0.0157, "KS": 0.0141, "KY": 0.0086, "LA": 0.0055, "MD": 0.0109,
	"MI": 0.0154, "MO": 0.0097, "NJ": 0.0249, "NY": 0.0172, "NC": 0.0084,
	"OH": 0.0156, "OK": 0.0090, "PA": 0.0158, "SC": 0.0057, "TN": 0.0071,
	"TX": 0.0180, "VA": 0.0082, "WI": 0.0185, "WV": 0.0058,
}

// stateInsuranceRates holds annual premiums per $1,000 of insured value.
// Coastal/storm states carry the highest base rates.
var stateInsuranceRates = map[string]float64{
	"AL": 7.5, "AZ": 4.0, "AR": 6.5, "CA": 4.5, "CO": 6.0,
	"CT": 4.5, "FL": 10.5, "GA": 5.5, "IL": 4.5, "IN": 4.5,
	"IA": 4.0, "KS": 8.0, "KY": 5.0, "LA": 10.0, "MD": 4.0,
	"MI": 4.5, "MO": 6.0, "NJ": 3.5, "NY": 4.0, "NC": 5.0,
	"OH": 3.5, "OK": 9.5, "PA": 3.0, "SC": 5.5, "TN": 5.5,
	"TX": 9.0, "VA": 3.5, "WI": 3.0, "WV": 4.0,
}

// stateUtilityFactors scale the $150/1,500sqft utility baseline.
var stateUtilityFactors = map[string]float64{
	"AL": 1.10, "AZ": 1.15, "AR": 0.95, "CA": 1.25, "CO": 0.90,
	"CT": 1.35, "FL": 1.10, "GA": 1.00, "IL": 0.95, "IN": 0.95,
	"IA": 0.90, "KS": 0.95, "KY": 0.95, "LA": 1.00, "MD": 1.10,
	"MI": 1.00, "MO": 0.95, "NJ": 1.15, "NY": 1.30, "NC": 1.00,
	"OH": 0.95, "OK": 0.95, "PA": 1.10, "SC": 1.05, "TN": 0.95,
	"TX": 1.05, "VA": 1.05, "WI": 0.95, "WV": 0.90,
}

// StateTaxRate returns the effective annual property-tax rate for a
// two-letter state code, falling back to DefaultTaxRate.
func StateTaxRate(state string) float64 {
	if r, ok := stateTaxRates[state]; ok {
		return r
	}
	return DefaultTaxRate
}

// StateInsuranceRate returns the annual premium per $1,000 of insured value.
func StateInsuranceRate(state string) float64 {
	if r, ok := stateInsuranceRates[state]; ok {
		return r
	}
	return DefaultInsuranceRate
}

// StateUtilityFactor returns the state utility cost multiplier.
func StateUtilityFactor(state string) float64 {
	if f, ok := stateUtilityFactors[state]; ok {
		return f
	}
	return DefaultUtilityFactor
}
