// Package cashflow turns high-level deal assumptions into month-by-month
// cash-flow series, one generator per exit strategy. Series feed the finance
// solver for IRR and the strategy analyzers for profit math.
package cashflow

// Entry is a single dated cash flow. Period 0 is the initial outlay and is
// normally the sole negative entry under profitable assumptions.
type Entry struct {
	Period int     `json:"period"`
	Amount float64 `json:"amount"`
	Label  string  `json:"label"`
}

// Series is an ordered cash-flow sequence indexed by period. Generators
// always emit contiguous periods 0..N, so a Series of length N+1 covers N
// holding periods.
type Series []Entry

// Amounts strips the series to the raw values the solver consumes.
func (s Series) Amounts() []float64 {
	out := make([]float64, len(s))
	for i, e := range s {
		out[i] = e.Amount
	}
	return out
}

// Sum is the undiscounted total of the series, i.e. its nominal profit.
func (s Series) Sum() float64 {
	var total float64
	for _, e := range s {
		total += e.Amount
	}
	return total
}
