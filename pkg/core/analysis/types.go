// Package analysis orchestrates one full deal evaluation: holding costs,
// all five exit strategies, deal metrics, and the final recommendation.
package analysis

import (
	"time"

	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/core/recommend"
	"taxdeedflow/pkg/core/strategy"
	"taxdeedflow/pkg/models"
)

// Request is everything the caller supplies for one run. The ARV estimate
// and external scores come from upstream collaborators (comps engine,
// scoring system); the engine never computes them.
type Request struct {
	Property models.PropertyAttributes `json:"property"`
	Deal     models.DealAssumptions    `json:"deal"`
	ARV      models.ARVEstimate        `json:"arv"`
	Scores   models.ExternalScores     `json:"scores"`
}

// Result is the complete output of a run: every intermediate record is kept
// so display layers and the 125-point scorer can consume whichever slice
// they need.
type Result struct {
	AnalysisID     string                    `json:"analysis_id"`
	Property       models.PropertyAttributes `json:"property"`
	HoldingCosts   holding.Breakdown         `json:"holding_costs"`
	Metrics        recommend.InvestmentMetrics `json:"metrics"`
	Strategies     strategy.Comparison       `json:"strategies"`
	Recommendation recommend.Recommendation  `json:"recommendation"`
	Warnings       []string                  `json:"warnings,omitempty"`
	GeneratedAt    time.Time                 `json:"generated_at"`
}
