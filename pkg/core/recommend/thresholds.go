package recommend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// TierThresholds gate one verdict tier. All four checks must pass for the
// strong-buy/buy/hold tiers; the pass tier only checks MinROI and
// MaxPriceToARV.
type TierThresholds struct {
	MinROI        float64 `yaml:"min_roi" json:"min_roi"`                 // percent
	MinMargin     float64 `yaml:"min_margin" json:"min_margin"`           // percent
	MaxPriceToARV float64 `yaml:"max_price_to_arv" json:"max_price_to_arv"` // fraction
	MinRiskScore  float64 `yaml:"min_risk_score" json:"min_risk_score"`   // 0-25 external score
}

// Thresholds is the full verdict table. Passed by value into the verdict
// machine so callers can tune tiers without touching logic.
type Thresholds struct {
	MinNetProfit float64        `yaml:"min_net_profit" json:"min_net_profit"` // hard avoid floor
	StrongBuy    TierThresholds `yaml:"strong_buy" json:"strong_buy"`
	Buy          TierThresholds `yaml:"buy" json:"buy"`
	Hold         TierThresholds `yaml:"hold" json:"hold"`
	Pass         TierThresholds `yaml:"pass" json:"pass"`
}

// DefaultThresholds is the stock table. Risk scores are the external 0-25
// scale (higher = safer).
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinNetProfit: 5000,
		StrongBuy:    TierThresholds{MinROI: 30, MinMargin: 25, MaxPriceToARV: 0.65, MinRiskScore: 18},
		Buy:          TierThresholds{MinROI: 20, MinMargin: 15, MaxPriceToARV: 0.70, MinRiskScore: 12},
		Hold:         TierThresholds{MinROI: 10, MinMargin: 8, MaxPriceToARV: 0.75, MinRiskScore: 8},
		Pass:         TierThresholds{MinROI: 5, MaxPriceToARV: 0.80},
	}
}

// LoadThresholds reads a YAML threshold table, filling omitted fields from
// the defaults so a partial override file stays valid.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse thresholds: %w", err)
	}
	return t, nil
}
