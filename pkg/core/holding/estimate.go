package holding

import "taxdeedflow/pkg/models"

// rehabMonths is the expected renovation duration per scope.
var rehabMonths = map[models.RehabScope]int{
	models.RehabCosmetic: 1,
	models.RehabLight:    2,
	models.RehabModerate: 3,
	models.RehabHeavy:    5,
	models.RehabGut:      8,
}

// saleMonths is the expected time-to-sale per market climate. A declining
// market sells no faster than a slow one.
var saleMonths = map[models.MarketCondition]int{
	models.MarketHot:       1,
	models.MarketNormal:    3,
	models.MarketSlow:      6,
	models.MarketDeclining: 6,
}

// EstimateHoldingPeriod returns the expected total hold in months: rehab
// duration plus time on market. Unknown inputs fall back to a moderate
// rehab in a normal market.
func EstimateHoldingPeriod(scope models.RehabScope, market models.MarketCondition) int {
	rehab, ok := rehabMonths[scope]
	if !ok {
		rehab = rehabMonths[models.RehabModerate]
	}
	sale, ok := saleMonths[market]
	if !ok {
		sale = saleMonths[models.MarketNormal]
	}
	return rehab + sale
}
